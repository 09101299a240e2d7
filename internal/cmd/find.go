package cmd

import (
	"github.com/spf13/cobra"
)

// NewFindCommand creates the find command.
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <path>...",
		Short: "Find files by pattern or extension",
		Long: `Walk each path recursively and print every contained path matching
at least one of the given patterns or extensions. Patterns are regular
expressions matched case-insensitively against the full path.

Examples:
  shellkit find . --ext txt --ext md
  shellkit find src --pattern '_test\.go$'
  shellkit find docs assets --ext png`,
		Args: cobra.MinimumNArgs(1),
		RunE: findCommand,
	}

	cmd.Flags().StringSliceP("pattern", "p", nil, "Regular expression to match against full paths")
	cmd.Flags().StringSliceP("ext", "e", nil, "File extension to match (leading dot optional)")

	return cmd
}

func findCommand(cmd *cobra.Command, args []string) error {
	sh, _, err := newShell(cmd)
	if err != nil {
		return err
	}

	patterns, _ := cmd.Flags().GetStringSlice("pattern")
	exts, _ := cmd.Flags().GetStringSlice("ext")

	var found []string
	switch {
	case len(exts) > 0:
		found = sh.FindByExtension(args, exts)
	case len(patterns) > 0:
		found = sh.FindByPattern(args, patterns)
	default:
		// No filter lists everything under the given paths.
		found = sh.FindByPattern(args, []string{".*"})
	}

	for _, path := range found {
		sh.Console().Write(path)
	}
	return nil
}
