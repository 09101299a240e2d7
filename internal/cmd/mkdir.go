package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/harrison/shellkit/shell"
)

// NewMkdirCommand creates the mkdir command.
func NewMkdirCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mkdir <path>...",
		Short: "Create directories recursively",
		Long: `Create each path recursively with the given permission mode,
stopping at the first failure.

A path that already exists is a failure, even when it is already a
directory: creation is intentionally not idempotent so scripts notice
when a directory they expected to create was already present.`,
		Args: cobra.MinimumNArgs(1),
		RunE: mkdirCommand,
	}

	cmd.Flags().StringP("mode", "m", "0755", "Permission mode for created directories (octal)")
	cmd.Flags().Bool("fatal", false, "Exit with status 1 on an unclassified failure")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress failure messages")

	return cmd
}

func mkdirCommand(cmd *cobra.Command, args []string) error {
	sh, _, err := newShell(cmd)
	if err != nil {
		return err
	}

	modeStr, _ := cmd.Flags().GetString("mode")
	mode, err := strconv.ParseUint(modeStr, 8, 32)
	if err != nil {
		return fmt.Errorf("invalid mode %q: %w", modeStr, err)
	}

	fatal, _ := cmd.Flags().GetBool("fatal")
	quiet, _ := cmd.Flags().GetBool("quiet")

	ok := sh.CreateDirectories(args, os.FileMode(mode), shell.ReportOptions{
		ShowErrors: !quiet,
		Fatal:      fatal,
	})
	if !ok {
		return fmt.Errorf("mkdir failed")
	}
	return nil
}
