// Package cmd implements the shellkit command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for
// shellkit.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shellkit",
		Short: "Console-friendly shell and file operation toolkit",
		Long: `Shellkit runs commands and performs file operations with classified,
reportable outcomes: copy, move and delete files, create directories,
find files by pattern or extension, and execute commands with merged,
streamed output.

Global dry-run and show-commands modes let every mutating operation be
previewed without touching the filesystem.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: .shellkit/config.yaml)")
	cmd.PersistentFlags().BoolP("dry-run", "n", false, "Report operations without performing them")
	cmd.PersistentFlags().Bool("show-commands", false, "Print commands as diagnostics instead of executing them")
	cmd.PersistentFlags().Bool("no-color", false, "Disable color output")
	cmd.PersistentFlags().String("indent", "", "Indentation unit for console output")

	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewCopyCommand())
	cmd.AddCommand(NewMoveCommand())
	cmd.AddCommand(NewRemoveCommand())
	cmd.AddCommand(NewMkdirCommand())
	cmd.AddCommand(NewFindCommand())
	cmd.AddCommand(NewCheckCommand())

	return cmd
}
