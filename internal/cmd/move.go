package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/shellkit/shell"
)

// NewMoveCommand creates the mv command.
func NewMoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mv <source> <destination>",
		Short: "Move or rename a file",
		Long: `Move a single file to a new path, creating missing destination
parent directories first. Falls back to copy-and-delete when the
destination is on a different filesystem.`,
		Args: cobra.ExactArgs(2),
		RunE: moveCommand,
	}

	cmd.Flags().Bool("fatal", false, "Exit with status 1 on an unclassified failure")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress failure messages")

	return cmd
}

func moveCommand(cmd *cobra.Command, args []string) error {
	sh, _, err := newShell(cmd)
	if err != nil {
		return err
	}

	fatal, _ := cmd.Flags().GetBool("fatal")
	quiet, _ := cmd.Flags().GetBool("quiet")

	ok := sh.Rename(args[0], args[1], shell.ReportOptions{
		ShowErrors: !quiet,
		Fatal:      fatal,
	})
	if !ok {
		return fmt.Errorf("move failed")
	}
	return nil
}
