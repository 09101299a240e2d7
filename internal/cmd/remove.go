package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/shellkit/shell"
)

// NewRemoveCommand creates the rm command.
func NewRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <path>...",
		Short: "Recursively delete files and directories",
		Long: `Delete each path recursively, directories and their contents
included. A missing path is reported as a not-found failure.

Examples:
  shellkit rm build/ dist/
  shellkit rm --dry-run ./cache   # reports success, deletes nothing`,
		Args: cobra.MinimumNArgs(1),
		RunE: removeCommand,
	}

	cmd.Flags().Bool("fatal", false, "Exit with status 1 on an unclassified failure")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress failure messages")
	cmd.Flags().String("lock", "", "Lock file serializing concurrent invocations")

	return cmd
}

func removeCommand(cmd *cobra.Command, args []string) error {
	sh, cfg, err := newShell(cmd)
	if err != nil {
		return err
	}

	fatal, _ := cmd.Flags().GetBool("fatal")
	quiet, _ := cmd.Flags().GetBool("quiet")

	ok := false
	err = withOptionalLock(cmd, cfg.LockFile, func() error {
		ok = sh.DeleteFiles(args, shell.ReportOptions{
			ShowErrors: !quiet,
			Fatal:      fatal,
		})
		return nil
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("delete failed")
	}
	return nil
}
