package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/shellkit/console"
	"github.com/harrison/shellkit/shell"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Check that a path exists and satisfies predicates",
		Long: `Check that a path exists and satisfies every requested predicate,
exiting 0 when all hold and 1 otherwise. Without predicate flags only
existence is checked.

Examples:
  shellkit check ./deploy.sh --executable
  shellkit check /var/lib/app --dir --writable`,
		Args:          cobra.ExactArgs(1),
		RunE:          checkCommand,
		SilenceErrors: true,
	}

	cmd.Flags().Bool("readable", false, "Require read access")
	cmd.Flags().Bool("writable", false, "Require write access")
	cmd.Flags().Bool("executable", false, "Require execute access")
	cmd.Flags().Bool("dir", false, "Require the path to be a directory")
	cmd.Flags().Bool("symlink", false, "Require the path to be a symbolic link")

	return cmd
}

func checkCommand(cmd *cobra.Command, args []string) error {
	sh, _, err := newShell(cmd)
	if err != nil {
		return err
	}

	var preds []shell.Predicate
	for _, f := range []struct {
		name string
		pred shell.Predicate
	}{
		{name: "readable", pred: shell.Readable},
		{name: "writable", pred: shell.Writable},
		{name: "executable", pred: shell.Executable},
		{name: "dir", pred: shell.IsDirectory},
		{name: "symlink", pred: shell.IsSymlink},
	} {
		if set, _ := cmd.Flags().GetBool(f.name); set {
			preds = append(preds, f.pred)
		}
	}

	if !sh.FileCheck(shell.FileCheckSpec{Path: args[0], Predicates: preds}) {
		sh.Console().Status(console.StatusFail)
		return fmt.Errorf("%s failed the requested checks", args[0])
	}
	sh.Console().Status(console.StatusOK)
	return nil
}
