package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/shellkit/internal/lockfile"
	"github.com/harrison/shellkit/shell"
)

// NewCopyCommand creates the cp command.
func NewCopyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cp <source>... <destination>",
		Short: "Copy files or directory trees",
		Long: `Copy one or more sources to a destination, overwriting existing
destination entries.

With a single source the destination names the target file and any
missing parent directories are created. With multiple sources (or
--into) the destination is a directory and each source is copied into
it under its base name.

Examples:
  shellkit cp notes.txt backup/notes.txt
  shellkit cp a.txt b.txt ./archive
  shellkit cp --move build/ ./releases --into`,
		Args: cobra.MinimumNArgs(2),
		RunE: copyCommand,
	}

	cmd.Flags().Bool("move", false, "Remove each source after a successful copy")
	cmd.Flags().Bool("into", false, "Treat the destination as a directory even for a single source")
	cmd.Flags().Bool("fatal", false, "Exit with status 1 on an unclassified failure")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress failure messages")
	cmd.Flags().String("lock", "", "Lock file serializing concurrent invocations")

	return cmd
}

func copyCommand(cmd *cobra.Command, args []string) error {
	sh, cfg, err := newShell(cmd)
	if err != nil {
		return err
	}

	move, _ := cmd.Flags().GetBool("move")
	into, _ := cmd.Flags().GetBool("into")
	fatal, _ := cmd.Flags().GetBool("fatal")
	quiet, _ := cmd.Flags().GetBool("quiet")

	sources := args[:len(args)-1]
	destination := args[len(args)-1]

	opts := shell.CopyOptions{
		Move:                   move,
		DestinationIsDirectory: into || len(sources) > 1,
		ReportOptions: shell.ReportOptions{
			ShowErrors: !quiet,
			Fatal:      fatal,
		},
	}

	ok := false
	err = withOptionalLock(cmd, cfg.LockFile, func() error {
		ok = sh.Copy(sources, destination, opts)
		return nil
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("copy failed")
	}
	return nil
}

// withOptionalLock runs fn while holding the lock named by the --lock
// flag (or the config file), or directly when no lock is configured.
func withOptionalLock(cmd *cobra.Command, configured string, fn func() error) error {
	lockPath := configured
	if cmd.Flags().Changed("lock") {
		lockPath, _ = cmd.Flags().GetString("lock")
	}
	if lockPath == "" {
		return fn()
	}
	return lockfile.WithLock(lockPath, fn)
}
