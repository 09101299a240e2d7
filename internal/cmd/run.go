package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harrison/shellkit/internal/lockfile"
	"github.com/harrison/shellkit/shell"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <command>...",
		Short: "Run a command through the shell, streaming merged output",
		Long: `Run a command through the system shell with stderr merged into
stdout. Output is streamed line by line as it arrives and captured as
the run transcript.

Examples:
  shellkit run make build
  shellkit run --status --abort-on-failure ./deploy.sh
  shellkit run --log-dir ./logs make test
  shellkit run --dry-run rm -rf ./build   # prints nothing, runs nothing`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCommand,
	}

	cmd.Flags().Bool("announce", false, "Print a starting message before the command runs")
	cmd.Flags().Bool("echo", true, "Stream command output as it arrives")
	cmd.Flags().Bool("status", false, "Print an ok/fail marker after the command")
	cmd.Flags().Bool("abort-on-failure", false, "Exit with status 1 when the command fails")
	cmd.Flags().String("log-dir", "", "Directory to write the run transcript to")

	return cmd
}

func runCommand(cmd *cobra.Command, args []string) error {
	sh, cfg, err := newShell(cmd)
	if err != nil {
		return err
	}

	announce, _ := cmd.Flags().GetBool("announce")
	echo, _ := cmd.Flags().GetBool("echo")
	status, _ := cmd.Flags().GetBool("status")
	abort, _ := cmd.Flags().GetBool("abort-on-failure")

	command := strings.Join(args, " ")
	result := sh.Run(shell.RunOptions{
		Command:        command,
		Announce:       announce,
		Echo:           echo,
		ReportStatus:   status,
		AbortOnFailure: abort,
	})

	logDir, _ := cmd.Flags().GetString("log-dir")
	if logDir == "" {
		logDir = cfg.LogDir
	}
	if logDir != "" && !cfg.DryRun && !cfg.ShowCommands {
		path := filepath.Join(logDir, fmt.Sprintf("run-%s.log", uuid.New().String()))
		transcript := result.Output
		if transcript != "" {
			transcript += "\n"
		}
		if err := lockfile.AtomicWrite(path, []byte(transcript), 0o644); err != nil {
			sh.Console().Warn(fmt.Sprintf("Cannot write transcript %s: %v", path, err))
		}
	}

	if result.ExitStatus != 0 {
		return fmt.Errorf("command exited with status %d", result.ExitStatus)
	}
	return nil
}
