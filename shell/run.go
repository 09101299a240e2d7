package shell

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/harrison/shellkit/console"
)

// RunOptions configures a single command execution.
type RunOptions struct {
	// Command is the command line executed through the system shell.
	Command string

	// Announce prints a starting message before execution.
	Announce bool

	// Echo streams each output line to the console as it arrives.
	Echo bool

	// ReportStatus prints an ok/fail marker based on the exit status.
	ReportStatus bool

	// AbortOnFailure terminates the host process with exit code 1 when
	// the command exits nonzero.
	AbortOnFailure bool
}

// CommandResult is the outcome of a command execution. Output holds
// stdout and stderr interleaved in arrival order, newline-joined.
type CommandResult struct {
	ExitStatus int
	Output     string
}

// spawnFailureStatus is reported when the command could not be started
// at all, mirroring the shell convention for "command not found".
const spawnFailureStatus = 127

// Run executes the command through the system shell with stderr merged
// into stdout, streaming output line by line.
//
// In show-commands mode the command is printed as a diagnostic followed
// by an ok marker, without executing. In dry-run mode nothing runs and
// the result reports success with empty output.
func (s *Shell) Run(opts RunOptions) CommandResult {
	if opts.Announce {
		s.console.Writef("Running %q", opts.Command)
	}

	if s.console.ShowCommands {
		s.console.Write(opts.Command)
		s.console.Status(console.StatusOK)
		return CommandResult{}
	}
	if s.console.SkipCommands {
		return CommandResult{}
	}

	cmd := exec.Command(shellInterpreter, "-c", opts.Command)
	stdout, err := cmd.StdoutPipe()
	if err == nil {
		// Merging stderr into the stdout pipe preserves arrival order.
		cmd.Stderr = cmd.Stdout
		err = cmd.Start()
	}
	if err != nil {
		s.console.Error(fmt.Sprintf("Cannot run %q: %v", opts.Command, err))
		if opts.ReportStatus {
			s.console.Status(console.StatusFail)
		}
		if opts.AbortOnFailure {
			s.exit(1)
		}
		return CommandResult{ExitStatus: spawnFailureStatus}
	}

	// ReadString accumulates lines of any length, so a single huge
	// output line cannot stall the read loop while the child blocks on
	// a full pipe.
	var lines []string
	reader := bufio.NewReader(stdout)
	for {
		line, readErr := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, line)
			if opts.Echo {
				s.console.Write(line)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			s.console.Warn(fmt.Sprintf("Output of %q truncated: %v", opts.Command, readErr))
			// Drain the pipe so the child is not left blocked writing.
			io.Copy(io.Discard, stdout)
			break
		}
	}

	exitStatus := 0
	if err := cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitStatus = exitErr.ExitCode()
		} else {
			exitStatus = 1
		}
	}

	if opts.ReportStatus {
		if exitStatus == 0 {
			s.console.Status(console.StatusOK)
		} else {
			s.console.Status(console.StatusFail)
		}
	}
	if opts.AbortOnFailure && exitStatus != 0 {
		s.exit(1)
	}

	return CommandResult{
		ExitStatus: exitStatus,
		Output:     strings.Join(lines, "\n"),
	}
}

// shellInterpreter is the interpreter used for Run. $SHELL is
// intentionally ignored so commands behave the same regardless of the
// invoking user's login shell.
const shellInterpreter = "/bin/sh"
