// Package shell provides reportable wrappers around process execution
// and filesystem mutation: running commands, copying/moving/deleting
// files, creating directories, and finding files by pattern or
// extension.
//
// Every operation reports progress and failures through a bound console
// and converts OS-level errors into classified boolean outcomes. No
// operation returns a raw error or panics across the package boundary;
// callers that need the whole process to stop on failure opt in through
// the per-call fatal policy.
//
// A Shell holds no state beyond its console reference; each operation
// is a single synchronous request/response transaction. Callers needing
// concurrency must serialize access or use separate Shell instances.
package shell

import (
	"fmt"
	"os"
	"strings"

	"github.com/harrison/shellkit/console"
)

// Shell issues process and filesystem operations, reporting through its
// bound console. The zero value is not usable; construct with New.
type Shell struct {
	console *console.Console

	// exit terminates the host process when a fatal policy fires.
	// Swapped out in tests to observe aborts.
	exit func(code int)
}

// New creates a Shell bound to the given console. A nil console binds a
// fresh default console writing to stdout and stderr.
func New(c *console.Console) *Shell {
	if c == nil {
		c = console.New()
	}
	return &Shell{
		console: c,
		exit:    os.Exit,
	}
}

// Console returns the console the shell reports through.
func (s *Shell) Console() *console.Console {
	return s.console
}

// ReportOptions controls failure reporting and the fatal policy shared
// by the mutating filesystem operations.
type ReportOptions struct {
	// ShowErrors prints classified failure messages through the
	// console.
	ShowErrors bool

	// Fatal terminates the host process when a generic (unclassified)
	// failure is reported. Classified permission-denied and not-found
	// failures never abort; see the quirk notes on DeleteFiles.
	Fatal bool
}

// reportClassified prints a classified single-target failure message.
// Unclassified kinds produce no output here; they go through
// reportGeneric instead.
func (s *Shell) reportClassified(op *OpError, action string) {
	switch op.Kind {
	case FailurePermissionDenied:
		s.console.Error(fmt.Sprintf("Cannot %s %s: permission denied", action, op.Target))
	case FailureNotFound:
		s.console.Error(fmt.Sprintf("Cannot %s %s: no such file or directory", action, op.Target))
	}
}

// reportGeneric lists every requested path together with the raw error
// text, then applies the fatal policy.
func (s *Shell) reportGeneric(paths []string, err error, action string, fatal bool) {
	s.console.Error(fmt.Sprintf("Cannot %s: %s", action, strings.Join(paths, ", ")))
	s.console.IndentRegion(1, func() {
		s.console.Error(err.Error())
	})
	if fatal {
		s.exit(1)
	}
}
