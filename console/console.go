// Package console renders status and progress messages for shell-style
// tooling.
//
// A Console wraps a pair of output writers with thread-safe, optionally
// indented and colorized line output. Color is enabled automatically when
// the writer is a terminal and disabled otherwise (or when NO_COLOR is
// set). The ShowCommands and SkipCommands flags are queried by callers
// that execute commands or mutate the filesystem to implement diagnostic
// and dry-run modes.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// StatusKind identifies the outcome marker printed by Status.
type StatusKind int

const (
	// StatusOK marks a successful outcome.
	StatusOK StatusKind = iota
	// StatusFail marks a failed outcome.
	StatusFail
	// StatusWarn marks a degraded but non-failing outcome.
	StatusWarn
)

// Console writes formatted messages to an output and an error writer.
// All writes are serialized through an internal mutex, so a single
// Console may be shared across goroutines.
type Console struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer

	// ShowCommands causes callers to print commands as diagnostics
	// instead of executing them.
	ShowCommands bool

	// SkipCommands suppresses execution and filesystem mutation
	// entirely (dry-run). Operations report success without acting.
	SkipCommands bool

	// Indentator is the string repeated IndentLevel times in front of
	// every emitted line.
	Indentator string

	// IndentLevel is the current indentation depth. Prefer IndentRegion
	// over mutating this directly.
	IndentLevel int

	colorOutput bool
}

// New creates a Console bound to os.Stdout and os.Stderr.
func New() *Console {
	return NewWithWriters(os.Stdout, os.Stderr)
}

// NewWithWriters creates a Console bound to the given writers. Either
// writer may be nil, in which case messages for it are discarded.
// Color output is enabled only when out is a terminal.
func NewWithWriters(out, errOut io.Writer) *Console {
	return &Console{
		out:         out,
		err:         errOut,
		Indentator:  "  ",
		colorOutput: isTerminal(out),
	}
}

// isTerminal reports whether the writer is a TTY that supports colors.
// color.NoColor already accounts for the NO_COLOR convention.
func isTerminal(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Write prints a message line to the output writer.
func (c *Console) Write(message string) {
	c.emit(c.out, message, nil)
}

// Writef prints a formatted message line to the output writer.
func (c *Console) Writef(format string, args ...interface{}) {
	c.emit(c.out, fmt.Sprintf(format, args...), nil)
}

// Warn prints a message line to the error writer, in yellow when color
// output is enabled.
func (c *Console) Warn(message string) {
	c.emit(c.err, message, color.New(color.FgYellow))
}

// Error prints a message line to the error writer, in red when color
// output is enabled.
func (c *Console) Error(message string) {
	c.emit(c.err, message, color.New(color.FgRed))
}

// Status prints an outcome marker ("ok", "fail" or "warn") to the output
// writer.
func (c *Console) Status(kind StatusKind) {
	switch kind {
	case StatusOK:
		c.emit(c.out, "ok", color.New(color.FgGreen))
	case StatusFail:
		c.emit(c.out, "fail", color.New(color.FgRed))
	case StatusWarn:
		c.emit(c.out, "warn", color.New(color.FgYellow))
	}
}

// IndentRegion runs fn with the indentation level raised by depth and
// restores the previous level afterwards, even if fn panics.
func (c *Console) IndentRegion(depth int, fn func()) {
	c.mu.Lock()
	c.IndentLevel += depth
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.IndentLevel -= depth
		c.mu.Unlock()
	}()

	fn()
}

// emit writes one indented line to w, applying col when color output is
// active. Nil writers discard the message.
func (c *Console) emit(w io.Writer, message string, col *color.Color) {
	if w == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.colorOutput && col != nil {
		message = col.Sprint(message)
	}

	prefix := strings.Repeat(c.Indentator, c.IndentLevel)
	fmt.Fprintf(w, "%s%s\n", prefix, message)
}
