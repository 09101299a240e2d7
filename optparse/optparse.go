// Package optparse parses command-line flags into the configuration
// structure consumed by callers of the shell package.
//
// It is a thin wrapper over spf13/pflag: programs embedding shellkit
// without a full command-line framework can call Parse on os.Args[1:]
// and hand the resulting Options to NewConsole.
package optparse

import (
	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/harrison/shellkit/console"
)

// Options is the parsed command-line configuration.
type Options struct {
	// DryRun reports mutating operations as successful without
	// performing them.
	DryRun bool

	// ShowCommands prints commands as diagnostics instead of executing
	// them.
	ShowCommands bool

	// Verbose enables progress announcements.
	Verbose bool

	// NoColor disables ANSI color output.
	NoColor bool

	// Indent is the indentation unit for console output.
	Indent string
}

// NewFlagSet returns a pflag.FlagSet whose flags are bound to the
// receiver. Callers that need to mix shellkit flags with their own can
// add to the returned set before parsing.
func (o *Options) NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.BoolVarP(&o.DryRun, "dry-run", "n", false, "Report operations without performing them")
	fs.BoolVar(&o.ShowCommands, "show-commands", false, "Print commands as diagnostics instead of executing them")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "Show detailed progress")
	fs.BoolVar(&o.NoColor, "no-color", false, "Disable color output")
	fs.StringVar(&o.Indent, "indent", "  ", "Indentation unit for console output")
	return fs
}

// Parse reads flags from args (excluding the program name) and returns
// the parsed options plus the remaining positional arguments.
func Parse(args []string) (*Options, []string, error) {
	opts := &Options{}
	fs := opts.NewFlagSet("shellkit")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, fs.Args(), nil
}

// NewConsole builds a console configured from the options, writing to
// stdout and stderr. NoColor takes effect process-wide, matching the
// NO_COLOR convention.
func (o *Options) NewConsole() *console.Console {
	if o.NoColor {
		color.NoColor = true
	}

	c := console.New()
	c.ShowCommands = o.ShowCommands
	c.SkipCommands = o.DryRun
	if o.Indent != "" {
		c.Indentator = o.Indent
	}
	return c
}
