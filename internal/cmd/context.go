package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/shellkit/console"
	"github.com/harrison/shellkit/internal/config"
	"github.com/harrison/shellkit/shell"
)

// newShell builds the console and shell for a subcommand invocation,
// loading the config file and merging the global flags over it.
func newShell(cmd *cobra.Command) (*shell.Shell, *config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(".")
	}
	if err != nil {
		return nil, nil, err
	}

	// Flags override the config file only when explicitly set.
	flags := cmd.Flags()
	var dryRun, showCommands, noColor *bool
	var indent *string
	if flags.Changed("dry-run") {
		v, _ := flags.GetBool("dry-run")
		dryRun = &v
	}
	if flags.Changed("show-commands") {
		v, _ := flags.GetBool("show-commands")
		showCommands = &v
	}
	if flags.Changed("no-color") {
		v, _ := flags.GetBool("no-color")
		noColor = &v
	}
	if flags.Changed("indent") {
		v, _ := flags.GetString("indent")
		indent = &v
	}
	cfg.MergeWithFlags(dryRun, showCommands, noColor, indent)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	con := console.NewWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr())
	con.SkipCommands = cfg.DryRun
	con.ShowCommands = cfg.ShowCommands
	if cfg.Indent != "" {
		con.Indentator = cfg.Indent
	}

	return shell.New(con), cfg, nil
}
