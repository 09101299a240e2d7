// Package config loads the shellkit CLI configuration from YAML and
// merges it with command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents shellkit configuration options.
type Config struct {
	// DryRun reports mutating operations as successful without
	// performing them.
	DryRun bool `yaml:"dry_run"`

	// ShowCommands prints commands as diagnostics instead of executing
	// them.
	ShowCommands bool `yaml:"show_commands"`

	// NoColor disables ANSI color output.
	NoColor bool `yaml:"no_color"`

	// Indent is the indentation unit for console output.
	Indent string `yaml:"indent"`

	// LogDir is the directory where run transcripts are written.
	// Empty disables transcript logging.
	LogDir string `yaml:"log_dir"`

	// LockFile serializes mutating CLI invocations across processes
	// when set.
	LockFile string `yaml:"lock_file"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		DryRun:       false,
		ShowCommands: false,
		NoColor:      false,
		Indent:       "  ",
		LogDir:       "",
		LockFile:     "",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without
// error. If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Boolean fields merge by key presence so an explicit "false" in
	// the file is honored while an absent key keeps the default.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, exists := rawMap["dry_run"]; exists {
		cfg.DryRun = fileCfg.DryRun
	}
	if _, exists := rawMap["show_commands"]; exists {
		cfg.ShowCommands = fileCfg.ShowCommands
	}
	if _, exists := rawMap["no_color"]; exists {
		cfg.NoColor = fileCfg.NoColor
	}
	if _, exists := rawMap["indent"]; exists {
		cfg.Indent = fileCfg.Indent
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.LockFile != "" {
		cfg.LockFile = fileCfg.LockFile
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .shellkit/config.yaml in
// the specified directory. A missing directory or file yields defaults
// without error.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".shellkit", "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration. Non-nil flag
// values override configuration values, so flags take precedence over
// the config file.
func (c *Config) MergeWithFlags(dryRun, showCommands, noColor *bool, indent *string) {
	if dryRun != nil {
		c.DryRun = *dryRun
	}
	if showCommands != nil {
		c.ShowCommands = *showCommands
	}
	if noColor != nil {
		c.NoColor = *noColor
	}
	if indent != nil {
		c.Indent = *indent
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Indent) != "" {
		return fmt.Errorf("indent must contain only whitespace, got %q", c.Indent)
	}
	return nil
}
