package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	opts, args, err := Parse(nil)
	require.NoError(t, err)

	assert.False(t, opts.DryRun)
	assert.False(t, opts.ShowCommands)
	assert.False(t, opts.Verbose)
	assert.False(t, opts.NoColor)
	assert.Equal(t, "  ", opts.Indent)
	assert.Empty(t, args)
}

func TestParseFlagsAndPositionals(t *testing.T) {
	opts, args, err := Parse([]string{"--dry-run", "--show-commands", "-v", "src.txt", "dst.txt"})
	require.NoError(t, err)

	assert.True(t, opts.DryRun)
	assert.True(t, opts.ShowCommands)
	assert.True(t, opts.Verbose)
	assert.Equal(t, []string{"src.txt", "dst.txt"}, args)
}

func TestParseShorthand(t *testing.T) {
	opts, _, err := Parse([]string{"-n"})
	require.NoError(t, err)
	assert.True(t, opts.DryRun)
}

func TestParseUnknownFlag(t *testing.T) {
	_, _, err := Parse([]string{"--definitely-not-a-flag"})
	assert.Error(t, err)
}

func TestNewConsoleAppliesOptions(t *testing.T) {
	opts := &Options{
		DryRun:       true,
		ShowCommands: true,
		Indent:       "\t",
	}

	c := opts.NewConsole()

	assert.True(t, c.SkipCommands)
	assert.True(t, c.ShowCommands)
	assert.Equal(t, "\t", c.Indentator)
}
