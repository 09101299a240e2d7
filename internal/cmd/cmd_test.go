package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures combined
// output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCommand()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRunCommand(t *testing.T) {
	out, err := executeCommand(t, "run", "echo", "hello")

	require.NoError(t, err)
	assert.Contains(t, out, "hello")
}

func TestRunCommandFailureReturnsError(t *testing.T) {
	_, err := executeCommand(t, "run", "exit 2")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited with status 2")
}

func TestRunCommandDryRun(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "marker")

	_, err := executeCommand(t, "run", "--dry-run", "touch", marker)

	require.NoError(t, err)
	assert.NoFileExists(t, marker)
}

func TestRunCommandWritesTranscript(t *testing.T) {
	logDir := t.TempDir()

	_, err := executeCommand(t, "run", "--log-dir", logDir, "echo", "captured")
	require.NoError(t, err)

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^run-[0-9a-f-]+\.log$`, entries[0].Name())

	data, err := os.ReadFile(filepath.Join(logDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "captured\n", string(data))
}

func TestCopyCommand(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.txt")
	dst := filepath.Join(tmpDir, "out", "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0o644))

	_, err := executeCommand(t, "cp", src, dst)

	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestCopyCommandWithLock(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.txt")
	dst := filepath.Join(tmpDir, "dst.txt")
	lock := filepath.Join(tmpDir, "op.lock")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0o644))

	_, err := executeCommand(t, "cp", "--lock", lock, src, dst)

	require.NoError(t, err)
	assert.FileExists(t, dst)
	assert.FileExists(t, lock)
}

func TestMoveCommand(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "old.txt")
	dst := filepath.Join(tmpDir, "new.txt")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0o644))

	_, err := executeCommand(t, "mv", src, dst)

	require.NoError(t, err)
	assert.NoFileExists(t, src)
	assert.FileExists(t, dst)
}

func TestRemoveCommand(t *testing.T) {
	tmpDir := t.TempDir()
	victim := filepath.Join(tmpDir, "victim")
	require.NoError(t, os.MkdirAll(filepath.Join(victim, "nested"), 0o755))

	_, err := executeCommand(t, "rm", victim)

	require.NoError(t, err)
	assert.NoDirExists(t, victim)
}

func TestRemoveCommandMissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "ghost")

	out, err := executeCommand(t, "rm", missing)

	require.Error(t, err)
	assert.Contains(t, out, missing)
	assert.Contains(t, out, "no such file or directory")
}

func TestRemoveCommandDryRun(t *testing.T) {
	tmpDir := t.TempDir()
	keep := filepath.Join(tmpDir, "keep.txt")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0o644))

	_, err := executeCommand(t, "rm", "--dry-run", keep)

	require.NoError(t, err)
	assert.FileExists(t, keep)
}

func TestMkdirCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b")

	_, err := executeCommand(t, "mkdir", path)

	require.NoError(t, err)
	assert.DirExists(t, path)
}

func TestMkdirCommandRejectsExisting(t *testing.T) {
	path := t.TempDir()

	out, err := executeCommand(t, "mkdir", path)

	require.Error(t, err)
	assert.Contains(t, out, "already exists as a directory")
}

func TestMkdirCommandCustomMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "private")

	_, err := executeCommand(t, "mkdir", "--mode", "0700", path)

	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

func TestMkdirCommandInvalidMode(t *testing.T) {
	_, err := executeCommand(t, "mkdir", "--mode", "99z", filepath.Join(t.TempDir(), "x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestFindCommandByExtension(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("x"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "sub", "b.TXT"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "c.md"), []byte("x"), 0o644))

	out, err := executeCommand(t, "find", tmpDir, "--ext", "txt")

	require.NoError(t, err)
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.TXT")
	assert.NotContains(t, out, "c.md")
}

func TestFindCommandByPattern(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "main_test.go"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "main.go"), []byte("x"), 0o644))

	out, err := executeCommand(t, "find", tmpDir, "--pattern", `_test\.go$`)

	require.NoError(t, err)
	assert.Contains(t, out, "main_test.go")
	assert.NotContains(t, out, "main.go\n")
}

func TestCheckCommand(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "present.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	out, err := executeCommand(t, "check", file)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	_, err = executeCommand(t, "check", filepath.Join(tmpDir, "absent.txt"))
	assert.Error(t, err)
}

func TestCheckCommandDirPredicate(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := executeCommand(t, "check", tmpDir, "--dir")
	require.NoError(t, err)

	file := filepath.Join(tmpDir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = executeCommand(t, "check", file, "--dir")
	assert.Error(t, err)
}

func TestRootCommandVersion(t *testing.T) {
	out, err := executeCommand(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, Version)
}
