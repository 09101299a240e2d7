package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/harrison/shellkit/console"
)

// defaultDirMode is the permission mode used when callers pass zero.
const defaultDirMode os.FileMode = 0o755

// DeleteFiles recursively removes each path, directories and their
// contents included, stopping at the first failure. In dry-run mode
// nothing is removed and the call reports success. A missing path is a
// classified not-found failure rather than a silent no-op.
//
// Quirk, kept from the original behavior: the fatal policy fires only
// on the generic branch. Classified permission-denied and not-found
// failures report and return false without aborting, regardless of
// opts.Fatal.
func (s *Shell) DeleteFiles(paths []string, opts ReportOptions) bool {
	if s.console.SkipCommands {
		return true
	}

	var failure *OpError
	for _, path := range paths {
		if err := removeTree(path); err != nil {
			failure = classify(err)
			break
		}
	}
	if failure == nil {
		return true
	}

	switch failure.Kind {
	case FailurePermissionDenied, FailureNotFound:
		if opts.ShowErrors {
			s.reportClassified(failure, "delete")
		}
	default:
		if opts.ShowErrors {
			s.reportGeneric(paths, failure.Err, "delete", opts.Fatal)
		}
	}
	s.console.Status(console.StatusFail)
	return false
}

// removeTree deletes path recursively. os.RemoveAll treats a missing
// path as success; surface it instead so callers see a not-found.
func removeTree(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return err
	}
	return os.RemoveAll(path)
}

// CreateDirectories creates each path recursively with the given mode
// (defaultDirMode when zero), iterating in order and stopping at the
// first failure; later paths are left untouched.
//
// A path that already exists is a classified failure even when it is
// already a directory: idempotent creation is deliberately rejected so
// callers notice when a directory they expected to create was already
// there.
func (s *Shell) CreateDirectories(paths []string, mode os.FileMode, opts ReportOptions) bool {
	if s.console.SkipCommands {
		return true
	}
	if mode == 0 {
		mode = defaultDirMode
	}

	for _, path := range paths {
		if info, err := os.Lstat(path); err == nil {
			if opts.ShowErrors {
				kind := "file"
				if info.IsDir() {
					kind = "directory"
				}
				s.console.Error(fmt.Sprintf("Cannot create %s: already exists as a %s", path, kind))
			}
			s.console.Status(console.StatusFail)
			return false
		}

		if err := os.MkdirAll(path, mode); err != nil {
			op := classify(err)
			switch op.Kind {
			case FailurePermissionDenied:
				if opts.ShowErrors {
					s.console.Error(fmt.Sprintf("Cannot create %s: permission denied on %s", path, op.Target))
				}
			default:
				if opts.ShowErrors {
					s.reportGeneric(paths, err, "create", opts.Fatal)
				}
			}
			s.console.Status(console.StatusFail)
			return false
		}
	}
	return true
}

// CopyOptions configures Copy.
type CopyOptions struct {
	// Move removes each source after a successful copy.
	Move bool

	// DestinationIsDirectory selects directory-destination mode: every
	// source entry is copied into the destination directory under its
	// base name. When false, exactly one source is required and the
	// destination names the target file itself.
	DestinationIsDirectory bool

	ReportOptions
}

// Copy copies (or moves) sources to destination in one of two mutually
// exclusive modes selected by DestinationIsDirectory; see CopyOptions.
// Existing destination entries are overwritten. In single-file mode a
// missing destination parent directory is created first with
// defaultDirMode. All mutation honors dry-run.
func (s *Shell) Copy(sources []string, destination string, opts CopyOptions) bool {
	if s.console.SkipCommands {
		return true
	}

	if opts.DestinationIsDirectory {
		return s.copyToDir(sources, destination, opts)
	}

	if len(sources) != 1 || destination == "" {
		if opts.ShowErrors {
			s.console.Error("Cannot copy: single-file mode requires exactly one source and a destination")
		}
		s.console.Status(console.StatusFail)
		return false
	}
	return s.copySingle(sources[0], destination, opts)
}

// Rename moves source to destination with single-file copy semantics,
// creating the destination parent when missing. Empty arguments are a
// classified usage failure.
func (s *Shell) Rename(source, destination string, opts ReportOptions) bool {
	if source == "" || destination == "" {
		if opts.ShowErrors {
			s.console.Error("Cannot rename: source and destination are required")
		}
		s.console.Status(console.StatusFail)
		return false
	}
	return s.Copy([]string{source}, destination, CopyOptions{
		Move:          true,
		ReportOptions: opts,
	})
}

// copyToDir copies or moves each source into the destination directory,
// stopping at the first failure. filepath.Join normalizes the
// destination, so a trailing separator is accepted but not required.
func (s *Shell) copyToDir(sources []string, destination string, opts CopyOptions) bool {
	for _, src := range sources {
		target := filepath.Join(destination, filepath.Base(src))
		if err := s.transfer(src, target, opts.Move); err != nil {
			s.reportTransferFailure(sources, err, opts.ReportOptions)
			return false
		}
	}
	return true
}

// copySingle copies or moves one file to an explicit destination path,
// creating the destination's parent directory when missing.
func (s *Shell) copySingle(source, destination string, opts CopyOptions) bool {
	parent := filepath.Dir(destination)
	if _, err := os.Stat(parent); err != nil {
		if err := os.MkdirAll(parent, defaultDirMode); err != nil {
			s.reportTransferFailure([]string{source}, err, opts.ReportOptions)
			return false
		}
	}

	if err := s.transfer(source, destination, opts.Move); err != nil {
		s.reportTransferFailure([]string{source}, err, opts.ReportOptions)
		return false
	}
	return true
}

// reportTransferFailure classifies and reports a copy/move failure,
// then emits the non-fatal fail status. The fatal policy applies only
// to the generic branch, matching DeleteFiles.
func (s *Shell) reportTransferFailure(paths []string, err error, opts ReportOptions) {
	op := classify(err)
	switch op.Kind {
	case FailurePermissionDenied, FailureNotFound:
		if opts.ShowErrors {
			s.reportClassified(op, "copy")
		}
	default:
		if opts.ShowErrors {
			s.reportGeneric(paths, err, "copy", opts.Fatal)
		}
	}
	s.console.Status(console.StatusFail)
}

// transfer copies src to dst recursively, or moves it when move is set.
// Moves try rename first and fall back to copy-then-delete across
// filesystem boundaries.
func (s *Shell) transfer(src, dst string, move bool) error {
	if !move {
		return copyTree(src, dst)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, unix.EXDEV) {
		return err
	}
	if err := copyTree(src, dst); err != nil {
		return err
	}
	return os.RemoveAll(src)
}

// copyTree copies a file, symlink, or directory tree, overwriting
// existing destination entries.
func copyTree(src, dst string) error {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}

	switch {
	case info.IsDir():
		if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
			return err
		}
		entries, err := os.ReadDir(src)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			srcEntry := filepath.Join(src, entry.Name())
			dstEntry := filepath.Join(dst, entry.Name())
			if err := copyTree(srcEntry, dstEntry); err != nil {
				return err
			}
		}
		return nil
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(src)
		if err != nil {
			return err
		}
		os.Remove(dst)
		return os.Symlink(target, dst)
	default:
		return copyFile(src, dst, info.Mode().Perm())
	}
}

// copyFile writes dst atomically: contents land in a temporary file
// next to dst which is then renamed into place, so an interrupted copy
// never leaves a partial destination behind.
func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".shellkit-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	tmp = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
