package shell

import (
	"os"

	"golang.org/x/sys/unix"
)

// Predicate is a single file property tested by FileCheck.
type Predicate int

const (
	// Exists requires the path to be present.
	Exists Predicate = iota
	// Readable requires read access for the current process.
	Readable
	// Writable requires write access for the current process.
	Writable
	// Executable requires execute (or search) access.
	Executable
	// IsDirectory requires the path to be a directory.
	IsDirectory
	// IsSymlink requires the path itself to be a symbolic link.
	IsSymlink
)

// FileCheckSpec names a path and the predicates it must satisfy.
type FileCheckSpec struct {
	Path       string
	Predicates []Predicate
}

// FileCheck reports whether the path exists and satisfies every
// requested predicate (a conjunction, not a disjunction). An empty
// predicate set means existence only. An empty path always fails, and a
// predicate value outside the known set evaluates to false rather than
// erroring.
//
// Existence and the access predicates follow symlinks, matching
// access(2): a dangling link does not count as present. IsSymlink is
// the one predicate that inspects the link itself.
func (s *Shell) FileCheck(spec FileCheckSpec) bool {
	if spec.Path == "" {
		return false
	}

	info, err := os.Stat(spec.Path)
	if err != nil {
		return false
	}

	preds := spec.Predicates
	if len(preds) == 0 {
		preds = []Predicate{Exists}
	}
	for _, p := range preds {
		if !holds(spec.Path, info, p) {
			return false
		}
	}
	return true
}

// holds evaluates one predicate. Access checks go through access(2) so
// they reflect the kernel's view rather than a mode-bit reimplementation.
func holds(path string, info os.FileInfo, p Predicate) bool {
	switch p {
	case Exists:
		return true
	case Readable:
		return unix.Access(path, unix.R_OK) == nil
	case Writable:
		return unix.Access(path, unix.W_OK) == nil
	case Executable:
		return unix.Access(path, unix.X_OK) == nil
	case IsDirectory:
		return info.IsDir()
	case IsSymlink:
		li, err := os.Lstat(path)
		return err == nil && li.Mode()&os.ModeSymlink != 0
	default:
		return false
	}
}
