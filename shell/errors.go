package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// FailureKind classifies an operation failure.
type FailureKind int

const (
	// FailureUnknown is the generic fallback for unclassified errors.
	FailureUnknown FailureKind = iota
	// FailurePermissionDenied marks failures caused by missing
	// permissions.
	FailurePermissionDenied
	// FailureNotFound marks failures caused by a missing path.
	FailureNotFound
	// FailureUsage marks failures caused by invalid arguments.
	FailureUsage
)

// String returns the human-readable name of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case FailurePermissionDenied:
		return "permission denied"
	case FailureNotFound:
		return "not found"
	case FailureUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// OpError is a classified operation failure. Target names the offending
// path when classification could extract one.
type OpError struct {
	Kind   FailureKind
	Target string
	Err    error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	switch {
	case e.Target != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Target)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying error for error wrapping support.
func (e *OpError) Unwrap() error {
	return e.Err
}

// classify maps an OS error onto a FailureKind, preferring structured
// errno information over message matching. The target path is taken
// from the *fs.PathError or *os.LinkError when present. Raw-message
// matching is kept only as a fallback for errors that lost their errno
// on the way up.
func classify(err error) *OpError {
	op := &OpError{Kind: FailureUnknown, Err: err}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		op.Target = pathErr.Path
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		op.Target = linkErr.Old
	}

	switch {
	case errors.Is(err, fs.ErrPermission):
		op.Kind = FailurePermissionDenied
	case errors.Is(err, fs.ErrNotExist):
		op.Kind = FailureNotFound
	default:
		msg := strings.ToLower(err.Error())
		switch {
		case strings.Contains(msg, "permission denied"):
			op.Kind = FailurePermissionDenied
		case strings.Contains(msg, "no such file or directory"):
			op.Kind = FailureNotFound
		}
	}

	return op
}
