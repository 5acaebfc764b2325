// Package errors defines the error taxonomy of fatfinder: path access and
// deletion failures that are reported and recovered from locally, and
// configuration errors that stop the program before any scan starts.
package errors

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Standard errors package errors that we re-export for convenience
var (
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Op is the operation that failed on a path.
type Op int

const (
	// PathAccess covers directory listing and stat failures during a crawl.
	PathAccess Op = iota
	// Deletion covers file removal failures during a commit.
	Deletion
)

func (o Op) String() string {
	switch o {
	case PathAccess:
		return "path access"
	case Deletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// Kind classifies the cause of a failure.
type Kind int

// Error kinds
const (
	Unknown Kind = iota
	PermissionDenied
	NotFound
	NotADirectory
	IsADirectory
	Busy
	SymlinkLoop
	Canceled
	InvalidConfig
)

func (k Kind) String() string {
	switch k {
	case PermissionDenied:
		return "permission denied"
	case NotFound:
		return "not found"
	case NotADirectory:
		return "not a directory"
	case IsADirectory:
		return "is a directory"
	case Busy:
		return "busy"
	case SymlinkLoop:
		return "symlink loop"
	case Canceled:
		return "canceled"
	case InvalidConfig:
		return "invalid config"
	default:
		return "error"
	}
}

// KindOf derives the Kind of err by inspecting its chain.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return Unknown
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Canceled
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, syscall.ENOTDIR):
		return NotADirectory
	case errors.Is(err, syscall.EISDIR):
		return IsADirectory
	case errors.Is(err, syscall.EBUSY), errors.Is(err, syscall.ETXTBSY):
		return Busy
	case errors.Is(err, syscall.ELOOP):
		return SymlinkLoop
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return InvalidConfig
	}
	return Unknown
}

// PathError is a recoverable failure on a single path. Its message is the
// single console line "<kind>: <path>".
type PathError struct {
	Op   Op
	Path string
	Err  error
}

// NewPathError wraps err as a failure of op on path.
func NewPathError(op Op, path string, err error) *PathError {
	return &PathError{Op: op, Path: path, Err: err}
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind(), e.Path)
}

// Unwrap returns the underlying cause.
func (e *PathError) Unwrap() error {
	return e.Err
}

// Kind reports the classified cause.
func (e *PathError) Kind() Kind {
	return KindOf(e.Err)
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	param string
	msg   string
	err   error
}

// NewConfigError creates a new configuration error for param.
func NewConfigError(param, msg string, err error) *ConfigError {
	return &ConfigError{param: param, msg: msg, err: err}
}

func (e *ConfigError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.param, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.param, e.msg)
}

func (e *ConfigError) Unwrap() error {
	return e.err
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// IsInvalidConfig checks if the error is a configuration error
func IsInvalidConfig(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// IsPathAccess reports whether err is a recoverable crawl failure.
func IsPathAccess(err error) bool {
	var pathErr *PathError
	return errors.As(err, &pathErr) && pathErr.Op == PathAccess
}

// IsDeletion reports whether err is a recoverable deletion failure.
func IsDeletion(err error) bool {
	var pathErr *PathError
	return errors.As(err, &pathErr) && pathErr.Op == Deletion
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
