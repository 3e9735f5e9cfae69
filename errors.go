package dirtree

import "github.com/pkg/errors"

// Sentinel errors covering the status taxonomy of every operation.
// Check against these with errors.Is; the error returned from an
// operation additionally carries the offending path as context.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrExists          = errors.New("already exists")
	ErrNotEmpty        = errors.New("not empty")
	ErrBusy            = errors.New("busy")
)

// wrapPath attaches the path an operation failed on to a sentinel
// error without losing errors.Is-compatibility with the sentinel.
func wrapPath(sentinel error, path string) error {
	return errors.Wrapf(sentinel, "path %q", path)
}
