// ierrors package provides a wrapper around the "github.com/cockroachdb/errors" package.
// Every error created or wrapped through this package carries the stacktrace of the place where it was created,
// which is printed when the error is formatted with "%+v".
//
//nolint:goerr113
package ierrors

import (
	"errors"

	cerrors "github.com/cockroachdb/errors"
)

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(text string) error {
	return cerrors.New(text)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error.
//
// If the format specifier includes a %w verb with an error operand,
// the returned error wraps the operand.
func Errorf(format string, args ...any) error {
	return cerrors.Errorf(format, args...)
}

// Wrap prepends an error with a message and wraps it into a new error.
// Wrap returns nil if err is nil.
func Wrap(err error, message string) error {
	return cerrors.Wrap(err, message)
}

// Wrapf prepends an error with a message format specifier and arguments
// and wraps it into a new error.
// Wrapf returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	return cerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stacktrace at the point WithStack was called.
// WithStack returns nil if err is nil.
func WithStack(err error) error {
	return cerrors.WithStack(err)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
// Join returns nil if errs contains no non-nil values.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap returns the result of calling the Unwrap method on err, if err's
// type contains an Unwrap method returning error.
// Otherwise, Unwrap returns nil.
func Unwrap(err error) error {
	return cerrors.UnwrapOnce(err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return cerrors.Is(err, target)
}

// As finds the first error in err's tree that matches target, and if one is found, sets
// target to that error value and returns true. Otherwise, it returns false.
func As(err error, target any) bool {
	return cerrors.As(err, target)
}
