package internal

import "github.com/pkg/errors"

// Error kinds. Every error returned by this package wraps exactly one of
// these, so callers can match with errors.Is.
var (
	ErrInvalidOperation    = errors.New("invalid operation")
	ErrCorruptTopology     = errors.New("corrupt topology")
	ErrConstructionFailure = errors.New("construction failure")
	ErrDanglingReference   = errors.New("dangling reference")
)

// Threading errors through every step of linking an arrangement would bury the
// actual algorithm. Builder code panics with a BuildError instead, and the
// public entry points recover to convert it back into an error.
type BuildError struct {
	err error
}

func (e BuildError) Error() string { return e.err.Error() }
func (e BuildError) Unwrap() error { return e.err }

// Panic with a BuildError wrapping the given kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(BuildError{errors.Wrapf(kind, format, args...)})
}

// HandleBuildPanicRecover converts a recovered BuildError back into an error.
// Any other panic value is re-raised.
func HandleBuildPanicRecover(r interface{}) error {
	if r != nil {
		if buildError, ok := r.(BuildError); ok {
			return buildError.err
		}
		panic(r)
	}
	return nil
}

func danglingf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDanglingReference, format, args...)
}

func corruptf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorruptTopology, format, args...)
}

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidOperation, format, args...)
}
