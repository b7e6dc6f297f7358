package glot

import (
	"errors"
	"fmt"
)

// Failure classification sentinels. Every error returned by this package
// wraps exactly one of these so callers can route with errors.Is.
var (
	// ErrInvalidArgument marks misuse of the surface itself: nil handles,
	// inconsistent option combinations, malformed values.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIO marks filesystem failures such as a missing settings file or an
	// unwritable output path.
	ErrIO = errors.New("io error")
	// ErrParse marks malformed settings content.
	ErrParse = errors.New("parse error")
	// ErrPipeline marks failures raised by the translation pipeline or its
	// collaborator.
	ErrPipeline = errors.New("pipeline error")
)

// classified tags an error with a kind sentinel while leaving the message
// untouched, so errors.Is can route on kind and ABI callers still see the
// bare failure text.
type classified struct {
	kind error
	err  error
}

func (e *classified) Error() string   { return e.err.Error() }
func (e *classified) Unwrap() []error { return []error{e.kind, e.err} }

// wrapKind classifies err under kind. A nil err stays nil.
func wrapKind(kind, err error) error {
	if err == nil {
		return nil
	}
	return &classified{kind: kind, err: err}
}

func kindErrorf(kind error, format string, args ...any) error {
	return &classified{kind: kind, err: fmt.Errorf(format, args...)}
}
