package signature

import "errors"

var (
	// ErrNotFunc is returned when a value passed to FromFunc is not a
	// Go function.
	ErrNotFunc = errors.New("not a function")

	// ErrUnknownParam is returned when an option or a named bind refers
	// to a parameter the signature does not declare.
	ErrUnknownParam = errors.New("unknown parameter")

	// ErrTooManyArgs is returned when a partial application binds more
	// positional arguments than the callable has free parameters.
	ErrTooManyArgs = errors.New("too many bound arguments")

	// ErrNoSuchMethod is returned by Bound when the receiver has no
	// method of the requested name.
	ErrNoSuchMethod = errors.New("no such method")
)
