package typeref

import (
	"errors"
	"fmt"
)

// Error values for consistent error handling by callers.
var (
	// ErrNotAType reports that a value of the wrong kind was passed where a
	// type identity or type name was expected.
	ErrNotAType = errors.New("not a type")

	// ErrNameTaken reports an explicit attempt to register a name that is
	// already bound to a different type.
	ErrNameTaken = errors.New("type name already registered")
)

// TypeNotFoundError reports that a textual type name or a runtime type
// could not be resolved in either direction.
type TypeNotFoundError struct {
	// Name is the offending textual name or rendered runtime type.
	Name string

	cause error
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("type %q not found", e.Name)
}

// Unwrap returns the chained cause, such as a resolver failure, or nil.
func (e *TypeNotFoundError) Unwrap() error { return e.cause }
