package docstring

import (
	"errors"
	"fmt"
)

// ErrMalformedField reports a structured field that does not match the
// "name: description" shape its grammar requires.
var ErrMalformedField = errors.New("malformed docstring field")

// UnknownSectionError reports a field or section that a dialect parser
// could not attribute to a known slot.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown docstring section %q", e.Section)
}
