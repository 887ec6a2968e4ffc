package parser

import "fmt"

// FunctionParamError reports a parameter whose default value cannot be
// represented in the serialized form. It aborts the whole parse; a
// record with a silently dropped default would be worse than no record.
type FunctionParamError struct {
	Param string
	cause error
}

func (e *FunctionParamError) Error() string {
	return fmt.Sprintf("parameter %q has an unserializable default: %v", e.Param, e.cause)
}

func (e *FunctionParamError) Unwrap() error { return e.cause }
