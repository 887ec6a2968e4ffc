package signature

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jonwraymond/toolexpose/typeref"
)

// Param describes one parameter of a resolved signature.
type Param struct {
	Name       string
	Type       *typeref.Type
	Default    any
	HasDefault bool
	Variadic   bool
}

// Signature is the effective parameter and return shape of a callable.
// A trailing error return is recorded in Err and never appears in
// Returns.
type Signature struct {
	Params  []Param
	Returns []*typeref.Type
	Err     bool
}

// Clone returns a deep copy, so callers can fold parameters without
// touching the original.
func (s Signature) Clone() Signature {
	out := Signature{Err: s.Err}
	out.Params = append([]Param(nil), s.Params...)
	out.Returns = append([]*typeref.Type(nil), s.Returns...)
	return out
}

// Param returns the named parameter, or nil.
func (s Signature) Param(name string) *Param {
	for i := range s.Params {
		if s.Params[i].Name == name {
			return &s.Params[i]
		}
	}
	return nil
}

// String renders the parameter list, for example "(a, b=1, c=2)".
func (s Signature) String() string {
	parts := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		name := p.Name
		if p.Variadic {
			name = "*" + name
		}
		if p.HasDefault {
			parts = append(parts, fmt.Sprintf("%s=%s", name, renderValue(p.Default)))
		} else {
			parts = append(parts, name)
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func renderValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		return "'" + v + "'"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Callable couples a function value with its resolvable metadata.
type Callable interface {
	Name() string
	Doc() string
	Signature() Signature
	Func() reflect.Value
}

// Resolve unwraps nested partial layers and returns the effective
// signature together with the innermost base callable.
func Resolve(c Callable) (Signature, Callable) {
	sig := c.Signature()
	for {
		w, ok := c.(interface{ Base() Callable })
		if !ok {
			return sig, c
		}
		c = w.Base()
	}
}
