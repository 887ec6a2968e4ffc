package signature

import (
	"fmt"
	"reflect"
)

// partialCallable is a callable with some parameters folded away. It
// keeps a reference to its base so Resolve can reach the original.
type partialCallable struct {
	base Callable
	sig  Signature
}

func (p *partialCallable) Name() string         { return p.base.Name() }
func (p *partialCallable) Doc() string          { return p.base.Doc() }
func (p *partialCallable) Signature() Signature { return p.sig.Clone() }
func (p *partialCallable) Func() reflect.Value  { return p.base.Func() }
func (p *partialCallable) Base() Callable       { return p.base }

// Partial binds the leading free parameters of c positionally and
// removes them from the visible signature. Nested partials stack.
func Partial(c Callable, args ...any) (Callable, error) {
	sig := c.Signature()
	if len(args) > len(sig.Params) {
		return nil, fmt.Errorf("%w: %d for %d free parameters",
			ErrTooManyArgs, len(args), len(sig.Params))
	}
	sig.Params = sig.Params[len(args):]
	return &partialCallable{base: c, sig: sig}, nil
}

// PartialNamed binds parameters by name. A named bind on a still-free
// parameter becomes that parameter's default, keeping it visible the
// way a keyword bind leaves it overridable.
func PartialNamed(c Callable, binds map[string]any) (Callable, error) {
	sig := c.Signature()
	for name, value := range binds {
		p := sig.Param(name)
		if p == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownParam, name)
		}
		p.Default = value
		p.HasDefault = true
	}
	return &partialCallable{base: c, sig: sig}, nil
}
