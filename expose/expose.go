package expose

import (
	"fmt"

	"github.com/jonwraymond/toolexpose/model"
	"github.com/jonwraymond/toolexpose/parser"
	"github.com/jonwraymond/toolexpose/signature"
	"github.com/jonwraymond/toolexpose/typeref"
)

// Method is a callable with its serialized record attached. The record
// is parsed once at wrap time and never re-derived.
type Method struct {
	signature.Callable
	record model.SerializedFunction
}

// Record returns a copy of the cached record, so callers can mutate
// their copy without being observed by other holders of the method.
func (m *Method) Record() model.SerializedFunction {
	return m.record.Clone()
}

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

// WithRegistry resolves types against reg instead of the process-wide
// typeref.Default.
func WithRegistry(reg *typeref.Registry) WrapOption {
	return func(c *wrapConfig) { c.parserOpts = append(c.parserOpts, parser.WithRegistry(reg)) }
}

// WithOutputs overrides or extends the record's output parameters
// positionally: the override at index i replaces the non-empty fields
// of output i, and overrides past the end are appended.
func WithOutputs(outputs ...model.OutputParam) WrapOption {
	return func(c *wrapConfig) { c.outputs = outputs }
}

type wrapConfig struct {
	parserOpts []parser.Option
	outputs    []model.OutputParam
}

// Wrap parses c and returns it as an exposed method. Wrapping an
// already exposed method returns it unchanged.
func Wrap(c signature.Callable, opts ...WrapOption) (*Method, error) {
	if m, ok := c.(*Method); ok {
		return m, nil
	}
	var cfg wrapConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	rec, err := parser.ParseFunction(c, cfg.parserOpts...)
	if err != nil {
		return nil, err
	}
	overrideOutputs(&rec, cfg.outputs)
	return &Method{Callable: c, record: rec}, nil
}

// WrapFunc wraps a plain Go function, forwarding fopts to the
// signature resolver.
func WrapFunc(fn any, fopts []signature.Option, opts ...WrapOption) (*Method, error) {
	c, err := signature.FromFunc(fn, fopts...)
	if err != nil {
		return nil, err
	}
	return Wrap(c, opts...)
}

// IsExposed reports whether c already carries a cached record.
func IsExposed(c signature.Callable) bool {
	_, ok := c.(*Method)
	return ok
}

func overrideOutputs(rec *model.SerializedFunction, outputs []model.OutputParam) {
	for i, o := range outputs {
		if i >= len(rec.OutputParams) {
			if o.Name == "" {
				o.Name = outputName(i, len(outputs))
			}
			rec.OutputParams = append(rec.OutputParams, o)
			continue
		}
		if o.Name != "" {
			rec.OutputParams[i].Name = o.Name
		}
		if o.Type != "" {
			rec.OutputParams[i].Type = o.Type
		}
		if o.Description != "" {
			rec.OutputParams[i].Description = o.Description
		}
	}
}

func outputName(i, total int) string {
	if total <= 1 {
		return "out"
	}
	return fmt.Sprintf("out%d", i)
}
