package model

// Middleware transforms a parameter value before it is consumed. It is
// opaque to the parsing core; registries and live-value stores run it.
type Middleware func(value any) (any, error)

// Endpoint describes an alternate presentation of a parameter value, for
// example a UI widget or a transport-specific encoding.
type Endpoint struct {
	Middleware []Middleware `json:"-"`
}

// InputParam describes one input parameter of a callable.
type InputParam struct {
	// Name is the parameter name, unique within a function.
	Name string `json:"name"`

	// Type is the canonical textual type name. "Any" when the callable
	// carries no annotation and the documentation names no type.
	Type string `json:"type,omitempty"`

	// Positional reports whether a caller must supply the parameter by
	// position. A parameter with a default is not positional.
	Positional bool `json:"positional"`

	// Optional reports whether the parameter may be omitted. True whenever
	// a default is present.
	Optional bool `json:"optional,omitempty"`

	// Default is the default value. Meaningful only when HasDefault is set;
	// a nil Default with HasDefault is a genuine null default.
	Default    any  `json:"default,omitempty"`
	HasDefault bool `json:"-"`

	// Description is the normalized prose description, empty when the
	// documentation carries none.
	Description string `json:"description,omitempty"`

	Middleware []Middleware        `json:"-"`
	Endpoints  map[string]Endpoint `json:"-"`
}

// OutputParam describes one output of a callable.
type OutputParam struct {
	// Name is "out" for a single output, "out0", "out1", ... for multiple.
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Docstring is a standardized parsed documentation record. It is a draft
// view of the callable: the signature may override parts of it during the
// merge, but the record itself is preserved unmodified for traceability.
type Docstring struct {
	Summary      string            `json:"summary,omitempty"`
	InputParams  []InputParam      `json:"input_params"`
	OutputParams []OutputParam     `json:"output_params"`
	Exceptions   map[string]string `json:"exceptions"`

	// Original is the verbatim source text, always retained.
	Original string `json:"original"`
}

// SerializedFunction is the terminal artifact of parsing a callable: its
// name, effective parameters in declaration order, outputs, and the parsed
// documentation record when one exists.
type SerializedFunction struct {
	Name         string        `json:"name"`
	InputParams  []InputParam  `json:"input_params"`
	OutputParams []OutputParam `json:"output_params"`
	Docstring    *Docstring    `json:"docstring,omitempty"`
}

// Clone returns a deep copy of the record. Hook fields (middleware,
// endpoints) are shared; everything else is independent.
func (f SerializedFunction) Clone() SerializedFunction {
	out := f
	out.InputParams = append([]InputParam(nil), f.InputParams...)
	out.OutputParams = append([]OutputParam(nil), f.OutputParams...)
	if f.Docstring != nil {
		ds := f.Docstring.Clone()
		out.Docstring = &ds
	}
	return out
}

// Clone returns a deep copy of the docstring record.
func (d Docstring) Clone() Docstring {
	out := d
	out.InputParams = append([]InputParam(nil), d.InputParams...)
	out.OutputParams = append([]OutputParam(nil), d.OutputParams...)
	if d.Exceptions != nil {
		out.Exceptions = make(map[string]string, len(d.Exceptions))
		for k, v := range d.Exceptions {
			out.Exceptions[k] = v
		}
	}
	return out
}
