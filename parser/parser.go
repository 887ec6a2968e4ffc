package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonwraymond/toolexpose/docstring"
	"github.com/jonwraymond/toolexpose/model"
	"github.com/jonwraymond/toolexpose/signature"
	"github.com/jonwraymond/toolexpose/typeref"
)

// Option configures ParseFunction.
type Option func(*config)

// WithRegistry resolves types against reg instead of the process-wide
// typeref.Default.
func WithRegistry(reg *typeref.Registry) Option {
	return func(c *config) { c.reg = reg }
}

type config struct {
	reg *typeref.Registry
}

var synthesizedName = regexp.MustCompile(`^arg\d+$`)

// ParseFunction resolves c's effective signature, parses its doc text,
// and merges the two into a SerializedFunction. The record is built
// fresh on every call and is not mutated afterwards.
func ParseFunction(c signature.Callable, opts ...Option) (model.SerializedFunction, error) {
	cfg := config{reg: typeref.Default}
	for _, opt := range opts {
		opt(&cfg)
	}

	sig, base := signature.Resolve(c)

	var doc *model.Docstring
	if text := strings.TrimSpace(base.Doc()); text != "" {
		parsed := docstring.Parse(base.Doc(), docstring.WithRegistry(cfg.reg))
		doc = &parsed
	}

	adoptDocstringNames(sig.Params, doc)

	rec := model.SerializedFunction{
		Name:         base.Name(),
		InputParams:  make([]model.InputParam, 0, len(sig.Params)),
		OutputParams: []model.OutputParam{},
		Docstring:    doc,
	}

	for _, p := range sig.Params {
		merged, err := mergeParam(p, doc)
		if err != nil {
			return model.SerializedFunction{}, err
		}
		rec.InputParams = append(rec.InputParams, merged)
	}

	rec.OutputParams = mergeOutputs(sig, doc)
	return rec, nil
}

// adoptDocstringNames renames synthesized argN parameters after the
// docstring's declared parameters, positionally, when the docstring
// names every one of them. Reflection cannot recover Go parameter
// names, so a fully documented function is the better source.
func adoptDocstringNames(params []signature.Param, doc *model.Docstring) {
	if doc == nil || len(doc.InputParams) < len(params) {
		return
	}
	for i := range params {
		if !synthesizedName.MatchString(params[i].Name) {
			return
		}
	}
	for i := range params {
		params[i].Name = doc.InputParams[i].Name
	}
}

func mergeParam(p signature.Param, doc *model.Docstring) (model.InputParam, error) {
	merged := model.InputParam{Name: p.Name}
	if p.Type != nil {
		merged.Type = p.Type.Name()
	}

	if p.HasDefault {
		merged.Default = p.Default
		merged.HasDefault = true
	}

	var dp *model.InputParam
	if doc != nil {
		for i := range doc.InputParams {
			if doc.InputParams[i].Name == p.Name {
				dp = &doc.InputParams[i]
				break
			}
		}
	}
	if dp != nil {
		merged.Description = dp.Description
		if dp.Type != "" && (merged.Type == "" || merged.Type == "Any") {
			merged.Type = dp.Type
		}
		if !merged.HasDefault && dp.HasDefault {
			merged.Default = dp.Default
			merged.HasDefault = true
		}
	}

	merged.Positional = !merged.HasDefault && !(dp != nil && dp.Optional)
	merged.Optional = merged.HasDefault || !merged.Positional

	if merged.HasDefault {
		if _, err := json.Marshal(merged.Default); err != nil {
			return model.InputParam{}, &FunctionParamError{Param: p.Name, cause: err}
		}
	}
	return merged, nil
}

// mergeOutputs sources output parameters from the docstring when it
// declares any, otherwise synthesizes them from the return types. A
// callable that returns nothing yields zero outputs regardless of the
// docstring's Returns section.
func mergeOutputs(sig signature.Signature, doc *model.Docstring) []model.OutputParam {
	if len(sig.Returns) == 0 {
		return []model.OutputParam{}
	}
	if doc != nil && len(doc.OutputParams) > 0 {
		out := make([]model.OutputParam, len(doc.OutputParams))
		copy(out, doc.OutputParams)
		return out
	}

	types := sig.Returns
	if len(types) == 1 && types[0].Kind() == typeref.KindTuple {
		types = types[0].Args()
	}

	out := make([]model.OutputParam, 0, len(types))
	for i, t := range types {
		name := "out"
		if len(types) > 1 {
			name = fmt.Sprintf("out%d", i)
		}
		out = append(out, model.OutputParam{Name: name, Type: t.Name()})
	}
	return out
}
