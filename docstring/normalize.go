package docstring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonwraymond/toolexpose/model"
	"github.com/jonwraymond/toolexpose/typeref"
)

// defaultsClause matches an embedded "defaults to X" phrase. The value may
// be back-quoted, single-quoted, double-quoted, or a bare token.
var defaultsClause = regexp.MustCompile(
	"defaults to (`[^`]+`|'[^']+'|\"[^\"]+\"|[^\\s.,]+)")

// normalize turns a dialect parser's draft into the finished record:
// descriptions trimmed and punctuated, textual defaults structured and
// coerced, flags inferred, types collapsed to canonical text, unnamed
// outputs named.
func normalize(d *draft, cfg config) model.Docstring {
	rec := model.Docstring{
		Original:     d.original,
		InputParams:  make([]model.InputParam, 0, len(d.params)),
		OutputParams: make([]model.OutputParam, 0, len(d.outputs)),
		Exceptions:   make(map[string]string, len(d.exceptions)),
	}
	if d.hasSummary {
		rec.Summary = strings.TrimSpace(d.summary)
	}

	for _, p := range d.params {
		rec.InputParams = append(rec.InputParams, normalizeParam(p))
	}
	for i, o := range d.outputs {
		out := model.OutputParam{
			Name:        o.name,
			Description: strings.TrimSpace(o.description),
		}
		if out.Name == "" {
			if len(d.outputs) > 1 {
				out.Name = fmt.Sprintf("out%d", i)
			} else {
				out.Name = "out"
			}
		}
		if o.typ != nil {
			out.Type = o.typ.Name()
		}
		rec.OutputParams = append(rec.OutputParams, out)
	}
	for _, e := range d.exceptions {
		rec.Exceptions[e.name] = strings.TrimSpace(e.description)
	}
	return rec
}

func normalizeParam(p *draftParam) model.InputParam {
	out := model.InputParam{Name: p.name}
	desc := strings.TrimSpace(p.description)

	if m := defaultsClause.FindStringSubmatchIndex(desc); m != nil {
		value := desc[m[2]:m[3]]
		desc = strings.TrimSpace(desc[:m[0]] + desc[m[1]:])
		if !p.hasDefault {
			p.def = value
			p.hasDefault = true
		}
	}

	if p.hasDefault {
		if s, ok := p.def.(string); ok {
			p.def = stripQuotes(s)
			if p.typ != nil {
				p.def = coerceDefault(p.def.(string), p.typ)
			}
		}
		out.Default = p.def
		out.HasDefault = true
	}

	if p.typ != nil {
		out.Type = p.typ.Name()
	}

	out.Description = tidyDescription(desc)

	// Positional is inferred first from the default and the explicit
	// optional flag, then optional from the default and positional.
	switch {
	case p.positional != nil:
		out.Positional = *p.positional
	case p.hasDefault || (p.optional != nil && *p.optional):
		out.Positional = false
	default:
		out.Positional = true
	}
	switch {
	case p.optional != nil:
		out.Optional = *p.optional
	case p.hasDefault || !out.Positional:
		out.Optional = true
	default:
		out.Optional = false
	}
	return out
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		switch s[0] {
		case '`', '\'', '"':
			return s[1 : len(s)-1]
		}
	}
	return s
}

// coerceDefault converts a textual default through the declared type. A
// value that does not parse is kept as text; losing it entirely would be
// worse than storing the original spelling.
func coerceDefault(s string, typ *typeref.Type) any {
	switch typ.Name() {
	case "int":
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	case "float":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	case "bool":
		if b, err := strconv.ParseBool(strings.ToLower(s)); err == nil {
			return b
		}
	case "None":
		if s == "None" {
			return nil
		}
	}
	return s
}

// tidyDescription normalizes stray spacing, guarantees a trailing period
// on non-empty text, and reduces empty text to the zero value so the field
// is dropped from serialized records.
func tidyDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "  ", " ")
	desc = strings.ReplaceAll(desc, " .", ".")
	desc = strings.ReplaceAll(desc, " ,", ",")
	desc = strings.ReplaceAll(desc, " :", ":")
	desc = strings.ReplaceAll(desc, ",.", ".")
	desc = strings.TrimSpace(desc)
	if desc != "" && !strings.HasSuffix(desc, ".") {
		desc += "."
	}
	return desc
}
