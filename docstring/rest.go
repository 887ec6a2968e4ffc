package docstring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonwraymond/toolexpose/model"
)

var (
	fieldNamed = regexp.MustCompile(`^([\w]+):(.+)$`)
	fieldBare  = regexp.MustCompile(`^([\w]+)$`)
)

// ParseREST parses a structured-field docstring:
//
//	[Summary]
//
//	:param [name]: [description], defaults to [value]
//	:type [name]: [type](, optional)
//	:raises [error]: [description]
//	:return: [description]
//	:rtype: [type]
//
// Field boundaries are lines beginning with ":"; continuation lines are
// joined with a single space. A field that cannot be matched to its
// required shape fails with ErrMalformedField; an unrecognized field fails
// with UnknownSectionError.
func ParseREST(text string, opts ...Option) (model.Docstring, error) {
	cfg := newConfig(opts)
	d := &draft{original: text}

	sections := restSections(":summary:\n" + text)
	for _, section := range sections {
		switch {
		case strings.HasPrefix(section, ":summary:"):
			if s := strings.TrimSpace(strings.TrimPrefix(section, ":summary:")); s != "" {
				d.setSummary(s)
			}
		case strings.HasPrefix(section, ":param"):
			if err := restParam(d, strings.TrimSpace(strings.TrimPrefix(section, ":param"))); err != nil {
				return model.Docstring{}, err
			}
		case strings.HasPrefix(section, ":type"):
			if err := restType(d, cfg, strings.TrimSpace(strings.TrimPrefix(section, ":type"))); err != nil {
				return model.Docstring{}, err
			}
		case strings.HasPrefix(section, ":raises"):
			body := strings.TrimSpace(strings.TrimPrefix(section, ":raises"))
			m := fieldNamed.FindStringSubmatch(body)
			if m == nil {
				return model.Docstring{}, fmt.Errorf("%w: raises field %q", ErrMalformedField, body)
			}
			d.exceptions = append(d.exceptions, &draftException{
				name:        m[1],
				description: strings.TrimSpace(m[2]),
			})
		case strings.HasPrefix(section, ":rtype"):
			if len(d.outputs) == 0 {
				return model.Docstring{}, fmt.Errorf("%w: rtype field without a return field", ErrMalformedField)
			}
			body := strings.TrimSpace(trimFieldMarker(section, ":rtype"))
			if typ, err := cfg.reg.FromText(body); err == nil {
				d.outputs[0].typ = typ
			}
		case strings.HasPrefix(section, ":return"):
			d.outputs = append(d.outputs, &draftOutput{
				description: strings.TrimSpace(trimFieldMarker(section, ":returns", ":return")),
			})
		default:
			name := section
			if i := strings.Index(name[1:], ":"); i >= 0 {
				name = name[:i+2]
			}
			return model.Docstring{}, &UnknownSectionError{Section: name}
		}
	}
	return normalize(d, cfg), nil
}

func restParam(d *draft, body string) error {
	p := &draftParam{optional: boolPtr(false)}
	if m := fieldNamed.FindStringSubmatch(body); m != nil {
		p.name = m[1]
		p.description = strings.TrimSpace(m[2])
	} else if m := fieldBare.FindStringSubmatch(body); m != nil {
		p.name = m[1]
	} else {
		return fmt.Errorf("%w: param field %q", ErrMalformedField, body)
	}

	if desc, def, found := strings.Cut(p.description, "defaults to"); found {
		p.description = strings.Trim(desc, " ,")
		p.def = strings.TrimSpace(def)
		p.hasDefault = true
	}
	d.params = append(d.params, p)
	return nil
}

func restType(d *draft, cfg config, body string) error {
	if len(d.params) == 0 {
		return fmt.Errorf("%w: type field without a param field", ErrMalformedField)
	}

	p := d.params[len(d.params)-1]
	if name, rest, found := strings.Cut(body, ":"); found {
		p = d.param(strings.TrimSpace(name))
		if p == nil {
			return fmt.Errorf("%w: type field for undeclared parameter %q", ErrMalformedField, strings.TrimSpace(name))
		}
		body = strings.TrimSpace(rest)
	}

	if ann, _, found := strings.Cut(body, ", optional"); found {
		p.optional = boolPtr(true)
		body = strings.TrimSpace(ann)
	} else {
		p.optional = boolPtr(false)
	}

	if typ, err := cfg.reg.FromText(body); err == nil {
		p.typ = typ
	}
	return nil
}

// restSections splits the docstring into field sections: every line
// starting with ":" opens a new section, and a section's lines are joined
// with a single space.
func restSections(text string) []string {
	var sections []string
	var current []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") && len(current) > 0 {
			sections = append(sections, strings.Join(current, " "))
			current = current[:0]
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		sections = append(sections, strings.Join(current, " "))
	}
	return sections
}

// trimFieldMarker removes the first matching ":field:" marker, tolerating
// the plural spelling.
func trimFieldMarker(section string, markers ...string) string {
	for _, m := range markers {
		if strings.HasPrefix(section, m+":") {
			return strings.TrimPrefix(section, m+":")
		}
		if strings.HasPrefix(section, m) {
			return strings.TrimPrefix(section, m)
		}
	}
	return section
}
