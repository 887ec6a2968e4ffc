package docstring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonwraymond/toolexpose/model"
)

var (
	numpyUnderline = regexp.MustCompile(`^-{3,}$`)
	numpyEntry     = regexp.MustCompile(`^([A-Za-z_]\w*(?:\s*,\s*[A-Za-z_]\w*)*)\s*:\s*(.*)$`)
	numpyRaise     = regexp.MustCompile(`^([A-Za-z_][\w.]*)$`)
)

// ParseNumpy parses a scientific-style docstring:
//
//	[Summary]
//
//	Parameters
//	----------
//	[name] : [type](, optional)
//	    [description]
//	[name1], [name2] : [type]
//	    [shared description]
//	Returns
//	-------
//	[name] : [type]
//	    [description]
//	Raises
//	------
//	[error]
//	    [description]
//
// Entry lines sit at the section's base indentation; deeper lines continue
// the open entry's description. Comma-separated names expand into separate
// parameters sharing one type and description.
func ParseNumpy(text string, opts ...Option) (model.Docstring, error) {
	cfg := newConfig(opts)
	d := &draft{original: text}

	lines := strings.Split(text, "\n")
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimSpace(line)
	}

	const (
		sectionSummary = ""
		sectionParams  = "Parameters"
		sectionReturns = "Returns"
		sectionRaises  = "Raises"
	)

	active := sectionSummary
	entryIndent := -1
	var openDesc *string // description of the entry accepting continuations
	var pending []*draftParam

	flush := func() {
		openDesc = nil
		pending = nil
	}

	for i := 0; i < len(lines); i++ {
		line := trimmed[i]

		// A section title is a known header word underlined with dashes.
		if i+1 < len(lines) && numpyUnderline.MatchString(trimmed[i+1]) {
			switch line {
			case sectionParams, sectionReturns, sectionRaises:
				active = line
				entryIndent = -1
				flush()
				i++ // skip the underline
				continue
			}
		}
		if line == "" {
			continue
		}

		switch active {
		case sectionSummary:
			if d.hasSummary {
				d.summary += " " + line
			} else {
				d.setSummary(line)
			}
			continue
		}

		indent := indentOf(lines[i])
		if entryIndent < 0 {
			entryIndent = indent
		}
		if indent > entryIndent {
			if openDesc == nil {
				return model.Docstring{}, fmt.Errorf("%w: continuation with no open entry in %s", ErrMalformedField, active)
			}
			if *openDesc != "" {
				*openDesc += " "
			}
			*openDesc += line
			for _, p := range pending {
				p.description = *openDesc
			}
			continue
		}

		switch active {
		case sectionParams:
			m := numpyEntry.FindStringSubmatch(line)
			if m == nil {
				return model.Docstring{}, fmt.Errorf("%w: parameter entry %q", ErrMalformedField, line)
			}
			flush()
			typeText := strings.TrimSpace(m[2])
			optional := false
			if ann, _, found := strings.Cut(typeText, ", optional"); found {
				optional = true
				typeText = strings.TrimSpace(ann)
			}
			shared := ""
			openDesc = &shared
			for _, name := range strings.Split(m[1], ",") {
				p := &draftParam{name: strings.TrimSpace(name)}
				if optional {
					p.optional = boolPtr(true)
				}
				if typeText != "" {
					if typ, err := cfg.reg.FromText(typeText); err == nil {
						p.typ = typ
					}
				}
				d.params = append(d.params, p)
				pending = append(pending, p)
			}
		case sectionReturns:
			flush()
			out := &draftOutput{}
			typeText := line
			if m := numpyEntry.FindStringSubmatch(line); m != nil && strings.TrimSpace(m[2]) != "" && !strings.Contains(m[1], ",") {
				out.name = m[1]
				typeText = strings.TrimSpace(m[2])
			}
			if typ, err := cfg.reg.FromText(typeText); err == nil {
				out.typ = typ
			}
			d.outputs = append(d.outputs, out)
			openDesc = &out.description
		case sectionRaises:
			m := numpyRaise.FindStringSubmatch(line)
			if m == nil {
				return model.Docstring{}, fmt.Errorf("%w: raises entry %q", ErrMalformedField, line)
			}
			flush()
			e := &draftException{name: m[1]}
			d.exceptions = append(d.exceptions, e)
			openDesc = &e.description
		}
	}
	return normalize(d, cfg), nil
}

func indentOf(line string) int {
	n := 0
	for _, c := range line {
		switch c {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}
