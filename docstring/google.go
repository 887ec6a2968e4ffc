package docstring

import (
	"regexp"
	"strings"

	"github.com/jonwraymond/toolexpose/model"
)

var (
	googleParamFull = regexp.MustCompile(`^(\w+) \(([\w\[\], ]+)\): (.+)$`)
	googleParamType = regexp.MustCompile(`^(\w+) \(([\w\[\], ]+)\):?$`)
	googleParamDesc = regexp.MustCompile(`^(\w+): (.+)$`)
	googleReturn    = regexp.MustCompile(`^([\w\[\], ]+): (.+)$`)
	googleRaise     = regexp.MustCompile(`^(\w+): (.+)$`)
)

// ParseGoogle parses a sectioned docstring:
//
//	[Summary]
//
//	Args:
//	    [name] ([type](, optional)): [description]
//	Returns:
//	    [type]: [description]
//	Raises:
//	    [error]: [description]
//
// Section headers switch an active-section state machine; the default
// state accumulates into the summary. Lines inside a section that match no
// entry shape continue the previous entry's description.
func ParseGoogle(text string, opts ...Option) (model.Docstring, error) {
	cfg := newConfig(opts)
	d := &draft{original: text}

	type section int
	const (
		sectionSummary section = iota
		sectionArgs
		sectionReturns
		sectionRaises
	)

	active := sectionSummary
	var lastParam *draftParam
	var lastOutput *draftOutput
	var lastException *draftException

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Args:"):
			active = sectionArgs
			continue
		case strings.HasPrefix(line, "Returns:"):
			active = sectionReturns
			continue
		case strings.HasPrefix(line, "Raises:"):
			active = sectionRaises
			continue
		}

		switch active {
		case sectionSummary:
			if line == "" {
				continue
			}
			if d.hasSummary {
				d.summary += " " + line
			} else {
				d.setSummary(line)
			}
		case sectionArgs:
			if line == "" {
				continue
			}
			p := googleArg(cfg, line)
			if p == nil {
				if lastParam != nil {
					lastParam.description += " " + line
				}
				continue
			}
			d.params = append(d.params, p)
			lastParam = p
		case sectionReturns:
			if line == "" {
				continue
			}
			if m := googleReturn.FindStringSubmatch(line); m != nil {
				out := &draftOutput{description: m[2]}
				if typ, err := cfg.reg.FromText(m[1]); err == nil {
					out.typ = typ
				}
				d.outputs = append(d.outputs, out)
				lastOutput = out
			} else if lastOutput != nil {
				lastOutput.description += " " + line
			}
		case sectionRaises:
			if line == "" {
				continue
			}
			if m := googleRaise.FindStringSubmatch(line); m != nil {
				e := &draftException{name: m[1], description: m[2]}
				d.exceptions = append(d.exceptions, e)
				lastException = e
			} else if lastException != nil {
				lastException.description += " " + line
			}
		}
	}
	return normalize(d, cfg), nil
}

// googleArg matches one Args entry, in priority order: name with type and
// description, name with type only, name with description only. A line
// matching none of these is a continuation and yields nil.
func googleArg(cfg config, line string) *draftParam {
	var name, typeClause, description string
	if m := googleParamFull.FindStringSubmatch(line); m != nil {
		name, typeClause, description = m[1], m[2], m[3]
	} else if m := googleParamType.FindStringSubmatch(line); m != nil {
		name, typeClause = m[1], m[2]
	} else if m := googleParamDesc.FindStringSubmatch(line); m != nil {
		name, description = m[1], m[2]
	} else {
		return nil
	}

	p := &draftParam{
		name:        name,
		description: description,
		optional:    boolPtr(false),
	}
	if typeClause != "" {
		if strings.Contains(typeClause, "optional") {
			p.optional = boolPtr(true)
			typeClause, _, _ = strings.Cut(typeClause, ",")
		}
		typeClause = strings.TrimSpace(typeClause)
		if typeClause != "" && typeClause != "optional" {
			if typ, err := cfg.reg.FromText(typeClause); err == nil {
				p.typ = typ
			}
		}
	}
	return p
}
