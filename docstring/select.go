package docstring

import (
	"regexp"
	"strings"

	"github.com/jonwraymond/toolexpose/model"
)

// Dialect identifies one of the supported docstring conventions.
type Dialect int

const (
	// DialectNone means no dialect matched; only a summary is available.
	DialectNone Dialect = iota
	// DialectREST is the structured-field style (":param", ":raises", ...).
	DialectREST
	// DialectGoogle is the sectioned style ("Args:", "Returns:", ...).
	DialectGoogle
	// DialectNumpy is the scientific style (underlined section titles).
	DialectNumpy
)

var (
	numpySection    = regexp.MustCompile(`(?m)^[ \t]*(Parameters|Returns|Raises)[ \t]*\r?\n[ \t]*-{3,}[ \t]*$`)
	googleWithTypes = regexp.MustCompile(`(?m)^[ \t]*[a-zA-Z_]\w*\s?\([^)\n]*\):`)
	googleBareName  = regexp.MustCompile(`(?m)^[ \t]*[a-zA-Z_]\w*:`)
)

// Select inspects a docstring's textual markers and picks the dialect that
// applies. Structured-field markers win, then scientific section
// underlines, then sectioned-style entry lines. Detection is independent
// per docstring.
func Select(text string) Dialect {
	if strings.Contains(text, ":param") ||
		strings.Contains(text, ":raises") ||
		strings.Contains(text, ":return") {
		return DialectREST
	}
	if numpySection.MatchString(text) {
		return DialectNumpy
	}
	if googleWithTypes.MatchString(text) || googleBareName.MatchString(text) {
		return DialectGoogle
	}
	return DialectNone
}

// Parse extracts a standardized record from a docstring of any supported
// dialect. It never fails: when no dialect matches, or the matched
// dialect's grammar rejects the text, the full text is kept as the
// summary and Original is preserved intact.
func Parse(text string, opts ...Option) model.Docstring {
	var (
		rec model.Docstring
		err error
	)
	switch Select(text) {
	case DialectREST:
		rec, err = ParseREST(text, opts...)
	case DialectGoogle:
		rec, err = ParseGoogle(text, opts...)
	case DialectNumpy:
		rec, err = ParseNumpy(text, opts...)
	default:
		return summaryOnly(text, opts)
	}
	if err != nil {
		return summaryOnly(text, opts)
	}
	return rec
}

func summaryOnly(text string, opts []Option) model.Docstring {
	cfg := newConfig(opts)
	d := &draft{original: text}
	if s := strings.TrimSpace(text); s != "" {
		d.setSummary(s)
	}
	return normalize(d, cfg)
}
