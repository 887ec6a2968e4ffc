package docstring

import (
	"github.com/jonwraymond/toolexpose/typeref"
)

// Option configures a parse.
type Option func(*config)

// WithRegistry resolves type fragments against reg instead of the
// process-wide typeref.Default.
func WithRegistry(reg *typeref.Registry) Option {
	return func(c *config) { c.reg = reg }
}

type config struct {
	reg *typeref.Registry
}

func newConfig(opts []Option) config {
	cfg := config{reg: typeref.Default}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// draft is a dialect parser's raw output prior to normalization. Flags are
// tri-state pointers so the normalizer can tell "explicitly false" from
// "never set".
type draft struct {
	summary    string
	hasSummary bool
	params     []*draftParam
	outputs    []*draftOutput
	exceptions []*draftException
	original   string
}

type draftParam struct {
	name        string
	typ         *typeref.Type
	description string
	def         any
	hasDefault  bool
	optional    *bool
	positional  *bool
}

type draftOutput struct {
	name        string
	typ         *typeref.Type
	description string
}

type draftException struct {
	name        string
	description string
}

func (d *draft) param(name string) *draftParam {
	for _, p := range d.params {
		if p.name == name {
			return p
		}
	}
	return nil
}

func (d *draft) setSummary(s string) {
	d.summary = s
	d.hasSummary = true
}

func boolPtr(v bool) *bool { return &v }
