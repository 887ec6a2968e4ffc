package signature

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strings"

	"github.com/jonwraymond/toolexpose/typeref"
)

// Option configures FromFunc.
type Option func(*config)

// WithName sets the callable's name instead of the reflected one.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithDoc attaches the callable's documentation text.
func WithDoc(doc string) Option {
	return func(c *config) { c.doc = doc }
}

// WithParamNames names the leading parameters in declaration order.
// Unnamed trailing parameters keep their synthesized argN names.
func WithParamNames(names ...string) Option {
	return func(c *config) { c.paramNames = names }
}

// WithDefault records a default value for the named parameter.
func WithDefault(name string, value any) Option {
	return func(c *config) {
		c.defaults = append(c.defaults, namedDefault{name: name, value: value})
	}
}

// WithRegistry resolves parameter and return types against reg instead
// of the process-wide typeref.Default.
func WithRegistry(reg *typeref.Registry) Option {
	return func(c *config) { c.reg = reg }
}

type namedDefault struct {
	name  string
	value any
}

type config struct {
	name       string
	doc        string
	paramNames []string
	defaults   []namedDefault
	reg        *typeref.Registry
}

type funcCallable struct {
	name string
	doc  string
	sig  Signature
	fn   reflect.Value
}

func (f *funcCallable) Name() string         { return f.name }
func (f *funcCallable) Doc() string          { return f.doc }
func (f *funcCallable) Signature() Signature { return f.sig.Clone() }
func (f *funcCallable) Func() reflect.Value  { return f.fn }

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// FromFunc builds a Callable by reflection over fn. Parameter and
// return types come from the function type; names are synthesized
// arg0..argN unless WithParamNames supplies them; defaults are attached
// with WithDefault. A variadic final parameter is typed as a list of
// its element type.
func FromFunc(fn any, opts ...Option) (Callable, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T", ErrNotFunc, fn)
	}
	cfg := config{reg: typeref.Default}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := v.Type()
	if len(cfg.paramNames) > t.NumIn() {
		return nil, fmt.Errorf("%w: %d names for %d parameters",
			ErrUnknownParam, len(cfg.paramNames), t.NumIn())
	}

	sig := Signature{}
	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		p := Param{Name: fmt.Sprintf("arg%d", i)}
		if i < len(cfg.paramNames) {
			p.Name = cfg.paramNames[i]
		}
		if t.IsVariadic() && i == t.NumIn()-1 {
			p.Variadic = true
			in = in.Elem()
			elem, err := cfg.reg.FromGo(in)
			if err != nil {
				return nil, err
			}
			p.Type = cfg.reg.ListOf(elem)
		} else {
			typ, err := cfg.reg.FromGo(in)
			if err != nil {
				return nil, err
			}
			p.Type = typ
		}
		sig.Params = append(sig.Params, p)
	}

	for i := 0; i < t.NumOut(); i++ {
		out := t.Out(i)
		if out == errorType && i == t.NumOut()-1 {
			sig.Err = true
			continue
		}
		typ, err := cfg.reg.FromGo(out)
		if err != nil {
			return nil, err
		}
		sig.Returns = append(sig.Returns, typ)
	}

	for _, d := range cfg.defaults {
		p := sig.Param(d.name)
		if p == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownParam, d.name)
		}
		p.Default = d.value
		p.HasDefault = true
	}

	name := cfg.name
	if name == "" {
		name = funcName(v)
	}
	return &funcCallable{name: name, doc: cfg.doc, sig: sig, fn: v}, nil
}

// Bound wraps the named method of receiver as a callable. The receiver
// is folded into the method value and never appears as a parameter.
func Bound(receiver any, method string, opts ...Option) (Callable, error) {
	m := reflect.ValueOf(receiver).MethodByName(method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %T.%s", ErrNoSuchMethod, receiver, method)
	}
	return FromFunc(m.Interface(), append([]Option{WithName(method)}, opts...)...)
}

var anonFuncName = regexp.MustCompile(`^(func\d+|\d+)$`)

// funcName derives a bare name from the runtime symbol, stripping the
// package path and the method-value suffix. Anonymous functions yield
// "func".
func funcName(v reflect.Value) string {
	full := runtime.FuncForPC(v.Pointer()).Name()
	name := full[strings.LastIndex(full, ".")+1:]
	name = strings.TrimSuffix(name, "-fm")
	if name == "" || anonFuncName.MatchString(name) {
		return "func"
	}
	return name
}
