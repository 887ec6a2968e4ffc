package typeref

import (
	"reflect"
	"sync"
)

// Resolver resolves a dotted external type name ("datetime.datetime") that
// the registry does not know. It is a pluggable capability: the default
// registry has none and fails such lookups with a TypeNotFoundError.
type Resolver func(path string) (*Type, error)

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithResolver installs a resolver for dotted type names.
func WithResolver(r Resolver) RegistryOption {
	return func(reg *Registry) { reg.resolver = r }
}

// Registry is an append-only, first-registration-wins store of the
// name<->identity mapping. It interns composite types so repeated
// conversions are stable and cheap.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]*Type
	byGo     map[reflect.Type]*Type
	resolver Resolver

	anyType  *Type
	noneType *Type
}

// Default is the process-wide registry, seeded with builtins. Package-level
// helpers operate on it; tests needing isolation use NewRegistry.
var Default = NewRegistry()

// NewRegistry creates a registry seeded with the builtin primitive and
// container names.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		byName: make(map[string]*Type),
		byGo:   make(map[reflect.Type]*Type),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.seed()
	return r
}

func (r *Registry) seed() {
	named := func(name string, rt reflect.Type) *Type {
		t := &Type{kind: KindNamed, name: name, goType: rt}
		r.byName[name] = t
		if rt != nil {
			r.byGo[rt] = t
		}
		return t
	}

	r.anyType = named("Any", nil)
	r.noneType = named("None", nil)

	intType := named("int", reflect.TypeOf(int(0)))
	floatType := named("float", reflect.TypeOf(float64(0)))
	strType := named("str", reflect.TypeOf(""))
	named("bool", reflect.TypeOf(false))
	named("bytes", reflect.TypeOf([]byte(nil)))
	named("complex", reflect.TypeOf(complex128(0)))
	named("error", reflect.TypeOf((*error)(nil)).Elem())

	// Bare container names resolve to loosely-typed identities, distinct
	// from their parameterized forms.
	named("list", reflect.TypeOf([]any(nil)))
	named("dict", reflect.TypeOf(map[string]any(nil)))
	named("set", nil)
	named("tuple", nil)

	// Unparameterized Type denotes "a type", serialized with an Any value.
	r.byName["Type"] = &Type{kind: KindTypeOf, name: "Type", args: []*Type{r.anyType}}

	// Alternate spellings accepted on parse. These are read-side aliases;
	// rendering always uses the canonical name.
	alias := func(name string, t *Type) {
		r.byName[name] = t
	}
	alias("any", r.anyType)
	alias("object", r.anyType)
	alias("nil", r.noneType)
	alias("NoneType", r.noneType)
	alias("string", strType)
	alias("float64", floatType)
	alias("float32", floatType)
	alias("int64", intType)
	alias("int32", intType)
	alias("integer", intType)

	// Additional runtime identities folding onto the seeded names.
	for _, rt := range []reflect.Type{
		reflect.TypeOf(int8(0)), reflect.TypeOf(int16(0)),
		reflect.TypeOf(int32(0)), reflect.TypeOf(int64(0)),
		reflect.TypeOf(uint(0)), reflect.TypeOf(uint8(0)),
		reflect.TypeOf(uint16(0)), reflect.TypeOf(uint32(0)),
		reflect.TypeOf(uint64(0)),
	} {
		r.byGo[rt] = intType
	}
	r.byGo[reflect.TypeOf(float32(0))] = floatType
	r.byGo[reflect.TypeOf((*any)(nil)).Elem()] = r.anyType
}

// Any returns the unresolved-type identity.
func (r *Registry) Any() *Type { return r.anyType }

// None returns the nothing-returned / null identity.
func (r *Registry) None() *Type { return r.noneType }

// lookup returns the type registered under name, or nil.
func (r *Registry) lookup(name string) *Type {
	r.mu.RLock()
	t := r.byName[name]
	r.mu.RUnlock()
	return t
}

// intern stores t under its canonical name, returning the first type ever
// registered under that name. The registry is append-only: a duplicate
// registration is a no-op returning the original.
func (r *Registry) intern(t *Type) *Type {
	if t.name == "" {
		t.name = render(t)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byName[t.name]; ok {
		return existing
	}
	r.byName[t.name] = t
	if t.goType != nil {
		if _, ok := r.byGo[t.goType]; !ok {
			r.byGo[t.goType] = t
		}
	}
	return t
}

// addAlias records an alternate spelling for t. Collisions are swallowed:
// the first binding of a name always wins.
func (r *Registry) addAlias(name string, t *Type) {
	r.mu.Lock()
	if _, ok := r.byName[name]; !ok {
		r.byName[name] = t
	}
	r.mu.Unlock()
}

// Register binds name to t. The first binding of a name wins: re-binding
// the same type is a no-op, while binding a different type under a taken
// name fails with ErrNameTaken.
func (r *Registry) Register(name string, t *Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byName[name]; ok {
		if existing == t {
			return nil
		}
		return ErrNameTaken
	}
	r.byName[name] = t
	if t.goType != nil {
		if _, ok := r.byGo[t.goType]; !ok {
			r.byGo[t.goType] = t
		}
	}
	return nil
}

// Named creates (or returns) a named type bound to the given runtime
// identity. If the name is already registered the existing type wins,
// whatever its identity.
func (r *Registry) Named(name string, rt reflect.Type) *Type {
	return r.intern(&Type{kind: KindNamed, name: name, goType: rt})
}

// ListOf returns the sequence type of elem.
func (r *Registry) ListOf(elem *Type) *Type {
	return r.intern(&Type{kind: KindList, args: []*Type{elem}})
}

// SetOf returns the unique-element sequence type of elem.
func (r *Registry) SetOf(elem *Type) *Type {
	return r.intern(&Type{kind: KindSet, args: []*Type{elem}})
}

// DictOf returns the mapping type from key to value.
func (r *Registry) DictOf(key, value *Type) *Type {
	return r.intern(&Type{kind: KindDict, args: []*Type{key, value}})
}

// TupleOf returns the fixed-size heterogeneous tuple of the given
// component types.
func (r *Registry) TupleOf(components ...*Type) *Type {
	return r.intern(&Type{kind: KindTuple, args: append([]*Type(nil), components...)})
}

// TypeOfType returns the "type as a value" wrapper around t.
func (r *Registry) TypeOfType(t *Type) *Type {
	return r.intern(&Type{kind: KindTypeOf, args: []*Type{t}})
}

// UnionOf returns the union of the given members. Nested unions are
// flattened, duplicates dropped, and a single remaining member collapses
// to that member.
func (r *Registry) UnionOf(members ...*Type) *Type {
	flat := make([]*Type, 0, len(members))
	seen := make(map[*Type]bool, len(members))
	var add func(ts []*Type)
	add = func(ts []*Type) {
		for _, m := range ts {
			if m.kind == KindUnion {
				add(m.args)
				continue
			}
			if !seen[m] {
				seen[m] = true
				flat = append(flat, m)
			}
		}
	}
	add(members)
	if len(flat) == 1 {
		return flat[0]
	}
	return r.intern(&Type{kind: KindUnion, args: flat})
}

// OptionalOf returns the nullable form of t, canonicalized to
// Union[t, None].
func (r *Registry) OptionalOf(t *Type) *Type {
	return r.UnionOf(t, r.noneType)
}

// LiteralOf returns the enumerated-literal type of the given scalar
// values (string, int, float64, bool, or nil).
func (r *Registry) LiteralOf(values ...any) *Type {
	return r.intern(&Type{kind: KindLiteral, values: append([]any(nil), values...)})
}
