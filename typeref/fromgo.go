package typeref

import (
	"reflect"
	"strings"
)

// FromGo maps a runtime type onto its descriptor, registering a new entry
// when the type has not been seen before. Named types from other packages
// register under their dotted "pkg.Name" form; container kinds recurse on
// their element types. Types with no canonical rendering (funcs, channels)
// fail with a TypeNotFoundError.
func (r *Registry) FromGo(rt reflect.Type) (*Type, error) {
	if rt == nil {
		return nil, ErrNotAType
	}
	r.mu.RLock()
	known := r.byGo[rt]
	r.mu.RUnlock()
	if known != nil {
		return known, nil
	}

	if rt.Name() != "" && rt.PkgPath() != "" {
		return r.intern(&Type{kind: KindNamed, name: dottedName(rt), goType: rt}), nil
	}

	switch rt.Kind() {
	case reflect.Slice, reflect.Array:
		elem, err := r.FromGo(rt.Elem())
		if err != nil {
			return nil, err
		}
		return r.ListOf(elem), nil
	case reflect.Map:
		key, err := r.FromGo(rt.Key())
		if err != nil {
			return nil, err
		}
		value, err := r.FromGo(rt.Elem())
		if err != nil {
			return nil, err
		}
		return r.DictOf(key, value), nil
	case reflect.Pointer:
		elem, err := r.FromGo(rt.Elem())
		if err != nil {
			return nil, err
		}
		return r.OptionalOf(elem), nil
	case reflect.Interface:
		if rt.NumMethod() == 0 {
			return r.anyType, nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return r.lookup("int"), nil
	case reflect.Float32, reflect.Float64:
		return r.lookup("float"), nil
	case reflect.String:
		return r.lookup("str"), nil
	case reflect.Bool:
		return r.lookup("bool"), nil
	case reflect.Complex64, reflect.Complex128:
		return r.lookup("complex"), nil
	}
	return nil, &TypeNotFoundError{Name: rt.String()}
}

// ToText renders a type identity as its canonical textual name. Accepted
// identities are *Type, reflect.Type, and (for symmetry with stored
// records) an already-textual name, which passes through unchanged. Any
// other input fails with ErrNotAType before resolution is attempted.
func (r *Registry) ToText(v any) (string, error) {
	switch t := v.(type) {
	case *Type:
		if t == nil {
			return "", ErrNotAType
		}
		return t.name, nil
	case reflect.Type:
		resolved, err := r.FromGo(t)
		if err != nil {
			return "", err
		}
		return resolved.name, nil
	case string:
		return t, nil
	default:
		return "", ErrNotAType
	}
}

func dottedName(rt reflect.Type) string {
	pkg := rt.PkgPath()
	if i := strings.LastIndexByte(pkg, '/'); i >= 0 {
		pkg = pkg[i+1:]
	}
	return pkg + "." + rt.Name()
}
