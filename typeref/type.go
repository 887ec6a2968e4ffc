package typeref

import (
	"reflect"
	"strconv"
	"strings"
)

// Kind discriminates the shape of a Type.
type Kind int

const (
	// KindNamed is a plain named type, optionally tied to a reflect.Type.
	KindNamed Kind = iota
	// KindList is an ordered homogeneous sequence.
	KindList
	// KindDict is a mapping from a key type to a value type.
	KindDict
	// KindTuple is a fixed-size heterogeneous sequence.
	KindTuple
	// KindUnion is a choice between member types. Optionals are unions
	// containing None.
	KindUnion
	// KindSet is an unordered unique-element sequence.
	KindSet
	// KindTypeOf denotes a type treated as a value.
	KindTypeOf
	// KindLiteral enumerates allowed scalar values.
	KindLiteral
)

// Type is an interned, immutable type descriptor. Obtain instances through
// a Registry; never construct them directly. Interning makes pointer
// equality coincide with structural equality within one registry.
type Type struct {
	kind   Kind
	name   string
	goType reflect.Type
	args   []*Type
	values []any
}

// Kind returns the shape of the type.
func (t *Type) Kind() Kind { return t.kind }

// Name returns the canonical textual name, e.g. "Union[int, None]".
func (t *Type) Name() string { return t.name }

// String returns the canonical textual name.
func (t *Type) String() string { return t.name }

// GoType returns the runtime type identity for named types that have one,
// or nil.
func (t *Type) GoType() reflect.Type { return t.goType }

// Args returns the element types of a composite, in order.
func (t *Type) Args() []*Type {
	return append([]*Type(nil), t.args...)
}

// Values returns the scalar values of a Literal type, in declaration
// order. A nil entry is the null literal.
func (t *Type) Values() []any {
	return append([]any(nil), t.values...)
}

// render produces the canonical textual form of a type whose name has not
// been assigned yet.
func render(t *Type) string {
	switch t.kind {
	case KindNamed:
		return t.name
	case KindList:
		return "List[" + t.args[0].name + "]"
	case KindDict:
		return "Dict[" + t.args[0].name + ", " + t.args[1].name + "]"
	case KindTuple:
		return "Tuple[" + joinNames(t.args) + "]"
	case KindUnion:
		return "Union[" + joinNames(t.args) + "]"
	case KindSet:
		return "Set[" + t.args[0].name + "]"
	case KindTypeOf:
		return "Type[" + t.args[0].name + "]"
	case KindLiteral:
		parts := make([]string, len(t.values))
		for i, v := range t.values {
			parts[i] = renderLiteral(v)
		}
		return "Literal[" + strings.Join(parts, ", ") + "]"
	}
	return t.name
}

func joinNames(args []*Type) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.name
	}
	return strings.Join(parts, ", ")
}

// renderLiteral writes a scalar in the canonical literal spelling: strings
// single-quoted, booleans and null in their capitalized wire forms.
func renderLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return "'" + strings.ReplaceAll(val, "'", `\'`) + "'"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return ""
	}
}

// literalKey is the string form used in serialized enum "keys" arrays.
func literalKey(v any) string {
	switch val := v.(type) {
	case string:
		return val
	default:
		return renderLiteral(v)
	}
}
