package vars

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/jonwraymond/toolexpose/model"
	"github.com/jonwraymond/toolexpose/typeref"
)

// Error values for consistent error handling by callers.
var (
	ErrConvert       = errors.New("cannot convert value")
	ErrRedefined     = errors.New("value already defined")
	ErrUndefined     = errors.New("value not defined")
	ErrDeleteRefused = errors.New("exposed values cannot be deleted")
)

// Value is a field definition: the name, the default, and the declared
// type checked on every assignment. A nil Type disables checking.
type Value struct {
	Name    string
	Default any
	Type    *typeref.Type

	middleware []model.Middleware
}

// ValueOption configures NewValue.
type ValueOption func(*Value)

// WithType declares the value's type instead of inferring it from the
// default.
func WithType(t *typeref.Type) ValueOption {
	return func(v *Value) { v.Type = t }
}

// WithNoTypeCheck disables assignment type checking.
func WithNoTypeCheck() ValueOption {
	return func(v *Value) { v.Type = nil }
}

// WithMiddleware appends transforms run on every assignment, in order.
func WithMiddleware(mw ...model.Middleware) ValueOption {
	return func(v *Value) { v.middleware = append(v.middleware, mw...) }
}

// NewValue defines a field. The declared type is inferred from the
// default unless an option overrides it; the default itself must
// convert to the declared type.
func NewValue(name string, def any, opts ...ValueOption) (*Value, error) {
	v := &Value{Name: name, Default: def}

	if def != nil {
		if t, err := typeref.Default.FromGo(reflect.TypeOf(def)); err == nil {
			v.Type = t
		}
	}
	for _, opt := range opts {
		opt(v)
	}

	converted, err := convert(v.Default, v.Type)
	if err != nil {
		return nil, fmt.Errorf("default for %q: %w", name, err)
	}
	v.Default = converted
	return v, nil
}

func (v *Value) String() string {
	return fmt.Sprintf("Value(%s)", v.Name)
}

// convert coerces value to the declared type, or passes it through when
// no type is declared.
func convert(value any, t *typeref.Type) (any, error) {
	if t == nil {
		return value, nil
	}
	switch t.Name() {
	case "int":
		switch v := value.(type) {
		case int:
			return v, nil
		case int32:
			return int(v), nil
		case int64:
			return int(v), nil
		case float32:
			return int(v), nil
		case float64:
			return int(v), nil
		case string:
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %q to int", ErrConvert, v)
			}
			return n, nil
		}
	case "float":
		switch v := value.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		case int32:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q to float", ErrConvert, v)
			}
			return f, nil
		}
	case "str":
		if s, ok := value.(string); ok {
			return s, nil
		}
		return fmt.Sprintf("%v", value), nil
	case "bool":
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %q to bool", ErrConvert, v)
			}
			return b, nil
		}
	default:
		if rt := t.GoType(); rt != nil && value != nil && reflect.TypeOf(value) != rt {
			return nil, fmt.Errorf("%w: %T to %s", ErrConvert, value, t.Name())
		}
		return value, nil
	}
	return nil, fmt.Errorf("%w: %T to %s", ErrConvert, value, t.Name())
}
