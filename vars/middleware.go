package vars

import (
	"errors"
	"fmt"

	"github.com/jonwraymond/toolexpose/model"
)

// ErrBadBounds is returned by a Clamp middleware whose maximum is below
// its minimum.
var ErrBadBounds = errors.New("max must be greater than or equal to min")

// Clamp returns a middleware bounding numeric assignments to the
// inclusive [min, max] range. Either bound may be nil to leave that
// side open.
func Clamp(min, max any) model.Middleware {
	return func(value any) (any, error) {
		lo, hasLo, err := bound(min)
		if err != nil {
			return nil, err
		}
		hi, hasHi, err := bound(max)
		if err != nil {
			return nil, err
		}
		if hasLo && hasHi && hi < lo {
			return nil, ErrBadBounds
		}

		f, isInt, err := numeric(value)
		if err != nil {
			return nil, err
		}
		switch {
		case hasLo && f < lo:
			f = lo
		case hasHi && f > hi:
			f = hi
		default:
			return value, nil
		}
		if isInt {
			return int(f), nil
		}
		return f, nil
	}
}

func bound(v any) (float64, bool, error) {
	if v == nil {
		return 0, false, nil
	}
	f, _, err := numeric(v)
	return f, err == nil, err
}

func numeric(v any) (f float64, isInt bool, err error) {
	switch v := v.(type) {
	case int:
		return float64(v), true, nil
	case int32:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case float32:
		return float64(v), false, nil
	case float64:
		return v, false, nil
	default:
		return 0, false, fmt.Errorf("%w: %T is not numeric", ErrConvert, v)
	}
}
