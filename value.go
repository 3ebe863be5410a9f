package jsonparser

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Value validates and converts one raw decoded value, independent of any
// containing object. The description documents the full transformation chain
// in declared order; it never drives parsing behavior. Values are immutable
// and safe to share.
type Value[A any] struct {
	description string
	parse       func(any) (A, bool)
}

// NewValue builds a Value from a description and a conversion function.
// The function reports ok=false on type mismatch.
func NewValue[A any](description string, parse func(any) (A, bool)) Value[A] {
	return Value[A]{description: description, parse: parse}
}

// Description returns the accumulated description text.
func (v Value[A]) Description() string { return v.description }

// Parse attempts the conversion; ok is false on type mismatch or a failed
// refinement.
func (v Value[A]) Parse(raw any) (A, bool) { return v.parse(raw) }

// Check returns a new Value that additionally requires pred to hold. A
// predicate failure is indistinguishable from a type mismatch; only the
// composed description text mentions the rule.
func (v Value[A]) Check(description string, pred func(A) bool) Value[A] {
	inner := v.parse
	return Value[A]{
		description: v.description + ", " + description,
		parse: func(raw any) (A, bool) {
			a, ok := inner(raw)
			if !ok || !pred(a) {
				var zero A
				return zero, false
			}
			return a, true
		},
	}
}

// Map applies a total transform to a successful conversion.
func Map[A, B any](v Value[A], description string, f func(A) B) Value[B] {
	inner := v.parse
	return Value[B]{
		description: v.description + " -> " + description,
		parse: func(raw any) (B, bool) {
			a, ok := inner(raw)
			if !ok {
				var zero B
				return zero, false
			}
			return f(a), true
		},
	}
}

// FlatMap is behaviorally identical to Map: f is total and there is no
// short-circuit beyond the inner conversion. Kept as a separate name so
// transformation chains read the way they were declared.
func FlatMap[A, B any](v Value[A], description string, f func(A) B) Value[B] {
	return Map(v, description, f)
}

// ---- primitive values ----

// String accepts a JSON string.
func String() Value[string] {
	return NewValue("String", func(raw any) (string, bool) {
		s, ok := raw.(string)
		return s, ok
	})
}

// Bool accepts a JSON boolean.
func Bool() Value[bool] {
	return NewValue("Bool", func(raw any) (bool, bool) {
		b, ok := raw.(bool)
		return b, ok
	})
}

// Number accepts a JSON number, preserved as json.Number. Decoders running
// without UseNumber produce float64, which is converted back to its shortest
// representation.
func Number() Value[json.Number] {
	return NewValue("Number", func(raw any) (json.Number, bool) {
		switch n := raw.(type) {
		case json.Number:
			return n, true
		case float64:
			return json.Number(strconv.FormatFloat(n, 'g', -1, 64)), true
		default:
			return json.Number(""), false
		}
	})
}

// Int accepts a JSON number with an integral value. Fractional numbers are a
// mismatch, not a truncation.
func Int() Value[int] {
	return NewValue("Int", func(raw any) (int, bool) {
		switch n := raw.(type) {
		case json.Number:
			i64, err := n.Int64()
			if err != nil {
				return 0, false
			}
			return int(i64), true
		case float64:
			if math.Trunc(n) != n {
				return 0, false
			}
			return int(n), true
		case int:
			return n, true
		case int64:
			return int(n), true
		default:
			return 0, false
		}
	})
}

// Float accepts a JSON number as float64.
func Float() Value[float64] {
	return NewValue("Float", func(raw any) (float64, bool) {
		switch n := raw.(type) {
		case json.Number:
			f, err := strconv.ParseFloat(n.String(), 64)
			return f, err == nil
		case float64:
			return n, true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		default:
			return 0, false
		}
	})
}

// Object accepts a nested JSON object.
func Object() Value[map[string]any] {
	return NewValue("Object", func(raw any) (map[string]any, bool) {
		m, ok := raw.(map[string]any)
		return m, ok
	})
}

// Array accepts a JSON array.
func Array() Value[[]any] {
	return NewValue("Array", func(raw any) ([]any, bool) {
		a, ok := raw.([]any)
		return a, ok
	})
}

// Date accepts a string in the given time layout. The layout is expected to
// be a shared immutable value constructed once per process.
func Date(layout string) Value[time.Time] {
	return NewValue("Date("+layout+")", func(raw any) (time.Time, bool) {
		s, ok := raw.(string)
		if !ok {
			return time.Time{}, false
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	})
}
