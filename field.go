package jsonparser

import (
	"github.com/ChrisAU/JSONParser/result"
)

// Field binds a Value to a specific object key, turning raw-value validation
// into field-level extraction with key-aware diagnostics: an absent key
// reports missing_field, a present-but-unconvertible value reports
// invalid_field. Fields are immutable and safe to share.
type Field[A any] struct {
	key         string
	description string
	run         func(map[string]any) result.Result[Issues, A]
}

// ForKey builds a Field from a human description, the object key, and the
// Value that converts the raw entry. The field's full description is
// "{description} - {value description}" and appears in both diagnostics and
// the parser's spec map.
func ForKey[A any](description, key string, v Value[A]) Field[A] {
	full := description + " - " + v.Description()
	return Field[A]{
		key:         key,
		description: full,
		run: func(obj map[string]any) result.Result[Issues, A] {
			raw, ok := obj[key]
			if !ok {
				return result.Err[Issues, A](Issues{missingField(key, full)})
			}
			a, ok := v.Parse(raw)
			if !ok {
				return result.Err[Issues, A](Issues{invalidField(key, full)})
			}
			return result.OK[Issues](a)
		},
	}
}

// Key returns the bound object key.
func (f Field[A]) Key() string { return f.key }

// Description returns the full field description.
func (f Field[A]) Description() string { return f.description }

// Parse extracts the field from a whole input object.
func (f Field[A]) Parse(obj map[string]any) result.Result[Issues, A] { return f.run(obj) }

// Optional tolerates absence of the key: absent succeeds with nil and
// contributes no issue. A present value still goes through the full field
// parse, so optionality never masks invalidity.
func Optional[A any](f Field[A]) Field[*A] {
	return Field[*A]{
		key:         f.key,
		description: f.description,
		run: func(obj map[string]any) result.Result[Issues, *A] {
			if _, ok := obj[f.key]; !ok {
				return result.OK[Issues, *A](nil)
			}
			return result.Map(f.run(obj), func(a A) *A { return &a })
		},
	}
}

// MapField lifts a total transform over the field's parsed value, preserving
// key and description.
func MapField[A, B any](f Field[A], fn func(A) B) Field[B] {
	return Field[B]{
		key:         f.key,
		description: f.description,
		run: func(obj map[string]any) result.Result[Issues, B] {
			return result.Map(f.run(obj), fn)
		},
	}
}

// FlatMapField lifts a dependent Result-level step over the field's parsed
// value, preserving key and description. Failures from the step surface their
// own messages verbatim; they are not re-prefixed with this field's key.
func FlatMapField[A, B any](f Field[A], fn func(A) result.Result[Issues, B]) Field[B] {
	return Field[B]{
		key:         f.key,
		description: f.description,
		run: func(obj map[string]any) result.Result[Issues, B] {
			return result.FlatMap(f.run(obj), fn)
		},
	}
}

// ObjectOf binds a nested Parser to a key: the raw entry must be an object,
// which is then parsed in full by p. Nested failures keep their own field
// messages.
func ObjectOf[A any](description, key string, p Parser[A]) Field[A] {
	return FlatMapField(ForKey(description, key, Object()), p.Parse)
}

// ArrayOf binds a Parser to a key holding an array of nested objects. Every
// element is parsed independently and element failures accumulate in element
// order.
func ArrayOf[A any](description, key string, p Parser[A]) Field[[]A] {
	return FlatMapField(ForKey(description, key, Array()), Many(p))
}
