package jsonparser

import (
	"github.com/ChrisAU/JSONParser/result"
)

// Parser aggregates Fields into a whole-object extraction. It carries the
// derived spec map (field key -> description), computed entirely at
// construction time, so a schema can be documented without ever parsing
// input. Parsers are immutable and safe to share.
type Parser[A any] struct {
	spec map[string]string
	run  func(map[string]any) result.Result[Issues, A]
}

// Pure is the zero-field base parser: it always succeeds with value and has
// an empty spec map. value is typically a curried constructor awaiting its
// arguments from successive Apply calls.
func Pure[A any](value A) Parser[A] {
	return Parser[A]{
		spec: map[string]string{},
		run: func(map[string]any) result.Result[Issues, A] {
			return result.OK[Issues](value)
		},
	}
}

// Apply extends a parser with one more field. The field's key and description
// are inserted into the spec map (last declaration wins on a duplicate key),
// and at parse time both sides run independently against the same input and
// combine through the Result applicative, so every declared field reports its
// failure and the messages concatenate in declaration order.
func Apply[A, B any](p Parser[func(A) B], f Field[A]) Parser[B] {
	spec := make(map[string]string, len(p.spec)+1)
	for k, d := range p.spec {
		spec[k] = d
	}
	spec[f.key] = f.description
	return Parser[B]{
		spec: spec,
		run: func(obj map[string]any) result.Result[Issues, B] {
			return result.Apply(p.run(obj), f.run(obj))
		},
	}
}

// Parse runs the whole-object extraction. It either fully succeeds with one
// typed record or fully fails with a non-empty ordered issue list; there is
// no partial result.
func (p Parser[A]) Parse(obj map[string]any) result.Result[Issues, A] { return p.run(obj) }

// Spec returns a copy of the derived spec map.
func (p Parser[A]) Spec() map[string]string {
	out := make(map[string]string, len(p.spec))
	for k, d := range p.spec {
		out[k] = d
	}
	return out
}

// Many lifts a Parser over a decoded array: each element must be an object
// and is parsed independently, with failures accumulating in element order.
func Many[A any](p Parser[A]) func([]any) result.Result[Issues, []A] {
	return func(items []any) result.Result[Issues, []A] {
		out := make([]A, 0, len(items))
		var iss Issues
		for _, raw := range items {
			obj, ok := raw.(map[string]any)
			if !ok {
				iss = AppendIssues(iss, invalidField("element", "Object"))
				continue
			}
			r := p.Parse(obj)
			if e, failed := r.Err(); failed {
				iss = iss.Combine(e)
				continue
			}
			v, _ := r.Value()
			out = append(out, v)
		}
		if len(iss) > 0 {
			return result.Err[Issues, []A](iss)
		}
		return result.OK[Issues](out)
	}
}
