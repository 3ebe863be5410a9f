// Package result implements a two-variant outcome type with the two
// combination strategies the combinators in the parent package rely on:
// fail-fast chaining (FlatMap) and error-merging application (Apply).
package result

// Combinable is the semigroup constraint on error payloads. Combine must be
// associative and keep the receiver's entries before the argument's.
type Combinable[E any] interface {
	Combine(other E) E
}

// Result is a tagged union of a success payload A or an error payload E.
// The zero value is a success holding A's zero value.
type Result[E Combinable[E], A any] struct {
	err    E
	value  A
	failed bool
}

// OK wraps a value as a success.
func OK[E Combinable[E], A any](value A) Result[E, A] {
	return Result[E, A]{value: value}
}

// Err wraps an error payload as a failure.
func Err[E Combinable[E], A any](err E) Result[E, A] {
	return Result[E, A]{err: err, failed: true}
}

// IsOK reports whether r holds a success payload.
func (r Result[E, A]) IsOK() bool { return !r.failed }

// Value returns the success payload and whether r is a success.
func (r Result[E, A]) Value() (A, bool) { return r.value, !r.failed }

// Err returns the error payload and whether r is a failure.
func (r Result[E, A]) Err() (E, bool) { return r.err, r.failed }

// Map transforms the success payload; a failure passes through unchanged.
func Map[E Combinable[E], A, B any](r Result[E, A], f func(A) B) Result[E, B] {
	if r.failed {
		return Err[E, B](r.err)
	}
	return OK[E, B](f(r.value))
}

// FlatMap chains a dependent step. A failure short-circuits and propagates
// alone; two errors are never combined here.
func FlatMap[E Combinable[E], A, B any](r Result[E, A], f func(A) Result[E, B]) Result[E, B] {
	if r.failed {
		return Err[E, B](r.err)
	}
	return f(r.value)
}

// Apply combines an independently evaluated function and argument. Both sides
// are already evaluated by the time Apply runs, so a failure on one side never
// suppresses the other; when both fail the payloads merge left-first.
func Apply[E Combinable[E], A, B any](rf Result[E, func(A) B], ra Result[E, A]) Result[E, B] {
	switch {
	case !rf.failed && !ra.failed:
		return OK[E, B](rf.value(ra.value))
	case rf.failed && ra.failed:
		return Err[E, B](rf.err.Combine(ra.err))
	case rf.failed:
		return Err[E, B](rf.err)
	default:
		return Err[E, B](ra.err)
	}
}
