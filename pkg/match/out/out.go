package out

import (
	"github.com/ib-77/match3/pkg/match"
	"github.com/ib-77/match3/pkg/match/cond"
)

// Chain holds one subject together with the result of a value match.
// While the chain is open the held result is unmatched; the first satisfied
// case replaces it and freezes the chain.
type Chain[T, R any] struct {
	subject T
	res     match.Result[R]
}

// Match creates an open chain over subject. The result type R must be
// supplied at the call site; the subject type is inferred.
func Match[T, R any](subject T) Chain[T, R] {
	return Chain[T, R]{
		subject: subject,
		res:     match.Unmatched[R](match.NoMatchErr(subject)),
	}
}

// Subject returns the matched value; it is never mutated by the chain.
func (c Chain[T, R]) Subject() T {
	return c.subject
}

// Matched returns true once some case has fired.
func (c Chain[T, R]) Matched() bool {
	return c.res.IsMatched()
}

// Result returns the underlying match.Result.
func (c Chain[T, R]) Result() match.Result[R] {
	return c.res
}

// Value returns the held result, or match.ErrNoMatch describing the subject
// when no case ever matched. A closed chain returns the same value on every
// call.
func (c Chain[T, R]) Value() (R, error) {
	if c.res.IsMatched() {
		return c.res.Value(), nil
	}
	var zero R
	return zero, c.res.Err()
}

// ValueOr returns the held result, or def when no case matched.
func (c Chain[T, R]) ValueOr(def R) R {
	if c.res.IsMatched() {
		return c.res.Value()
	}
	return def
}

// MustValue returns the held result and panics when no case matched.
func (c Chain[T, R]) MustValue() R {
	v, err := c.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Case closes the chain with result when the subject structurally equals want.
func (c Chain[T, R]) Case(want T, result R) Chain[T, R] {
	if c.res.IsMatched() {
		return c
	}
	if !cond.Eq(want)(c.subject) {
		return c
	}
	return c.close(result)
}

// CaseFn closes the chain with produce(subject) when the subject structurally
// equals want.
func (c Chain[T, R]) CaseFn(want T, produce func(T) R) Chain[T, R] {
	if c.res.IsMatched() {
		return c
	}
	if !cond.Eq(want)(c.subject) {
		return c
	}
	return c.close(produce(c.subject))
}

// When closes the chain with produce(subject) when pred holds for the subject.
func (c Chain[T, R]) When(pred func(T) bool, produce func(T) R) Chain[T, R] {
	if c.res.IsMatched() {
		return c
	}
	if !pred(c.subject) {
		return c
	}
	return c.close(produce(c.subject))
}

// WhenTrue closes the chain with produce() when the subject-free predicate holds.
func (c Chain[T, R]) WhenTrue(pred func() bool, produce func() R) Chain[T, R] {
	if c.res.IsMatched() {
		return c
	}
	if !pred() {
		return c
	}
	return c.close(produce())
}

// Default always matches; registered before other cases it suppresses them,
// so it belongs at the end of the chain.
func (c Chain[T, R]) Default(result R) Chain[T, R] {
	return c.When(cond.Always[T](), func(T) R { return result })
}

// DefaultFn is Default with a computed result.
func (c Chain[T, R]) DefaultFn(produce func(T) R) Chain[T, R] {
	return c.When(cond.Always[T](), produce)
}

// Ensure triggers side effects for the current outcome without changing it.
// Nil callbacks are safe.
func (c Chain[T, R]) Ensure(onMatched func(R), onUnmatched func(error)) Chain[T, R] {
	if c.res.IsMatched() {
		if onMatched != nil {
			onMatched(c.res.Value())
		}
		return c
	}
	if onUnmatched != nil {
		onUnmatched(c.res.Err())
	}
	return c
}

func (c Chain[T, R]) close(result R) Chain[T, R] {
	return Chain[T, R]{subject: c.subject, res: match.Matched(result)}
}

// Map rebinds the chain's outcome to a new result type. A held result is
// transformed by produce; an unmatched outcome is carried over untouched,
// keeping its id, creation time, and no-match error.
func Map[T, R, R2 any](c Chain[T, R], produce func(R) R2) Chain[T, R2] {
	if c.res.IsMatched() {
		return Chain[T, R2]{subject: c.subject, res: match.Matched(produce(c.res.Value()))}
	}
	return Chain[T, R2]{subject: c.subject, res: match.UnmatchedFrom[R, R2](c.res)}
}

// Type closes the chain with produce(s) when the subject's type is S.
func Type[S, T, R any](c Chain[T, R], produce func(S) R) Chain[T, R] {
	if c.res.IsMatched() {
		return c
	}
	s, ok := cond.Is[S](any(c.subject))
	if !ok {
		return c
	}
	return c.close(produce(s))
}

// Type1 closes the chain with produce over one extracted field when the
// subject's type is S and it implements match.Decomposer1. A subject of
// type S without the contract is a non-match.
func Type1[S, A, T, R any](c Chain[T, R], produce func(A) R) Chain[T, R] {
	if c.res.IsMatched() {
		return c
	}
	if _, ok := cond.Is[S](any(c.subject)); !ok {
		return c
	}
	a, ok := cond.Fields1[A](any(c.subject))
	if !ok {
		return c
	}
	return c.close(produce(a))
}

// Type2 closes the chain with produce over two extracted fields, see Type1.
func Type2[S, A, B, T, R any](c Chain[T, R], produce func(A, B) R) Chain[T, R] {
	if c.res.IsMatched() {
		return c
	}
	if _, ok := cond.Is[S](any(c.subject)); !ok {
		return c
	}
	a, b, ok := cond.Fields2[A, B](any(c.subject))
	if !ok {
		return c
	}
	return c.close(produce(a, b))
}

// Type3 closes the chain with produce over three extracted fields, see Type1.
func Type3[S, A, B, C, T, R any](c Chain[T, R], produce func(A, B, C) R) Chain[T, R] {
	if c.res.IsMatched() {
		return c
	}
	if _, ok := cond.Is[S](any(c.subject)); !ok {
		return c
	}
	a, b, cc, ok := cond.Fields3[A, B, C](any(c.subject))
	if !ok {
		return c
	}
	return c.close(produce(a, b, cc))
}

// Type4 closes the chain with produce over four extracted fields, see Type1.
func Type4[S, A, B, C, D, T, R any](c Chain[T, R], produce func(A, B, C, D) R) Chain[T, R] {
	if c.res.IsMatched() {
		return c
	}
	if _, ok := cond.Is[S](any(c.subject)); !ok {
		return c
	}
	a, b, cc, d, ok := cond.Fields4[A, B, C, D](any(c.subject))
	if !ok {
		return c
	}
	return c.close(produce(a, b, cc, d))
}
