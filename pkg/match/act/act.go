package act

import (
	"github.com/ib-77/match3/pkg/match/cond"
)

// Chain holds one subject and the open/closed state of a void match.
// A closed chain ignores every further case registration.
type Chain[T any] struct {
	subject T
	matched bool
}

// Match creates an open chain over subject.
func Match[T any](subject T) Chain[T] {
	return Chain[T]{subject: subject}
}

// Subject returns the matched value; it is never mutated by the chain.
func (c Chain[T]) Subject() T {
	return c.subject
}

// Matched returns true once some case has fired.
func (c Chain[T]) Matched() bool {
	return c.matched
}

// Case fires do when the subject structurally equals want.
// A nil do still closes the chain, blocking later cases.
func (c Chain[T]) Case(want T, do func()) Chain[T] {
	if c.matched {
		return c
	}
	if !cond.Eq(want)(c.subject) {
		return c
	}
	if do != nil {
		do()
	}
	return c.close()
}

// When fires do when pred holds for the subject.
func (c Chain[T]) When(pred func(T) bool, do func(T)) Chain[T] {
	if c.matched {
		return c
	}
	if !pred(c.subject) {
		return c
	}
	if do != nil {
		do(c.subject)
	}
	return c.close()
}

// WhenTrue fires do when the subject-free predicate holds.
func (c Chain[T]) WhenTrue(pred func() bool, do func()) Chain[T] {
	if c.matched {
		return c
	}
	if !pred() {
		return c
	}
	if do != nil {
		do()
	}
	return c.close()
}

// Default always fires; registered before other cases it suppresses them,
// so it belongs at the end of the chain.
func (c Chain[T]) Default(do func(T)) Chain[T] {
	return c.When(cond.Always[T](), do)
}

func (c Chain[T]) close() Chain[T] {
	return Chain[T]{subject: c.subject, matched: true}
}

// Type fires do when the subject's type is S.
func Type[S, T any](c Chain[T], do func(S)) Chain[T] {
	if c.matched {
		return c
	}
	s, ok := cond.Is[S](any(c.subject))
	if !ok {
		return c
	}
	if do != nil {
		do(s)
	}
	return c.close()
}

// Type1 fires do with one extracted field when the subject's type is S
// and it implements match.Decomposer1. A subject of type S without the
// contract is a non-match.
func Type1[S, A, T any](c Chain[T], do func(A)) Chain[T] {
	if c.matched {
		return c
	}
	if _, ok := cond.Is[S](any(c.subject)); !ok {
		return c
	}
	a, ok := cond.Fields1[A](any(c.subject))
	if !ok {
		return c
	}
	if do != nil {
		do(a)
	}
	return c.close()
}

// Type2 fires do with two extracted fields, see Type1.
func Type2[S, A, B, T any](c Chain[T], do func(A, B)) Chain[T] {
	if c.matched {
		return c
	}
	if _, ok := cond.Is[S](any(c.subject)); !ok {
		return c
	}
	a, b, ok := cond.Fields2[A, B](any(c.subject))
	if !ok {
		return c
	}
	if do != nil {
		do(a, b)
	}
	return c.close()
}

// Type3 fires do with three extracted fields, see Type1.
func Type3[S, A, B, C, T any](c Chain[T], do func(A, B, C)) Chain[T] {
	if c.matched {
		return c
	}
	if _, ok := cond.Is[S](any(c.subject)); !ok {
		return c
	}
	a, b, cc, ok := cond.Fields3[A, B, C](any(c.subject))
	if !ok {
		return c
	}
	if do != nil {
		do(a, b, cc)
	}
	return c.close()
}

// Type4 fires do with four extracted fields, see Type1.
func Type4[S, A, B, C, D, T any](c Chain[T], do func(A, B, C, D)) Chain[T] {
	if c.matched {
		return c
	}
	if _, ok := cond.Is[S](any(c.subject)); !ok {
		return c
	}
	a, b, cc, d, ok := cond.Fields4[A, B, C, D](any(c.subject))
	if !ok {
		return c
	}
	if do != nil {
		do(a, b, cc, d)
	}
	return c.close()
}
