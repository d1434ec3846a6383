package cond

import (
	"github.com/ib-77/match3/pkg/match"
)

func Always[T any]() func(T) bool {
	return func(T) bool {
		return true
	}
}

func Eq[T any](want T) func(T) bool {
	return func(got T) bool {
		return match.Equal(got, want)
	}
}

func Not[T any](p func(T) bool) func(T) bool {
	return func(t T) bool {
		return !p(t)
	}
}

func AllOf[T any](ps ...func(T) bool) func(T) bool {
	return func(t T) bool {
		for _, p := range ps {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

func AnyOf[T any](ps ...func(T) bool) func(T) bool {
	return func(t T) bool {
		for _, p := range ps {
			if p(t) {
				return true
			}
		}
		return false
	}
}

// Is tests type identity between the subject and S.
func Is[S any](subject any) (S, bool) {
	s, ok := subject.(S)
	return s, ok
}

// Fields1 extracts one positional field when the subject implements the
// arity-1 contract. A missing contract is a non-match, never an error.
func Fields1[A any](subject any) (A, bool) {
	if d, ok := subject.(match.Decomposer1[A]); ok {
		return d.Decompose(), true
	}
	var a A
	return a, false
}

func Fields2[A, B any](subject any) (A, B, bool) {
	if d, ok := subject.(match.Decomposer2[A, B]); ok {
		a, b := d.Decompose()
		return a, b, true
	}
	var a A
	var b B
	return a, b, false
}

func Fields3[A, B, C any](subject any) (A, B, C, bool) {
	if d, ok := subject.(match.Decomposer3[A, B, C]); ok {
		a, b, c := d.Decompose()
		return a, b, c, true
	}
	var a A
	var b B
	var c C
	return a, b, c, false
}

func Fields4[A, B, C, D any](subject any) (A, B, C, D, bool) {
	if d, ok := subject.(match.Decomposer4[A, B, C, D]); ok {
		a, b, c, e := d.Decompose()
		return a, b, c, e, true
	}
	var a A
	var b B
	var c C
	var e D
	return a, b, c, e, false
}
