package match

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNoMatch is returned when a value chain's result is read
// although no case ever matched the subject.
var ErrNoMatch = errors.New("no match found")

func NoMatchErr(subject any) error {
	return fmt.Errorf("%w: %s", ErrNoMatch, Describe(subject))
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Equal reports structural equality between two values of the same type.
// Comparable values use ==, everything else falls back to deep equality.
// Comparability is checked per value, not per type: a comparable type can
// still hold an incomparable value (an any field carrying a slice), and ==
// would panic on it.
func Equal[T any](x, y T) bool {
	xi, yi := any(x), any(y)

	if xi == nil || yi == nil {
		return xi == nil && yi == nil
	}

	if reflect.ValueOf(xi).Comparable() && reflect.ValueOf(yi).Comparable() {
		return xi == yi
	}

	return reflect.DeepEqual(xi, yi)
}

// Describe renders a subject for no-match diagnostics.
func Describe(subject any) string {
	if IsNil(subject) {
		return "<nil>"
	}
	return fmt.Sprintf("%v (%T)", subject, subject)
}
