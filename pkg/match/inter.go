package match

import "time"

type ValueProvider[R any] interface {
	// Value returns the result value held after a successful match
	Value() R
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithMatch defines an interface for types that can report a match outcome or an error
type WithMatch[R any] interface {
	ValueProvider[R]
	// Err returns the error if no case matched
	Err() error
	// IsMatched returns true if some case matched
	IsMatched() bool
}

// Decomposer1 is implemented by subject types exposing one positional field.
// A type-and-fields case only fires when the subject satisfies the case type
// and implements the contract of the requested arity.
type Decomposer1[A any] interface {
	Decompose() A
}

// Decomposer2 is implemented by subject types exposing two positional fields.
type Decomposer2[A, B any] interface {
	Decompose() (A, B)
}

// Decomposer3 is implemented by subject types exposing three positional fields.
type Decomposer3[A, B, C any] interface {
	Decompose() (A, B, C)
}

// Decomposer4 is implemented by subject types exposing four positional fields.
type Decomposer4[A, B, C, D any] interface {
	Decompose() (A, B, C, D)
}
