// Package cond contains single-value, synchronous condition primitives that
// the fluent families (act/out) delegate case evaluation to. These functions
// form the core building blocks for pattern tests without any chain state.
//
// Highlights:
// - Always: the catch-all condition backing default cases
// - Eq: structural equality against a literal
// - Not/AllOf/AnyOf: predicate combinators
// - Is: type identity test over an arbitrary subject
// - Fields1..Fields4: capability check plus positional field extraction
package cond
