// Package act provides a fluent Chain[T] for side-effecting pattern matches
// over a single subject. Cases are tried in registration order; the first
// satisfied case runs its action and closes the chain, and every later case
// registration becomes a no-op.
//
// Key operations:
// - Match: begin a chain over a subject
// - Case: structural equality against a literal
// - When/WhenTrue: predicate cases over the subject or none
// - Default: catch-all case, idiomatically registered last
// - Type/Type1..Type4: type identity cases, optionally extracting positional
//   fields from subjects implementing the match.Decomposer contracts
//
// An act chain never reports an error when nothing matched; use Matched to
// observe the outcome, or the out package when a result value is needed.
package act
