// Package out provides a fluent Chain[T, R] for pattern matches that produce
// a typed result. It mirrors the case surface of package act, but the first
// satisfied case closes the chain holding a match.Result[R]; every later case
// registration propagates that held result untouched.
//
// Key operations:
// - Match: begin a chain over a subject, parameterized by the result type
// - Case/CaseFn: structural equality producing a literal or computed result
// - When/WhenTrue: predicate cases
// - Default/DefaultFn: catch-all case, idiomatically registered last
// - Type/Type1..Type4: type identity cases with optional field extraction
// - Map: rebind the outcome to a new result type, carrying an unmatched
//   outcome across the type boundary untouched
// - Value/ValueOr/MustValue/Result: read the outcome; reading a chain that
//   never matched yields match.ErrNoMatch with a description of the subject
// - Ensure: side-effect observer over the current outcome
package out
