// Package mass applies one chain recipe across many subjects. Each subject
// is evaluated independently and synchronously, in slice order; there are no
// channels or goroutines because every chain is a pure local computation.
//
// Key constructs:
// - Map: collect a match.Result per subject
// - Values: collect result values, substituting a default on no-match
// - Each: count subjects matched by an act chain
// - Partition: split subjects by match outcome
package mass
