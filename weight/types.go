// Package weight defines the Result type and sentinel errors for weight
// derivation and verification.
package weight

import "errors"

// ErrNilGraph indicates Derive received no topology.
var ErrNilGraph = errors.New("weight: nil graph")

// Result is the structured outcome of verifying an edge-weight mapping.
// It is a plain value: producing it never fails, and a false Irregular
// flag is a finding, not an error.
type Result struct {
	// Edges is the number of undirected edges represented in the mapping.
	Edges int

	// Distinct is the number of distinct weight values, counting each
	// undirected edge once (the directional duplicate is intentional
	// storage, not a collision).
	Distinct int

	// MaxWeight is the largest weight observed, 0 for an empty mapping.
	MaxWeight int

	// Irregular reports the edge-irregularity property: every undirected
	// edge carries a unique weight (Distinct == Edges).
	Irregular bool

	// Duplicates lists the weight values used by more than one undirected
	// edge, ascending. Empty when Irregular.
	Duplicates []int
}
