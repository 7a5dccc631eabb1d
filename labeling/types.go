// Package labeling defines the Labeler capability, its sentinel errors,
// and the per-family strategy types.
//
// This file declares the interface and errors; strategy implementations
// live in greedy.go, closedform.go, and linear.go.
package labeling

import (
	"errors"

	"github.com/katalvlaran/starlabel/core"
)

// Sentinel errors for labeling operations.
var (
	// ErrNilGraph indicates a nil topology was passed to a strategy.
	ErrNilGraph = errors.New("labeling: nil graph")

	// ErrTooFewBranches indicates n is below the strategy's minimum
	// (Greedy divides by n-1 and needs n ≥ 2; Linear follows the
	// snowflake ring minimum n ≥ 3; ClosedForm needs n ≥ 1).
	ErrTooFewBranches = errors.New("labeling: too few branches")

	// ErrTooFewLeaves indicates m < 1 for the greedy family.
	ErrTooFewLeaves = errors.New("labeling: too few leaves per branch")

	// ErrOrderMismatch indicates the graph's order does not match the
	// strategy parameters (the topology was built for different n, m).
	ErrOrderMismatch = errors.New("labeling: graph order does not match parameters")

	// ErrPoolExhausted indicates the available-weight pool emptied before
	// every leaf was labeled: the labeling is infeasible for (n, m).
	ErrPoolExhausted = errors.New("labeling: available-weight pool exhausted")

	// ErrUnsafeStrategy indicates the legacy clamped-linear strategy was
	// invoked without its explicit Unsafe opt-in.
	ErrUnsafeStrategy = errors.New("labeling: legacy linear strategy requires Unsafe")

	// ErrBadBound indicates a label bound k below 1.
	ErrBadBound = errors.New("labeling: label bound must be at least 1")
)

// centerLabel is the label every strategy assigns to the center vertex.
const centerLabel = 1

// Labeler produces a complete vertex labeling for a built topology.
//
// Contract: on success every vertex in 0..g.Order()-1 carries a positive
// label and the center is labeled 1. The graph is never mutated.
type Labeler interface {
	// Label runs the strategy's single labeling pass.
	Label(g *core.Graph) (core.VertexLabels, error)

	// K returns the strategy's declared upper bound on label values.
	K() int
}
