// Package core defines the Graph, VertexLabels, and EdgeWeights types
// shared by the builder, labeling, and weight packages.
//
// This file declares the types and sentinel errors; graph methods live
// in graph.go.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrBadOrder indicates a requested graph order below 1.
	ErrBadOrder = errors.New("core: order must be at least 1")

	// ErrVertexRange indicates a vertex id outside 0..order-1.
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrSelfLoop indicates an attempted self-loop; star families are simple graphs.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the undirected edge was already added.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrUnlabeledVertex indicates a labeling pass left a vertex without a label.
	ErrUnlabeledVertex = errors.New("core: vertex has no label")
)

// Center is the id of the distinguished center vertex in every family.
const Center = 0

// Graph is a fixed-order, undirected, simple graph over int vertex ids.
//
// Adjacency preserves edge-insertion order per vertex: builders emit
// edges in a documented, deterministic order and labeling strategies
// walk neighbors in that same order. The adjacency relation is immutable
// once a builder returns; labels and weights live beside it.
type Graph struct {
	order int
	edges int
	adj   [][]int
}

// VertexLabels maps vertex id → positive label.
//
// A completed labeling assigns exactly one label to every vertex in
// 0..order-1; Complete reports the first violation.
type VertexLabels map[int]int

// Complete reports whether every vertex in 0..order-1 carries a label.
// Returns ErrUnlabeledVertex (with the offending id) on the first gap.
func (vl VertexLabels) Complete(order int) error {
	for v := 0; v < order; v++ {
		if _, ok := vl[v]; !ok {
			return fmt.Errorf("vertex %d: %w", v, ErrUnlabeledVertex)
		}
	}

	return nil
}

// Max returns the largest label in the mapping, or 0 when empty.
func (vl VertexLabels) Max() int {
	max := 0
	for _, l := range vl {
		if l > max {
			max = l
		}
	}

	return max
}

// EdgeKey identifies one direction of an undirected edge.
type EdgeKey struct {
	U, V int
}

// EdgeWeights maps ordered pairs (u,v) → weight. For every undirected
// edge {u,v} both (u,v) and (v,u) are present and equal; Set maintains
// that invariant, so callers never store a half edge.
type EdgeWeights map[EdgeKey]int

// Set records weight w for both directions of the undirected edge {u,v}.
func (ew EdgeWeights) Set(u, v, w int) {
	ew[EdgeKey{U: u, V: v}] = w
	ew[EdgeKey{U: v, V: u}] = w
}

// At returns the weight stored for direction (u,v).
func (ew EdgeWeights) At(u, v int) (int, bool) {
	w, ok := ew[EdgeKey{U: u, V: v}]

	return w, ok
}

// Max returns the largest weight in the mapping, or 0 when empty.
func (ew EdgeWeights) Max() int {
	max := 0
	for _, w := range ew {
		if w > max {
			max = w
		}
	}

	return max
}

// UndirectedCount returns the number of undirected edges represented,
// i.e. len(ew)/2 given the bidirectional storage invariant.
func (ew EdgeWeights) UndirectedCount() int {
	return len(ew) / 2
}
