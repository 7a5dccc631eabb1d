// File: graph.go
// Role: Graph construction and queries: NewGraph/AddEdge/HasEdge/Neighbors,
//       plus order, edge count, and degree accessors.
// Determinism:
//   - Neighbors(v) returns neighbors in edge-insertion order.
//   - AdjacencyList() mirrors per-vertex insertion order.

package core

import "fmt"

// NewGraph creates an empty simple graph with vertices 0..order-1 and no
// edges. Vertex 0 is the center by convention (see Center).
//
// Complexity: O(order).
func NewGraph(order int) (*Graph, error) {
	if order < 1 {
		return nil, fmt.Errorf("NewGraph: order=%d: %w", order, ErrBadOrder)
	}

	return &Graph{
		order: order,
		adj:   make([][]int, order),
	}, nil
}

// AddEdge records the undirected edge {u,v} in both adjacency slices.
// Emission order is preserved: v is appended to u's neighbors first,
// then u to v's.
//
// Errors: ErrVertexRange, ErrSelfLoop, ErrDuplicateEdge.
// Complexity: O(deg(u)) for the duplicate check.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.order || v < 0 || v >= g.order {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if g.HasEdge(u, v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++

	return nil
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Out-of-range ids report false.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.order || v < 0 || v >= g.order {
		return false
	}
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of v's neighbor ids in edge-insertion order.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.order {
		return nil
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out
}

// Order returns the total vertex count.
func (g *Graph) Order() int { return g.order }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.order {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexRange)
	}

	return len(g.adj[v]), nil
}

// AdjacencyList returns a deep copy of the adjacency relation,
// indexed by vertex id, neighbors in insertion order.
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, g.order)
	for v := range g.adj {
		out[v] = make([]int, len(g.adj[v]))
		copy(out[v], g.adj[v])
	}

	return out
}
