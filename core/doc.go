// Package core provides the shared primitives every starlabel package
// builds on: an int-indexed star graph and the label/weight mappings
// produced by a labeling pass.
//
// What:
//
//   - Graph — a fixed-order, undirected, simple graph over vertex ids
//     0..order-1. Vertex 0 is always the distinguished center. Adjacency
//     is stored per vertex in edge-insertion order.
//   - VertexLabels — vertex id → positive label; a completed labeling
//     covers every vertex exactly once.
//   - EdgeWeights — ordered pair (u,v) → weight; both directions of every
//     undirected edge are present and equal to label(u)+label(v).
//
// Why:
//
//   - One graph representation behind three family builders and three
//     labeling strategies keeps the algorithm packages free of storage
//     concerns.
//   - Insertion-order adjacency preserves the construction order the
//     labeling strategies rely on.
//
// Complexity:
//
//   - AddEdge / HasEdge: O(deg) (degrees are tiny and bounded per family).
//   - Neighbors / Degree: O(deg).
//   - EdgeWeights.Set / At: O(1).
//
// Errors:
//
//   - ErrBadOrder: requested order < 1.
//   - ErrVertexRange: vertex id outside 0..order-1.
//   - ErrSelfLoop: u == v on AddEdge.
//   - ErrDuplicateEdge: the undirected edge already exists.
//   - ErrUnlabeledVertex: a vertex has no label after a labeling pass.
//
// Graphs are single-owner: built once, read afterwards. No locking is
// provided or needed — each build+label+derive+verify pass owns its data
// exclusively for its lifetime.
package core
