// Package report renders the human-readable text records of a completed
// build → label → derive → verify pass.
//
// What:
//
//   - Data bundles everything a run produced: family name, parameters,
//     topology, labels, weights, and the verification Result.
//   - Write emits the parameter echo, vertex-label listing, adjacency
//     listing, per-edge weight listing, verdict, and complexity figure
//     to any io.Writer. Section headers are styled with lipgloss (plain
//     ASCII when the writer has no color profile).
//
// Why:
//
//   - The core packages return data structures only; turning them into
//     free-text records is deliberately peripheral. The output is an
//     append-only log format for humans — nothing parses it back, and
//     no byte-level stability is promised.
//
// Complexity: O(V + E) per report.
package report
