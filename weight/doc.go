// Package weight derives edge weights from a completed vertex labeling
// and verifies the edge-irregularity property.
//
// What:
//
//   - Derive(g, labels) — weight(u,v) = label(u)+label(v), stored for
//     both directions of every undirected edge. Idempotent: repeated
//     derivation from the same labels yields an identical mapping.
//   - Verify(weights) — a structured, non-printing verdict: undirected
//     edge count, distinct weight count, maximum weight, the Irregular
//     flag, and the sorted list of duplicated weights when the property
//     fails.
//   - Complexity(n, m, k) — the descriptive figure "T(n·m·k)" reported
//     for the greedy family. A reporting string, not an asymptotic claim.
//
// Why:
//
//   - Verification returns a value instead of printing, so callers and
//     tests branch on Result.Irregular rather than scraping logs. A
//     failed verification is informational, never an error: the caller
//     decides what a non-irregular labeling means for the run.
//
// Complexity:
//
//   - Derive: O(V + E). Verify: O(E).
//
// Errors:
//
//   - ErrNilGraph: no topology supplied to Derive.
//   - core.ErrUnlabeledVertex (wrapped): the labeling left a gap; no
//     partial weight mapping is returned.
//
// Neither operation mutates its inputs.
package weight
