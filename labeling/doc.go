// Package labeling assigns vertex labels to built star-family graphs so
// that the induced edge weights (endpoint-label sums) are pairwise
// distinct — an edge-irregular k-labeling.
//
// What:
//
//   - Labeler — the common capability: Label(g) → complete VertexLabels.
//     Every strategy labels the center 1 and runs a single linear pass,
//     branch phase then leaf phase, with no backtracking.
//   - Greedy — the amalgamated-star strategy. Seeds an available-weight
//     pool {2..2k}, k = ⌈(n·m+1)/2⌉, steps branch labels by d = k/(n-1),
//     then consumes the pool minimum per leaf edge. Pool membership is
//     consumed at most once per edge, so every weight drawn from the pool
//     is unique by construction.
//   - ClosedForm — the S(n,3) strategy. Pure arithmetic split into two
//     effective residue cases on n mod 4 (classes {0,2,3} collapse; class
//     {1} differs). No bookkeeping during assignment; uniqueness is a
//     property of the formulas, checked afterwards by weight.Verify.
//   - Linear — the legacy snowflake rule: label i clamped at
//     k = ⌊(3n+1)/2⌋. Collision-prone and kept only behind an explicit
//     Unsafe flag; expect weight.Verify to fail it.
//   - WeightPool — the explicit ordered pool threaded through the greedy
//     pass and returned alongside the labels, so callers can assert on
//     its final state.
//
// Why:
//
//   - One strategy type per family keeps the residue-case arithmetic and
//     the pool bookkeeping independently testable instead of scattering
//     family conditionals through one pass.
//
// Complexity:
//
//   - Greedy: O(n·m·log k) time (ordered-pool operations), O(k) space.
//   - ClosedForm: O(n) time, O(1) extra space.
//   - Linear: O(n) time, O(1) extra space.
//
// Errors:
//
//   - ErrTooFewBranches / ErrTooFewLeaves: parameters below the family minimum.
//   - ErrNilGraph / ErrOrderMismatch: topology absent or built for other parameters.
//   - ErrPoolExhausted: greedy pool emptied before all leaves were labeled
//     (infeasible labeling — fatal for the parameter set).
//   - ErrUnsafeStrategy: Linear used without its explicit Unsafe opt-in.
//   - ErrBadBound: pool bound k < 1.
//
// Strategies never mutate the graph; they only produce data beside it.
package labeling
