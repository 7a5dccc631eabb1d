// Package builder constructs the three star-like graph families that
// starlabel can label. Pure structural construction — no labels yet.
//
// What:
//
//   - AmalgamatedStar(n, m) — center 0, branches 1..n, m-1 leaves per
//     branch with sequential ids after the branch ids. order = n·m+1.
//   - HomogeneousStar(n) — the homogeneous amalgamated star S(n,3):
//     center, branches 1..n, exactly 2 leaves per branch. order = 3n+1.
//   - Snowflake(n) — center, branches 1..n each with 2 leaves, plus a
//     ring edge from every branch to its cyclic successor. order = 3n+1.
//
// Why:
//
//   - Each labeling strategy assumes one exact id layout (branch ids
//     before leaf ids, leaves emitted branch-by-branch). Centralizing
//     construction keeps those layouts in one audited place.
//
// Determinism:
//
//   - Same parameters ⇒ identical graphs, byte for byte: vertex ids are
//     positional and edges are emitted in a fixed, documented order.
//
// Complexity:
//
//   - All constructors: O(order) time, O(order) space.
//
// Errors:
//
//   - ErrTooFewBranches: n below the family minimum (2 for the
//     amalgamated family, whose labeling divides by n-1; 3 for the
//     snowflake ring; 1 for S(n,3)).
//   - ErrTooFewLeaves: m < 1 for the amalgamated family.
//
// Constructors fail fast: on a parameter error no partial topology is
// returned.
package builder
