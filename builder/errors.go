// File: errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach method context via %w wrapping.
//   - Constructors never panic at runtime; parameter validation fails fast.

package builder

import "errors"

// ErrTooFewBranches indicates the branch count n is below the minimum the
// requested family supports. The amalgamated family needs n ≥ 2 (its
// labeling rule divides by n-1; n=1 is rejected here rather than faulting
// later), the snowflake ring needs n ≥ 3, and S(n,3) needs n ≥ 1.
// Usage: if errors.Is(err, ErrTooFewBranches) { /* report invalid n */ }.
var ErrTooFewBranches = errors.New("builder: too few branches")

// ErrTooFewLeaves indicates the leaves-per-branch parameter m is below 1.
// Usage: if errors.Is(err, ErrTooFewLeaves) { /* report invalid m */ }.
var ErrTooFewLeaves = errors.New("builder: too few leaves per branch")
