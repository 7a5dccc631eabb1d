// Package probe searches for the largest feasible branch count of the
// greedy amalgamated-star family under a per-attempt wall-clock budget.
//
// What:
//
//   - Probe(ctx, opts) grows n from opts.Start by opts.Increment, running
//     the full build → label → derive pass for each candidate. The first
//     attempt that overruns its budget (or fails structurally) stops the
//     search; the last successful n is returned.
//
// Why:
//
//   - Labeling cost grows with n·m; probing answers "how far can this
//     machine go inside a time budget" without guessing.
//
// Guarantees (and their limits):
//
//   - The budget is a coarse guard observed between pipeline phases, not
//     a preemption point: an in-flight phase runs to completion before
//     the overrun is noticed. This mirrors the probing harness the
//     library grew out of and is intentional — the core stays
//     cancellation-free.
//   - Parent-context cancellation is reported as the context's error;
//     a plain budget overrun is a normal stop, not an error.
//
// Errors:
//
//   - ErrBadProbeOptions: Start < 2, M < 1, Increment < 1, Limit < 0,
//     or a non-positive Budget.
package probe
