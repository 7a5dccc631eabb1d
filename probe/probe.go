// File: probe.go - feasibility probing for the greedy family.
//
// Contract:
//   - Attempts run one at a time on a supervised goroutine; the budget is
//     a context deadline observed between phases (no mid-phase preemption).
//   - Budget overrun ⇒ stop, return last successful n, nil error.
//   - Parent cancellation ⇒ return last successful n with ctx's error.
//   - Structural failure of an attempt (builder/labeling error) ⇒ stop,
//     return last successful n with that error.
//
// Complexity:
//   - Per attempt: O(n·m·log k); the loop runs until budget/limit.

package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/starlabel/builder"
	"github.com/katalvlaran/starlabel/labeling"
	"github.com/katalvlaran/starlabel/weight"
)

// ErrBadProbeOptions indicates an option outside its documented domain.
var ErrBadProbeOptions = errors.New("probe: invalid options")

// Default probing parameters, matching the harness the library grew out of.
const (
	DefaultStart     = 3
	DefaultM         = 4
	DefaultIncrement = 1
	DefaultBudget    = 60 * time.Second
)

// Options tunes a probing run.
type Options struct {
	// Start is the first branch count to attempt (≥ 2).
	Start int
	// M is the constant leaves-per-branch parameter (≥ 1).
	M int
	// Increment is the step between attempts (≥ 1).
	Increment int
	// Limit bounds the search (inclusive); 0 means no bound beyond Budget.
	Limit int
	// Budget is the wall-clock allowance per attempt (> 0).
	Budget time.Duration
}

// DefaultOptions returns the canonical probing parameters.
func DefaultOptions() Options {
	return Options{
		Start:     DefaultStart,
		M:         DefaultM,
		Increment: DefaultIncrement,
		Budget:    DefaultBudget,
	}
}

// validate checks every option against its documented domain.
func (o Options) validate() error {
	if o.Start < 2 {
		return fmt.Errorf("Probe: start=%d: %w", o.Start, ErrBadProbeOptions)
	}
	if o.M < 1 {
		return fmt.Errorf("Probe: m=%d: %w", o.M, ErrBadProbeOptions)
	}
	if o.Increment < 1 {
		return fmt.Errorf("Probe: increment=%d: %w", o.Increment, ErrBadProbeOptions)
	}
	if o.Limit < 0 {
		return fmt.Errorf("Probe: limit=%d: %w", o.Limit, ErrBadProbeOptions)
	}
	if o.Budget <= 0 {
		return fmt.Errorf("Probe: budget=%s: %w", o.Budget, ErrBadProbeOptions)
	}

	return nil
}

// Probe returns the largest n whose full pipeline pass completed inside
// the per-attempt budget; 0 when no attempt succeeded.
func Probe(ctx context.Context, opts Options) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}

	maxN := 0
	for n := opts.Start; opts.Limit == 0 || n <= opts.Limit; n += opts.Increment {
		if err := ctx.Err(); err != nil {
			return maxN, err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, opts.Budget)
		eg, egCtx := errgroup.WithContext(attemptCtx)
		candidate := n
		eg.Go(func() error { return attempt(egCtx, candidate, opts.M) })
		err := eg.Wait()
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				// Budget overrun: a normal stop condition.
				return maxN, nil
			}
			if cerr := ctx.Err(); cerr != nil {
				return maxN, cerr
			}

			return maxN, fmt.Errorf("Probe: n=%d: %w", candidate, err)
		}

		maxN = candidate
	}

	return maxN, nil
}

// attempt runs one full build → label → derive → verify pass, observing
// ctx between phases.
func attempt(ctx context.Context, n, m int) error {
	g, err := builder.AmalgamatedStar(n, m)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	labels, err := labeling.Greedy{N: n, M: m}.Label(g)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	weights, err := weight.Derive(g, labels)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	weight.Verify(weights)

	return nil
}
