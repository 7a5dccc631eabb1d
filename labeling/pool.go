// File: pool.go - the available-weight pool consumed by the greedy pass.
//
// Contract:
//   - NewWeightPool(k) seeds the ordered set {2..2k} (k ≥ 1).
//   - PopMin extracts the current minimum; empty pool ⇒ ErrPoolExhausted.
//   - Remove deletes a weight if present; absent weights are a no-op.
//   - The pool shrinks monotonically; nothing is ever re-inserted.
//
// Complexity:
//   - NewWeightPool: O(k·log k). PopMin/Remove/Contains: O(log k).
//
// Rationale:
//   - An explicit pool value owned by the strategy call (and returned to
//     the caller) instead of shared process state: tests assert on the
//     final pool directly.

package labeling

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// poolFloor is the smallest derivable edge weight: both endpoint labels
// are at least 1.
const poolFloor = 2

// WeightPool is an ordered set of edge weights not yet consumed by the
// greedy labeling pass. Not safe for concurrent use; a pool belongs to
// exactly one labeling pass.
type WeightPool struct {
	set *treeset.Set
}

// NewWeightPool seeds a pool with every candidate weight in {2..2k}.
func NewWeightPool(k int) (*WeightPool, error) {
	if k < 1 {
		return nil, fmt.Errorf("NewWeightPool: k=%d: %w", k, ErrBadBound)
	}

	s := treeset.NewWithIntComparator()
	for w := poolFloor; w <= 2*k; w++ {
		s.Add(w)
	}

	return &WeightPool{set: s}, nil
}

// PopMin extracts and returns the smallest remaining weight.
func (p *WeightPool) PopMin() (int, error) {
	if p.set.Empty() {
		return 0, fmt.Errorf("PopMin: %w", ErrPoolExhausted)
	}

	it := p.set.Iterator()
	it.Next()
	w := it.Value().(int)
	p.set.Remove(w)

	return w, nil
}

// Remove deletes w from the pool; removing an absent weight is a no-op.
func (p *WeightPool) Remove(w int) {
	p.set.Remove(w)
}

// Contains reports whether w is still available.
func (p *WeightPool) Contains(w int) bool {
	return p.set.Contains(w)
}

// Len returns the number of weights still available.
func (p *WeightPool) Len() int { return p.set.Size() }

// Empty reports whether every weight has been consumed.
func (p *WeightPool) Empty() bool { return p.set.Empty() }

// Values returns the remaining weights in ascending order.
func (p *WeightPool) Values() []int {
	vs := p.set.Values()
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = v.(int)
	}

	return out
}
