package strategy

import (
	"fmt"
	"sort"

	"github.com/alanchen34/stratify/types"
)

// Proportional implements largest-remainder quota apportionment with
// capacity-aware leftover redistribution.
type Proportional struct{}

var _ types.Allocator = (*Proportional)(nil)

// NewProportional creates the default allocation strategy.
//
// The strategy conserves the total exactly: quotas always sum to
// min(target, total population). When small cells cannot absorb their equal
// share, the freed units flow to cells that still have room, proportionally
// to their remaining capacity, so large cells are never starved by early
// saturation.
//
// Returns:
//   - *Proportional: Initialized proportional strategy
//
// Example:
//
//	alloc := strategy.NewProportional()
//	sampler, err := stratify.NewSampler(cfg, stratify.WithAllocator(alloc))
func NewProportional() *Proportional {
	return &Proportional{}
}

// Allocate computes per-cell quotas for the given sizes and target.
//
// The algorithm runs three deterministic passes:
//  1. Base split: every cell gets target/n, the first target%n cells in the
//     given order get one extra; each provisional quota is clamped to the
//     cell's size.
//  2. Proportional redistribution: the unallocated remainder is spread over
//     cells with spare capacity, floor(spare/totalSpare * leftover) each.
//  3. Unit backfill: rounding dust is handed out one unit at a time, visiting
//     cells in descending spare capacity (ties keep the given cell order),
//     until the target is met or every cell is saturated.
//
// An exhausted population is not an error: quotas then equal the sizes and
// the realized total is the full population.
//
// Parameters:
//   - sizes: Per-cell population sizes in cell order, all > 0
//   - target: Requested total sample count, >= 0
//
// Returns:
//   - []int: Per-cell quotas, parallel to sizes
//   - error: ErrNegativeTarget or ErrBadCellSize on malformed input
func (p *Proportional) Allocate(sizes []int, target int) ([]int, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeTarget, target)
	}
	for i, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("%w: cell %d has size %d", ErrBadCellSize, i, s)
		}
	}

	n := len(sizes)
	quotas := make([]int, n)
	if n == 0 || target == 0 {
		return quotas, nil
	}

	// Pass 1: equal base with the remainder given to the first cells in
	// cell order, clamped to capacity.
	base, rem := target/n, target%n
	for i := range quotas {
		q := base
		if i < rem {
			q++
		}
		quotas[i] = min(q, sizes[i])
	}

	leftover := target - sum(quotas)
	if leftover <= 0 {
		return quotas, nil
	}

	spare := make([]int, n)
	totalSpare := 0
	for i := range sizes {
		spare[i] = sizes[i] - quotas[i]
		totalSpare += spare[i]
	}
	if totalSpare == 0 {
		// Population exhausted; every cell is already at capacity.
		return quotas, nil
	}

	// Pass 2: spread the leftover proportionally to spare capacity, floored.
	for i := range quotas {
		extra := spare[i] * leftover / totalSpare
		quotas[i] += min(spare[i], extra)
	}

	// Pass 3: flooring leaves a small non-negative remainder. Hand it out
	// one unit at a time, most spare capacity first. The visit order is
	// fixed from the post-redistribution spare so repeated passes stay
	// deterministic; a stable sort keeps ties in cell order.
	leftover = target - sum(quotas)
	if leftover > 0 {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return sizes[order[a]]-quotas[order[a]] > sizes[order[b]]-quotas[order[b]]
		})

		for leftover > 0 {
			progressed := false
			for _, i := range order {
				if leftover == 0 {
					break
				}
				if quotas[i] < sizes[i] {
					quotas[i]++
					leftover--
					progressed = true
				}
			}
			if !progressed {
				break
			}
		}
	}

	return quotas, nil
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}

	return total
}
