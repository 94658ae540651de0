package strategy

import (
	"fmt"

	"github.com/alanchen34/stratify/types"
)

// EqualShare implements a plain equal split clamped to cell capacity.
type EqualShare struct{}

var _ types.Allocator = (*EqualShare)(nil)

// NewEqualShare creates the simple allocation strategy.
//
// Every cell receives target/n, with the first target%n cells in cell order
// receiving one extra; quotas are clamped to cell sizes. Units freed by
// saturated cells are NOT redistributed, so the realized total may fall
// short of the target whenever any cell is smaller than its share. Use
// Proportional unless all cells are known to be large enough.
//
// Returns:
//   - *EqualShare: Initialized equal-share strategy
func NewEqualShare() *EqualShare {
	return &EqualShare{}
}

// Allocate computes clamped equal-share quotas.
//
// Parameters:
//   - sizes: Per-cell population sizes in cell order, all > 0
//   - target: Requested total sample count, >= 0
//
// Returns:
//   - []int: Per-cell quotas, parallel to sizes
//   - error: ErrNegativeTarget or ErrBadCellSize on malformed input
func (e *EqualShare) Allocate(sizes []int, target int) ([]int, error) {
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

	base, rem := target/n, target%n
	for i := range quotas {
		q := base
		if i < rem {
			q++
		}
		quotas[i] = min(q, sizes[i])
	}

	return quotas, nil
}
