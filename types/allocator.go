package types

// Allocator converts per-cell population sizes and a target total into
// per-cell integer quotas.
//
// The sampler calls Allocate once per run with sizes listed in cell
// iteration order. Implementations must:
//   - Be deterministic (same input → same output)
//   - Never exceed a cell's size
//   - Conserve the total: quotas sum to min(target, sum of sizes)
//   - Be stateless (no side effects between calls)
//
// Tie-breaks that depend on position must use the given order; sizes must
// never be re-sorted.
type Allocator interface {
	// Allocate computes the quota vector for the given cell sizes.
	//
	// Parameters:
	//   - sizes: Per-cell population sizes in cell order, all > 0
	//   - target: Requested total sample count, >= 0
	//
	// Returns:
	//   - []int: Per-cell quotas, parallel to sizes
	//   - error: Validation error for a negative target or non-positive size
	Allocate(sizes []int, target int) ([]int, error)
}
