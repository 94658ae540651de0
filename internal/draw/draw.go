// Package draw provides the seeded randomness primitives of the sampler:
// generator construction, per-cell sub-seed derivation, uniform
// without-replacement draws, and whole-slice permutation.
//
// Every operation is fully determined by its seed. The package never touches
// global random state.
package draw

import (
	"math/rand/v2"

	"github.com/zeebo/xxh3"
)

// NewSource creates a deterministic generator from a run seed.
//
// Parameters:
//   - seed: Run seed; equal seeds produce identical generators
//
// Returns:
//   - *rand.Rand: PCG-backed generator
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// SubSeed derives a per-cell seed from the run seed and a stable cell label.
//
// The derivation hashes the label with the run seed, so the result is a pure
// function of (seed, label) while distinct labels decorrelate their draws.
//
// Parameters:
//   - label: Stable cell identifier (StratumKey.String())
//   - seed: Run seed
//
// Returns:
//   - uint64: Derived sub-seed
func SubSeed(label string, seed uint64) uint64 {
	return xxh3.HashStringSeed(label, seed)
}

// WithoutReplacement draws n distinct elements from pool uniformly at random.
//
// The pool is not modified; the draw works on an index permutation. When n
// is at least the pool size, a copy of the whole pool is returned.
//
// Parameters:
//   - pool: Elements to draw from
//   - n: Number of elements to draw
//   - rng: Seeded generator
//
// Returns:
//   - []T: The drawn elements in draw order
func WithoutReplacement[T any](pool []T, n int, rng *rand.Rand) []T {
	if n <= 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}

	// Partial Fisher-Yates over an index slice.
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}

	out := make([]T, n)
	for i := range n {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = pool[idx[i]]
	}

	return out
}

// Shuffle permutes the slice in place using the given generator.
func Shuffle[T any](items []T, rng *rand.Rand) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
