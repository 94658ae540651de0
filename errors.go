package stratify

import "github.com/alanchen34/stratify/types"

// Sentinel errors returned by the Sampler, re-exported from the types
// subpackage. Check with errors.Is.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidTarget is returned when the target sample count is negative.
	ErrInvalidTarget = types.ErrInvalidTarget

	// ErrInvalidBuckets is returned when the length bucket partition is not a
	// strictly increasing cover of [0, ∞).
	ErrInvalidBuckets = types.ErrInvalidBuckets

	// ErrInvalidMinWords is returned when the minimum word threshold is negative.
	ErrInvalidMinWords = types.ErrInvalidMinWords
)
