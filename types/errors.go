package types

import "errors"

// Sentinel errors for the stratify library.
//
// These provide type-safe error checking via errors.Is() and errors.As().
// Components wrap them with context using fmt.Errorf("...: %w", err).
//
// Per-record anomalies (missing body, unparseable date, out-of-range rating)
// are never errors: malformed records are silently excluded from the pool.
// Only invalid configuration fails fast.

// Configuration errors - rejected before any allocation work begins.
var (
	// ErrInvalidConfig is returned when the sampler configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidTarget is returned when the target sample count is negative.
	ErrInvalidTarget = errors.New("target sample count must be non-negative")

	// ErrInvalidBuckets is returned when the length bucket partition is not a
	// strictly increasing cover of [0, ∞).
	ErrInvalidBuckets = errors.New("invalid length bucket partition")

	// ErrInvalidMinWords is returned when the minimum word threshold is negative.
	ErrInvalidMinWords = errors.New("minimum word threshold must be non-negative")
)

// Allocator errors - returned by Allocate for malformed input.
var (
	// ErrInvalidCellSize is returned when a cell size is zero or negative.
	// Cells are only formed from records present in the pool, so a
	// non-positive size indicates a caller bug.
	ErrInvalidCellSize = errors.New("cell size must be positive")
)
