package strategy

import "github.com/alanchen34/stratify/types"

// Errors returned by the built-in allocators for malformed input.
var (
	// ErrNegativeTarget indicates a negative target sample count.
	ErrNegativeTarget = types.ErrInvalidTarget

	// ErrBadCellSize indicates a zero or negative cell size.
	ErrBadCellSize = types.ErrInvalidCellSize
)
