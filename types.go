package stratify

import "github.com/alanchen34/stratify/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces via type aliases. Internal packages depend on the types
// subpackage directly, which avoids import cycles while users get the
// convenient stratify.Record, stratify.QuotaPlan, etc.
type (
	Record     = types.Record
	Month      = types.Month
	StratumKey = types.StratumKey
	Bucket     = types.Bucket
	Buckets    = types.Buckets
	Cell       = types.Cell
	QuotaPlan  = types.QuotaPlan
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Allocator        = types.Allocator
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Hooks            = types.Hooks
)

// Unbounded marks a length bucket with no upper word-count limit.
const Unbounded = types.Unbounded

// DefaultBuckets returns the standard four-bucket length partition.
func DefaultBuckets() Buckets { return types.DefaultBuckets() }
