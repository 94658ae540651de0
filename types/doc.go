// Package types contains the shared contracts of the stratify library.
//
// It defines the data model (Record, StratumKey, Bucket, Cell, QuotaPlan),
// the pluggable interfaces (Allocator, Logger, MetricsCollector, Hooks), and
// the sentinel errors used across packages.
//
// The root stratify package re-exports these definitions via type aliases so
// that internal packages can depend on types without importing the root
// package, avoiding import cycles.
package types
