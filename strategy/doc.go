// Package strategy provides built-in quota allocation implementations.
//
// An allocation strategy converts per-cell population sizes and a target
// total into integer quotas. The package includes two built-in strategies:
//
//   - Proportional: three-pass largest-remainder apportionment with
//     capacity-aware backfill (recommended, the default)
//   - EqualShare: plain base+remainder split clamped to capacity
//
// # Strategy Selection Guide
//
// Proportional:
//   - Use when cell sizes are uneven (the common case)
//   - Conserves the total exactly: quotas sum to min(target, population)
//   - Spends capacity freed by small saturated cells on cells with room,
//     proportionally to their remaining capacity
//
// EqualShare:
//   - Use when all cells are known to be large enough for an equal split
//   - Cheaper and easier to reason about
//   - Under-fills the target whenever a small cell saturates; the leftover
//     is NOT redistributed
//
// Custom strategies can be implemented by satisfying the types.Allocator
// interface.
package strategy
