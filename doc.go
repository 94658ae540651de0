// Package stratify draws fixed-size, reproducible, stratified samples from
// in-memory collections of labeled records.
//
// Records are partitioned into strata (calendar month × length bucket,
// optionally × rating), an integer quota is apportioned to every stratum so
// quotas sum exactly to the target (or to the full population when it is
// smaller), and each stratum contributes a seeded uniform
// without-replacement draw. The result is globally permuted, so two runs
// with the same pool, seed, target, and flags return byte-identical output.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/alanchen34/stratify"
//
//	cfg := stratify.DefaultConfig()
//	cfg.TargetSamples = 400
//	cfg.Seed = 42
//
//	sampler, err := stratify.NewSampler(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sampled, err := sampler.Sample(records)
//
// # Key Properties
//
//   - Quota conservation: quotas always sum to min(target, population)
//   - Capacity respect: no stratum is ever drawn beyond its size
//   - Determinism: output is a pure function of (pool, target, seed, flags)
//   - Graceful degradation: an empty eligible pool or an unsatisfiable
//     target returns a smaller (possibly empty) dataset, never an error
//
// Records that cannot be stratified (too few words, undefined date, or an
// out-of-range rating when rating stratification is on) are silently
// excluded; only invalid configuration fails.
//
// # Advanced Usage
//
// Custom allocation strategy and per-cell seed derivation:
//
//	import (
//	    "github.com/alanchen34/stratify"
//	    "github.com/alanchen34/stratify/strategy"
//	)
//
//	sampler, err := stratify.NewSampler(cfg,
//	    stratify.WithAllocator(strategy.NewProportional()),
//	    stratify.WithDerivedSeeds(),
//	    stratify.WithLogger(logger),
//	)
//
// A Sampler holds no mutable state: one instance may serve independent
// sampling runs from parallel goroutines. See the pipeline package for a
// complete multi-category orchestrator built on top of the sampler.
package stratify
