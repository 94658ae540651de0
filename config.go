package stratify

import (
	"fmt"

	"github.com/alanchen34/stratify/types"
)

// Config is the configuration for the Sampler.
//
// NewSampler treats an empty Buckets field as the default partition, so a
// Config only listing the sampling parameters is usable as-is. SetDefaults
// additionally fills TargetSamples and MinWords for partially specified
// configurations (e.g. decoded from yaml). Validation happens once in
// NewSampler; an invalid configuration is rejected before any allocation
// work (fail fast, no partial allocation).
type Config struct {
	// TargetSamples is the requested total sample count per run.
	// The realized total is smaller only when the eligible population
	// cannot satisfy it.
	TargetSamples int `yaml:"targetSamples"`

	// Seed drives every random decision of a run: the per-stratum draws
	// and the final whole-dataset permutation. Equal seeds (with equal
	// input and flags) reproduce identical output.
	Seed uint64 `yaml:"seed"`

	// MinWords is the minimum body word count for a record to enter the
	// pool. Records below the threshold are excluded, not erred on.
	MinWords int `yaml:"minWords"`

	// StratifyByRating adds the 1-5 rating to the stratum key. Records
	// with an out-of-range rating are then excluded.
	StratifyByRating bool `yaml:"stratifyByRating"`

	// Buckets is the ordered length bucket partition. Empty means the
	// default four-bucket partition. The same partition must be used
	// wherever length bucketing occurs.
	Buckets types.Buckets `yaml:"buckets"`
}

// DefaultConfig returns a Config with the standard defaults: 400 samples,
// seed 42, five-word minimum, no rating stratification, and the default
// length partition.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		TargetSamples: 400,
		Seed:          42,
		MinWords:      5,
		Buckets:       types.DefaultBuckets(),
	}
}

// SetDefaults fills in missing configuration values.
//
// Only zero-valued fields are touched, so a partially specified Config
// (e.g. decoded from yaml) keeps its explicit settings. A zero Seed is
// valid and preserved; reproducibility needs any fixed value, not a
// particular one.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.TargetSamples == 0 {
		cfg.TargetSamples = defaults.TargetSamples
	}
	if cfg.MinWords == 0 {
		cfg.MinWords = defaults.MinWords
	}
	if len(cfg.Buckets) == 0 {
		cfg.Buckets = defaults.Buckets
	}
}

// Validate checks configuration constraints.
//
// Rules:
//   - TargetSamples >= 0
//   - MinWords >= 0
//   - Buckets is a strictly increasing, contiguous cover of [0, ∞)
//
// Returns:
//   - error: Wrapped sentinel describing the first violation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.TargetSamples < 0 {
		return fmt.Errorf("%w: TargetSamples is %d", types.ErrInvalidTarget, cfg.TargetSamples)
	}
	if cfg.MinWords < 0 {
		return fmt.Errorf("%w: MinWords is %d", types.ErrInvalidMinWords, cfg.MinWords)
	}
	if err := cfg.Buckets.Validate(); err != nil {
		return err
	}

	return nil
}
