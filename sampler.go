package stratify

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/alanchen34/stratify/internal/draw"
	"github.com/alanchen34/stratify/internal/hooks"
	"github.com/alanchen34/stratify/internal/logger"
	"github.com/alanchen34/stratify/internal/metrics"
	"github.com/alanchen34/stratify/internal/stratum"
	"github.com/alanchen34/stratify/strategy"
	"github.com/alanchen34/stratify/types"
)

// Sampler draws stratified samples from in-memory record pools.
//
// Sampler is the main entry point of the stratify library. One sampling run:
//   - excludes records that cannot be stratified
//   - partitions the eligible pool into cells by stratum key
//   - apportions an integer quota to every cell (see the strategy package)
//   - draws each cell's quota uniformly without replacement
//   - concatenates the draws in cell order and applies one final permutation
//
// Thread safety: a Sampler holds no mutable state. All public methods are
// safe for concurrent use; independent runs may execute in parallel
// goroutines sharing one instance.
//
// Determinism: for a fixed pool, seed, target, and flags, two runs return
// identical output (same records, same order).
type Sampler struct {
	cfg Config

	allocator    Allocator
	hooks        Hooks
	metrics      MetricsCollector
	logger       Logger
	assigner     *stratum.Assigner
	derivedSeeds bool
}

// cellGroup pairs a stratum key with its member records during one run.
// Members keep pool order; the key order across groups is the cell
// iteration order the allocator tie-breaks depend on.
type cellGroup struct {
	key     types.StratumKey
	members []types.Record
}

// NewSampler creates a Sampler from the given configuration.
//
// The configuration is validated here: an invalid target, word threshold, or
// bucket partition is rejected immediately, before any sampling work.
//
// Returns a concrete *Sampler following the "accept interfaces, return
// structs" principle.
//
// Parameters:
//   - cfg: Sampler configuration (see DefaultConfig)
//   - opts: Optional configuration (allocator, hooks, metrics, logger, seed mode)
//
// Returns:
//   - *Sampler: Initialized sampler
//   - error: Wrapped ErrInvalidConfig if the configuration is invalid
//
// Example:
//
//	cfg := stratify.DefaultConfig()
//	cfg.TargetSamples = 400
//	sampler, err := stratify.NewSampler(cfg, stratify.WithLogger(log))
func NewSampler(cfg Config, opts ...Option) (*Sampler, error) {
	// An empty partition means the default one. Zero TargetSamples and
	// MinWords stay as given: both are valid configurations.
	if len(cfg.Buckets) == 0 {
		cfg.Buckets = types.DefaultBuckets()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	options := &samplerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	s := &Sampler{
		cfg:          cfg,
		allocator:    options.allocator,
		metrics:      options.metrics,
		logger:       options.logger,
		derivedSeeds: options.derivedSeeds,
		assigner:     stratum.New(cfg.MinWords, cfg.Buckets, cfg.StratifyByRating),
	}
	if s.allocator == nil {
		s.allocator = strategy.NewProportional()
	}
	if s.metrics == nil {
		s.metrics = metrics.NewNop()
	}
	if s.logger == nil {
		s.logger = logger.NewNop()
	}
	if options.hooks != nil {
		s.hooks = *options.hooks
	}
	nop := hooks.NewNop()
	if s.hooks.OnPlanComputed == nil {
		s.hooks.OnPlanComputed = nop.OnPlanComputed
	}
	if s.hooks.OnSampled == nil {
		s.hooks.OnSampled = nop.OnSampled
	}

	return s, nil
}

// Sample draws one stratified sample from the pool.
//
// An empty eligible pool, a zero target, or an all-zero quota plan yields an
// empty dataset with a nil error; an eligible population smaller than the
// target yields the full population. Callers inspect the result size rather
// than catch errors for these conditions.
//
// Input records are never mutated; the returned slice re-uses the caller's
// record values.
//
// Parameters:
//   - records: The full candidate pool for this run
//
// Returns:
//   - []types.Record: The sampled dataset, globally permuted
//   - error: Allocation failure from a custom allocator; nil otherwise
func (s *Sampler) Sample(records []types.Record) ([]types.Record, error) {
	start := time.Now()

	groups, eligible := s.group(records)
	plan, err := s.plan(groups)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordPoolSize(len(records), eligible)
	s.metrics.RecordCellCount(len(groups))
	s.metrics.RecordAllocation(plan.Target, plan.Realized())

	if err := s.hooks.OnPlanComputed(plan); err != nil {
		s.logger.Warn("OnPlanComputed hook failed", "error", err)
	}

	sampled := make([]types.Record, 0, plan.Realized())
	for i, g := range groups {
		quota := plan.Quotas[i]
		if quota <= 0 {
			continue
		}
		sampled = append(sampled, draw.WithoutReplacement(g.members, quota, s.cellSource(g.key))...)
	}

	// One final whole-dataset permutation so the output order carries no
	// trace of cell boundaries.
	draw.Shuffle(sampled, draw.NewSource(s.cfg.Seed))

	s.metrics.RecordSampleSize(len(sampled))
	s.metrics.RecordSampleDuration(time.Since(start).Seconds())
	if err := s.hooks.OnSampled(len(sampled)); err != nil {
		s.logger.Warn("OnSampled hook failed", "error", err)
	}

	s.logger.Info("sample drawn",
		"pool", len(records),
		"eligible", eligible,
		"cells", len(groups),
		"target", plan.Target,
		"realized", len(sampled),
	)

	return sampled, nil
}

// Plan computes the quota plan for the pool without drawing any records.
//
// Useful for reporting and dry runs: the plan lists every populated cell
// with its population size and allocated quota.
//
// Parameters:
//   - records: The full candidate pool
//
// Returns:
//   - types.QuotaPlan: Cells and quotas in cell iteration order
//   - error: Allocation failure from a custom allocator; nil otherwise
func (s *Sampler) Plan(records []types.Record) (types.QuotaPlan, error) {
	groups, _ := s.group(records)

	return s.plan(groups)
}

// group partitions the pool into cells, excluding ineligible records.
// Cells come back in ascending stratum key order: the reproducible grouping
// order, never influenced by cell sizes.
func (s *Sampler) group(records []types.Record) ([]cellGroup, int) {
	byKey := make(map[types.StratumKey][]types.Record)
	eligible := 0
	for _, rec := range records {
		key, reason := s.assigner.Assign(rec)
		if reason != "" {
			s.metrics.RecordExclusion(reason)
			continue
		}
		byKey[key] = append(byKey[key], rec)
		eligible++
	}

	groups := make([]cellGroup, 0, len(byKey))
	for key, members := range byKey {
		groups = append(groups, cellGroup{key: key, members: members})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].key.Compare(groups[j].key) < 0
	})

	s.logger.Debug("pool partitioned",
		"records", len(records),
		"eligible", eligible,
		"cells", len(groups),
	)

	return groups, eligible
}

// plan runs the allocator over the grouped cells.
func (s *Sampler) plan(groups []cellGroup) (types.QuotaPlan, error) {
	cells := make([]types.Cell, len(groups))
	sizes := make([]int, len(groups))
	for i, g := range groups {
		cells[i] = types.Cell{Key: g.key, Size: len(g.members)}
		sizes[i] = len(g.members)
	}

	quotas, err := s.allocator.Allocate(sizes, s.cfg.TargetSamples)
	if err != nil {
		return types.QuotaPlan{}, fmt.Errorf("quota allocation failed: %w", err)
	}

	return types.QuotaPlan{Cells: cells, Quotas: quotas, Target: s.cfg.TargetSamples}, nil
}

// cellSource builds the seeded generator for one cell's draw.
//
// The default reuses the run seed for every cell (the documented
// reproducibility contract). WithDerivedSeeds hashes the stratum key into a
// per-cell sub-seed instead.
func (s *Sampler) cellSource(key types.StratumKey) *rand.Rand {
	if s.derivedSeeds {
		return draw.NewSource(draw.SubSeed(key.String(), s.cfg.Seed))
	}

	return draw.NewSource(s.cfg.Seed)
}
