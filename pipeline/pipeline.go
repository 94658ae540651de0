package pipeline

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/alanchen34/stratify"
	"github.com/alanchen34/stratify/internal/draw"
	"github.com/alanchen34/stratify/internal/logger"
	"github.com/alanchen34/stratify/types"
)

// LoadFunc loads the reviews of one category. Tests inject in-memory pools
// through this seam; production uses LoadReviews.
type LoadFunc func(path string) (*LoadResult, error)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline logger (default: no-op).
func WithLogger(log types.Logger) Option {
	return func(p *Pipeline) {
		p.logger = log
	}
}

// WithMetrics sets the metrics collector handed to the sampler.
func WithMetrics(collector types.MetricsCollector) Option {
	return func(p *Pipeline) {
		p.metrics = collector
	}
}

// WithLoadFunc replaces the review loader.
func WithLoadFunc(load LoadFunc) Option {
	return func(p *Pipeline) {
		p.load = load
	}
}

// WithDryRun disables all output writes; Run still samples and summarizes.
func WithDryRun() Option {
	return func(p *Pipeline) {
		p.dryRun = true
	}
}

// Pipeline processes review categories with consistent stratified sampling.
//
// One Sampler instance is shared by all categories: it holds no mutable
// state, and using one seed across categories is what makes the whole run
// reproducible.
type Pipeline struct {
	cfg     *Config
	sampler *stratify.Sampler
	logger  types.Logger
	metrics types.MetricsCollector
	load    LoadFunc
	dryRun  bool
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Categories holds each category's sampled reviews. Categories that
	// yielded no data are present with an empty slice.
	Categories map[string][]*Review

	// Merged is the concatenation of all category samples, reshuffled.
	Merged []*Review

	// Summary describes the run for reporting.
	Summary Summary
}

// New creates a Pipeline from the given run configuration.
//
// Parameters:
//   - cfg: Run configuration (validated here)
//   - opts: Optional logger, metrics, loader, dry-run flag
//
// Returns:
//   - *Pipeline: Initialized pipeline
//   - error: Configuration validation failure
func New(cfg *Config, opts ...Option) (*Pipeline, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{cfg: cfg, load: loadFromFile}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.NewNop()
	}

	samplerOpts := []stratify.Option{stratify.WithLogger(p.logger)}
	if p.metrics != nil {
		samplerOpts = append(samplerOpts, stratify.WithMetrics(p.metrics))
	}

	sampler, err := stratify.NewSampler(cfg.samplerConfig(), samplerOpts...)
	if err != nil {
		return nil, err
	}
	p.sampler = sampler

	return p, nil
}

func loadFromFile(path string) (*LoadResult, error) {
	return LoadReviews(path)
}

// ProcessCategory loads, filters, and samples a single category.
//
// Reviews outside the target year are dropped before sampling. An empty
// year slice is not an error; the category simply contributes nothing.
//
// Parameters:
//   - name: Category label attached to every sampled review
//   - path: Review file path
//
// Returns:
//   - []*Review: Sampled reviews tagged with the category
//   - error: Load or sampling failure
func (p *Pipeline) ProcessCategory(name, path string) ([]*Review, error) {
	pool, err := p.loadYear(path)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", name, err)
	}

	p.logger.Info("processing category", "category", name, "year", p.cfg.TargetYear, "reviews", len(pool))
	if len(pool) == 0 {
		p.logger.Warn("no reviews in target year", "category", name, "year", p.cfg.TargetYear)

		return nil, nil
	}

	sampled, err := p.sampler.Sample(pool)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", name, err)
	}

	// Tag copies, not the loaded values: a LoadFunc may serve one pool to
	// several categories, and concurrent category runs must not race on it.
	out := make([]*Review, len(sampled))
	for i, rec := range sampled {
		review := *rec.(*Review)
		review.Category = name
		out[i] = &review
	}

	p.logger.Info("category sampled", "category", name, "sampled", len(out))

	return out, nil
}

// PlanCategory computes the quota plan of a single category without drawing.
//
// Parameters:
//   - name: Category label (for error context only)
//   - path: Review file path
//
// Returns:
//   - stratify.QuotaPlan: Cells and quotas over the year-filtered pool
//   - error: Load or allocation failure
func (p *Pipeline) PlanCategory(name, path string) (stratify.QuotaPlan, error) {
	pool, err := p.loadYear(path)
	if err != nil {
		return stratify.QuotaPlan{}, fmt.Errorf("category %s: %w", name, err)
	}

	return p.sampler.Plan(pool)
}

// loadYear loads a review file and keeps only the target year.
func (p *Pipeline) loadYear(path string) ([]types.Record, error) {
	loaded, err := p.load(path)
	if err != nil {
		return nil, err
	}
	if loaded.SkippedRows > 0 {
		p.logger.Warn("skipped malformed rows", "path", path, "rows", loaded.SkippedRows)
	}

	pool := make([]types.Record, 0, len(loaded.Reviews))
	for _, r := range loaded.Reviews {
		if r.ReviewDate.Year() == p.cfg.TargetYear {
			pool = append(pool, r)
		}
	}

	return pool, nil
}

// Run processes every configured category, merges the samples, and writes
// the output files (unless dry-run).
//
// Categories are independent sampling runs and execute concurrently; no
// state is shared between them beyond the stateless sampler. The first
// category error aborts the run.
//
// Returns:
//   - *Result: Per-category samples, merged dataset, and run summary
//   - error: First category failure or output write failure
func (p *Pipeline) Run() (*Result, error) {
	names := make([]string, 0, len(p.cfg.Categories))
	for name := range p.cfg.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	samples := xsync.NewMap[string, []*Review]()
	failures := xsync.NewMap[string, error]()

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name, path string) {
			defer wg.Done()
			sampled, err := p.ProcessCategory(name, path)
			if err != nil {
				failures.Store(name, err)

				return
			}
			samples.Store(name, sampled)
		}(name, p.cfg.Categories[name])
	}
	wg.Wait()

	for _, name := range names {
		if err, ok := failures.Load(name); ok {
			return nil, err
		}
	}

	result := &Result{Categories: make(map[string][]*Review, len(names))}
	for _, name := range names {
		sampled, _ := samples.Load(name)
		result.Categories[name] = sampled
		result.Merged = append(result.Merged, sampled...)
	}

	// One reshuffle so the merged dataset carries no category ordering.
	draw.Shuffle(result.Merged, draw.NewSource(p.cfg.Seed))
	result.Summary = Summarize(result.Categories, p.cfg.samplerConfig().Buckets)

	p.logger.Info("merged categories",
		"categories", len(names),
		"total", len(result.Merged),
	)

	if p.dryRun {
		return result, nil
	}

	for _, name := range names {
		if len(result.Categories[name]) == 0 {
			continue
		}
		path := filepath.Join(p.cfg.OutputDir, name+".csv")
		if err := WriteCSV(path, result.Categories[name]); err != nil {
			return nil, fmt.Errorf("write category %s: %w", name, err)
		}
		p.logger.Info("category written", "category", name, "path", path)
	}

	if len(result.Merged) > 0 {
		if err := WriteCSV(p.cfg.MergedOutput, result.Merged); err != nil {
			return nil, fmt.Errorf("write merged dataset: %w", err)
		}
		p.logger.Info("merged dataset written", "path", p.cfg.MergedOutput)
	}

	return result, nil
}
