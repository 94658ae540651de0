package stratify

// Option configures a Sampler with optional dependencies.
type Option func(*samplerOptions)

// samplerOptions holds optional Sampler configuration.
type samplerOptions struct {
	allocator    Allocator
	hooks        *Hooks
	metrics      MetricsCollector
	logger       Logger
	derivedSeeds bool
}

// WithAllocator sets a custom quota allocation strategy.
//
// The default is strategy.NewProportional().
//
// Parameters:
//   - allocator: Allocator implementation
//
// Returns:
//   - Option: Functional option for NewSampler
//
// Example:
//
//	sampler, err := stratify.NewSampler(cfg, stratify.WithAllocator(strategy.NewEqualShare()))
func WithAllocator(allocator Allocator) Option {
	return func(o *samplerOptions) {
		o.allocator = allocator
	}
}

// WithHooks sets sampling event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewSampler
//
// Example:
//
//	hooks := &stratify.Hooks{
//	    OnPlanComputed: func(plan stratify.QuotaPlan) error {
//	        return recordBreakdown(plan)
//	    },
//	}
//	sampler, err := stratify.NewSampler(cfg, stratify.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *samplerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewSampler
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "stratify")
//	sampler, err := stratify.NewSampler(cfg, stratify.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *samplerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewSampler
//
// Example:
//
//	sampler, err := stratify.NewSampler(cfg, stratify.WithLogger(logging.NewSlogDefault()))
func WithLogger(logger Logger) Option {
	return func(o *samplerOptions) {
		o.logger = logger
	}
}

// WithDerivedSeeds derives a distinct sub-seed per stratum instead of
// reusing the run seed for every per-cell draw.
//
// By default, the run seed seeds each per-cell draw and the final shuffle
// directly, so cells of equal size draw the same relative index pattern.
// With derived seeds, each cell's generator is seeded by hashing the stratum
// key with the run seed: still a pure function of the run seed, but draws no
// longer correlate across cells. The two modes produce different (each
// individually reproducible) outputs; pick one per dataset and keep it.
//
// Returns:
//   - Option: Functional option for NewSampler
func WithDerivedSeeds() Option {
	return func(o *samplerOptions) {
		o.derivedSeeds = true
	}
}
