package types

// MetricsCollector receives observability signals from the sampler.
//
// Implementations must be safe for concurrent use: independent sampling runs
// may execute in parallel goroutines and share one collector.
//
// The library ships two implementations:
//   - internal/metrics.NewNop: discards everything (default)
//   - internal/metrics.NewPrometheus: Prometheus-backed collector
type MetricsCollector interface {
	// RecordPoolSize records the input pool size and the eligible subset
	// that survived exclusion for one run.
	RecordPoolSize(total, eligible int)

	// RecordExclusion counts one excluded record by reason
	// ("too_short", "no_date", "bad_rating").
	RecordExclusion(reason string)

	// RecordCellCount records the number of populated strata in one run.
	RecordCellCount(count int)

	// RecordAllocation records the requested target and the realized quota
	// total of one run. realized < target only for an unsatisfiable pool.
	RecordAllocation(target, realized int)

	// RecordSampleSize records the size of the returned dataset.
	RecordSampleSize(count int)

	// RecordSampleDuration records the wall time of one Sample call in seconds.
	RecordSampleDuration(seconds float64)
}
