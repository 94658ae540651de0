// Package metrics provides the built-in MetricsCollector implementations.
package metrics

import "github.com/alanchen34/stratify/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	sampler, err := stratify.NewSampler(cfg, stratify.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordPoolSize discards the pool size metric.
func (n *NopMetrics) RecordPoolSize(_ /* total */, _ /* eligible */ int) {
	// No-op
}

// RecordExclusion discards the exclusion counter.
func (n *NopMetrics) RecordExclusion(_ /* reason */ string) {
	// No-op
}

// RecordCellCount discards the cell count metric.
func (n *NopMetrics) RecordCellCount(_ /* count */ int) {
	// No-op
}

// RecordAllocation discards the allocation metric.
func (n *NopMetrics) RecordAllocation(_ /* target */, _ /* realized */ int) {
	// No-op
}

// RecordSampleSize discards the sample size metric.
func (n *NopMetrics) RecordSampleSize(_ /* count */ int) {
	// No-op
}

// RecordSampleDuration discards the sample duration metric.
func (n *NopMetrics) RecordSampleDuration(_ /* seconds */ float64) {
	// No-op
}
