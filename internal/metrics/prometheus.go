package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/alanchen34/stratify/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Gauges carry the last run's snapshot values (pool sizes, cell count,
// target vs realized); counters accumulate across runs (exclusions, drawn
// records); durations feed a histogram. One collector may be shared by
// samplers running in parallel goroutines.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	poolTotal     prometheus.Gauge
	poolEligible  prometheus.Gauge
	exclusions    *prometheus.CounterVec
	cellCount     prometheus.Gauge
	quotaTarget   prometheus.Gauge
	quotaRealized prometheus.Gauge
	sampleSize    prometheus.Gauge
	drawnTotal    prometheus.Counter
	duration      prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "stratify" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "stratify"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.poolTotal = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "sampler",
			Name:      "pool_records",
			Help:      "Input pool size of the last sampling run.",
		})
		p.poolEligible = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "sampler",
			Name:      "eligible_records",
			Help:      "Eligible pool size of the last sampling run after exclusion.",
		})
		p.exclusions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "sampler",
			Name:      "excluded_records_total",
			Help:      "Total records excluded from stratification by reason.",
		}, []string{"reason"})
		p.cellCount = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "sampler",
			Name:      "cells",
			Help:      "Number of populated strata in the last sampling run.",
		})
		p.quotaTarget = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "sampler",
			Name:      "quota_target",
			Help:      "Requested sample total of the last run.",
		})
		p.quotaRealized = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "sampler",
			Name:      "quota_realized",
			Help:      "Realized quota total of the last run (below target only for an unsatisfiable pool).",
		})
		p.sampleSize = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "sampler",
			Name:      "sample_records",
			Help:      "Size of the last returned dataset.",
		})
		p.drawnTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "sampler",
			Name:      "drawn_records_total",
			Help:      "Total records drawn across all sampling runs.",
		})
		p.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "sampler",
			Name:      "run_duration_seconds",
			Help:      "Wall time of Sample calls in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~4s
		})

		p.reg.MustRegister(
			p.poolTotal, p.poolEligible, p.exclusions, p.cellCount,
			p.quotaTarget, p.quotaRealized, p.sampleSize, p.drawnTotal, p.duration,
		)
	})
}

// RecordPoolSize records the input and eligible pool sizes of a run.
func (p *PrometheusCollector) RecordPoolSize(total, eligible int) {
	p.ensureRegistered()
	p.poolTotal.Set(float64(total))
	p.poolEligible.Set(float64(eligible))
}

// RecordExclusion counts one excluded record by reason.
func (p *PrometheusCollector) RecordExclusion(reason string) {
	p.ensureRegistered()
	p.exclusions.WithLabelValues(reason).Inc()
}

// RecordCellCount records the number of populated strata of a run.
func (p *PrometheusCollector) RecordCellCount(count int) {
	p.ensureRegistered()
	p.cellCount.Set(float64(count))
}

// RecordAllocation records the requested and realized quota totals of a run.
func (p *PrometheusCollector) RecordAllocation(target, realized int) {
	p.ensureRegistered()
	p.quotaTarget.Set(float64(target))
	p.quotaRealized.Set(float64(realized))
}

// RecordSampleSize records the returned dataset size of a run.
func (p *PrometheusCollector) RecordSampleSize(count int) {
	p.ensureRegistered()
	p.sampleSize.Set(float64(count))
	p.drawnTotal.Add(float64(count))
}

// RecordSampleDuration records the wall time of one Sample call in seconds.
func (p *PrometheusCollector) RecordSampleDuration(seconds float64) {
	p.ensureRegistered()
	p.duration.Observe(seconds)
}
