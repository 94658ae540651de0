package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNopMetrics(t *testing.T) {
	n := NewNop()

	// All methods must be safe to call and discard their input.
	require.NotPanics(t, func() {
		n.RecordPoolSize(100, 80)
		n.RecordExclusion("too_short")
		n.RecordCellCount(12)
		n.RecordAllocation(400, 397)
		n.RecordSampleSize(397)
		n.RecordSampleDuration(0.02)
	})
}

func TestPrometheusCollector(t *testing.T) {
	t.Run("registers lazily and records without panic", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "test")

		require.NotPanics(t, func() {
			p.RecordPoolSize(100, 80)
			p.RecordExclusion("no_date")
			p.RecordCellCount(12)
			p.RecordAllocation(400, 397)
			p.RecordSampleSize(397)
			p.RecordSampleDuration(0.02)
		})

		families, err := reg.Gather()
		require.NoError(t, err)
		require.NotEmpty(t, families)

		names := make(map[string]struct{}, len(families))
		for _, f := range families {
			names[f.GetName()] = struct{}{}
		}
		require.Contains(t, names, "test_sampler_eligible_records")
		require.Contains(t, names, "test_sampler_excluded_records_total")
		require.Contains(t, names, "test_sampler_quota_realized")
	})

	t.Run("repeated calls register once", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "")

		require.NotPanics(t, func() {
			p.RecordSampleSize(1)
			p.RecordSampleSize(2)
		})
	})
}
