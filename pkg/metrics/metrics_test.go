package metrics_test

import (
	"testing"
	"time"

	"github.com/NERVsystems/remotepoint/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	m.SearchDone("success")
	m.SearchDone("success")
	m.SearchDone("error")
	m.Evaluated(10)
	m.Evaluated(5)
	m.CacheLookup(true)
	m.CacheLookup(false)
	m.CacheLookup(false)
	m.Retained(3)
	m.ObservePhase(metrics.PhaseCoarse, time.Now())

	assert.InDelta(t, 2, testutil.ToFloat64(m.Searches.WithLabelValues("success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Searches.WithLabelValues("error")), 0)
	assert.InDelta(t, 15, testutil.ToFloat64(m.CandidatesEvaluated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "remotepoint_search_duration_seconds")
	assert.Contains(t, names, "remotepoint_seeds_retained")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.SearchDone("success")
		m.Evaluated(1)
		m.Retained(1)
		m.CacheLookup(true)
		m.ObservePhase(metrics.PhaseTotal, time.Now())
	})
}
