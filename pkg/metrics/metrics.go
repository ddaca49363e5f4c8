// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search phases used as the "phase" label.
const (
	PhaseCoarse = "coarse"
	PhaseFine   = "fine"
	PhaseTotal  = "total"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Searches            *prometheus.CounterVec
	SearchSeconds       *prometheus.HistogramVec
	SeedsRetained       prometheus.Histogram
	CandidatesEvaluated prometheus.Counter
	CacheLookups        *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. Passing
// prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Searches: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "remotepoint_searches_total",
			Help: "Total number of most-distant-point searches by outcome.",
		}, []string{"status"}),
		SearchSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "remotepoint_search_duration_seconds",
			Help:    "Duration of each search phase.",
			Buckets: prometheus.DefBuckets,
		}, []string{"phase"}),
		SeedsRetained: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "remotepoint_seeds_retained",
			Help:    "Number of coarse candidates retained for refinement.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		CandidatesEvaluated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "remotepoint_candidates_evaluated_total",
			Help: "Total number of grid candidates scored against the input set.",
		}),
		CacheLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "remotepoint_cache_lookups_total",
			Help: "Result cache lookups by result (hit, miss).",
		}, []string{"result"}),
	}
}

// ObservePhase records the duration of a search phase started at start.
func (m *Metrics) ObservePhase(phase string, start time.Time) {
	if m == nil {
		return
	}
	m.SearchSeconds.WithLabelValues(phase).Observe(time.Since(start).Seconds())
}

// SearchDone counts a finished search with the given status.
func (m *Metrics) SearchDone(status string) {
	if m == nil {
		return
	}
	m.Searches.WithLabelValues(status).Inc()
}

// Evaluated adds n scored candidates.
func (m *Metrics) Evaluated(n int) {
	if m == nil {
		return
	}
	m.CandidatesEvaluated.Add(float64(n))
}

// Retained records the size of a coarse seed set.
func (m *Metrics) Retained(n int) {
	if m == nil {
		return
	}
	m.SeedsRetained.Observe(float64(n))
}

// CacheLookup counts a cache hit or miss.
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
