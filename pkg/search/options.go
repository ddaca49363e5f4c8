package search

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/NERVsystems/remotepoint/pkg/metrics"
)

// Option configures a Searcher.
type Option func(*Searcher) error

// WithRadius sets the sphere radius. Distances and the coarse retention
// allowance scale with it; the selected point does not change.
func WithRadius(radius float64) Option {
	return func(s *Searcher) error {
		if radius <= 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
			return fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
		}
		s.radius = radius
		return nil
	}
}

// WithWorkers bounds the number of goroutines used to score the coarse grid
// and to refine seeds. Values below 1 mean one worker.
func WithWorkers(n int) Option {
	return func(s *Searcher) error {
		s.workers = max(n, 1)
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// WithMetrics records search metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Searcher) error {
		s.metrics = m
		return nil
	}
}

func defaultSearcher() *Searcher {
	return &Searcher{
		radius:  geo.EarthRadiusKm,
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
	}
}
