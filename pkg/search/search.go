// Package search finds the point on a sphere that is farthest from every
// point of a given set: the location that maximizes the minimum great-circle
// distance to the set.
//
// The objective is approximated by a two-phase grid search. A coarse pass
// scores a 1° grid over the whole sphere and keeps every candidate within
// one grid cell's length of the best score. Each kept candidate then seeds a
// fine pass over a ±0.5° window at 0.01° resolution, and the best refined
// candidate wins. Several seeds are kept because grid quantization can hide
// the true optimum behind a neighbouring, slightly lower sample.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/NERVsystems/remotepoint/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	coarseLatSteps  = 180
	coarseLongSteps = 360
	fineSteps       = 100
	// fineHalfWidth is half a degree, in radians.
	fineHalfWidth = math.Pi / 360
)

var (
	// ErrNoPoints is returned when the input set is empty. Every candidate
	// would score +Inf, so there is no meaningful answer.
	ErrNoPoints = errors.New("no input points")

	// ErrNoCandidates is returned when draining a Retainer that was never
	// offered a candidate.
	ErrNoCandidates = errors.New("no candidates retained")

	// ErrInvalidRadius is returned for a non-positive or non-finite radius.
	ErrInvalidRadius = errors.New("radius must be positive and finite")
)

// Result is the outcome of a search.
type Result struct {
	// Point is the most distant location, normalized to the canonical ranges.
	Point geo.Point
	// Isolation is the distance from Point to the nearest input point, in
	// the searcher's radius unit.
	Isolation float64
	// Seeds are the coarse candidates that were refined, best first.
	Seeds []WeightedPoint
}

// Searcher runs most-distant-point searches. It is safe for concurrent use.
type Searcher struct {
	radius  float64
	workers int
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a Searcher. Without options it uses Earth's mean radius in
// kilometers and GOMAXPROCS workers.
func New(opts ...Option) (*Searcher, error) {
	s := defaultSearcher()
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Radius returns the sphere radius used for scoring.
func (s *Searcher) Radius() float64 { return s.radius }

// FindMostDistantPoint searches with the default configuration.
func FindMostDistantPoint(points geo.Points) (geo.Point, error) {
	res, err := defaultSearcher().MostDistant(context.Background(), points)
	if err != nil {
		return geo.Point{}, err
	}
	return res.Point, nil
}

// Isolation returns the distance from candidate to the nearest point of the
// set.
func (s *Searcher) Isolation(points geo.Points, candidate geo.Point) (float64, error) {
	if points.Len() == 0 {
		return 0, ErrNoPoints
	}
	return isolation(s.radius, points.Optimized(), candidate.Optimize()), nil
}

// MostDistant runs the coarse and fine phases over points.
//
// Cancellation is checked between grid rows and between seeds. When ctx is
// cancelled during refinement, the returned Result holds the best candidate
// found so far (a refined one if any seed finished, otherwise the best coarse
// seed) together with the wrapped context error.
func (s *Searcher) MostDistant(ctx context.Context, points geo.Points) (Result, error) {
	if points.Len() == 0 {
		s.metrics.SearchDone("empty")
		return Result{}, ErrNoPoints
	}

	start := time.Now()
	inputs := points.Optimized()

	seeds, err := s.scan(ctx, coarseGrid(), inputs, s.radius*math.Pi/180, s.workers)
	if err != nil {
		s.metrics.SearchDone("cancelled")
		return Result{}, fmt.Errorf("coarse search: %w", err)
	}
	s.metrics.ObservePhase(metrics.PhaseCoarse, start)
	s.metrics.Retained(len(seeds))
	s.logger.DebugContext(ctx, "coarse phase complete",
		"inputs", len(inputs),
		"seeds", len(seeds),
		"best_km", seeds[0].Weight)

	fineStart := time.Now()
	refined := make([]WeightedPoint, len(seeds))
	done := make([]bool, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, seed := range seeds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			best, err := s.scan(gctx, fineGrid(seed.Point.Lat(), seed.Point.Long()), inputs, 0, 1)
			if err != nil {
				return err
			}
			refined[i] = best[0]
			done[i] = true
			return nil
		})
	}
	waitErr := g.Wait()
	s.metrics.ObservePhase(metrics.PhaseFine, fineStart)

	// Reduce in seed order so that ties keep the earliest seed's result.
	best, found := WeightedPoint{}, false
	for i := range seeds {
		if !done[i] {
			continue
		}
		if !found || best.Weight < refined[i].Weight {
			best, found = refined[i], true
		}
	}
	if !found {
		best = seeds[0]
	}

	res := Result{
		Point:     best.Point.Normalized(),
		Isolation: best.Weight,
		Seeds:     seeds,
	}

	if waitErr != nil {
		s.metrics.SearchDone("cancelled")
		s.logger.WarnContext(ctx, "search cancelled during refinement", "error", waitErr)
		return res, fmt.Errorf("refine seeds: %w", waitErr)
	}

	s.metrics.ObservePhase(metrics.PhaseTotal, start)
	s.metrics.SearchDone("success")
	s.logger.DebugContext(ctx, "search complete",
		"lat", res.Point.LatDegrees(),
		"long", res.Point.LongDegrees(),
		"isolation_km", res.Isolation,
		"duration", time.Since(start))

	return res, nil
}

// scan scores every cell of g against inputs and returns the retained
// candidates, best first. Scores may be computed by several workers, but they
// are offered to the Retainer in enumeration order so the outcome does not
// depend on scheduling.
func (s *Searcher) scan(ctx context.Context, g Grid, inputs []geo.OptimizedPoint, allowance float64, workers int) ([]WeightedPoint, error) {
	lats, longs := g.Lat.Values(), g.Long.Values()

	sinLong := make([]float64, len(longs))
	cosLong := make([]float64, len(longs))
	for j, long := range longs {
		sinLong[j], cosLong[j] = math.Sincos(long)
	}

	scores := make([]float64, len(lats)*len(longs))
	scoreRow := func(i int) {
		sinLat, cosLat := math.Sincos(lats[i])
		row := scores[i*len(longs) : (i+1)*len(longs)]
		for j := range longs {
			row[j] = isolation(s.radius, inputs, geo.OptimizedPoint{
				SinLat:  sinLat,
				CosLat:  cosLat,
				SinLong: sinLong[j],
				CosLong: cosLong[j],
			})
		}
	}

	if workers <= 1 {
		for i := range lats {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			scoreRow(i)
		}
	} else {
		eg, ectx := errgroup.WithContext(ctx)
		eg.SetLimit(workers)
		for i := range lats {
			eg.Go(func() error {
				if err := ectx.Err(); err != nil {
					return err
				}
				scoreRow(i)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}
	s.metrics.Evaluated(len(scores))

	r := NewRetainer(allowance)
	for i, lat := range lats {
		for j, long := range longs {
			r.Offer(WeightedPoint{
				Point:  geo.FromRadians(lat, long),
				Weight: scores[i*len(longs)+j],
			})
		}
	}
	return r.Drain()
}

// isolation returns the minimum distance from c to any input, +Inf when there
// are none.
func isolation(radius float64, inputs []geo.OptimizedPoint, c geo.OptimizedPoint) float64 {
	best := math.Inf(1)
	for _, in := range inputs {
		if d := geo.DistanceOn(radius, in, c); d < best {
			best = d
		}
	}
	return best
}

func coarseGrid() Grid {
	return Grid{
		Lat:  NewRange(-math.Pi/2, math.Pi/2, coarseLatSteps),
		Long: NewRange(-math.Pi, math.Pi, coarseLongSteps),
	}
}

func fineGrid(lat, long float64) Grid {
	return Grid{
		Lat:  NewRange(lat-fineHalfWidth, lat+fineHalfWidth, fineSteps),
		Long: NewRange(long-fineHalfWidth, long+fineHalfWidth, fineSteps),
	}
}

// Finder is anything that can answer a most-distant-point query. *Searcher
// implements it; callers may wrap it, for example with a cache.
type Finder interface {
	MostDistant(ctx context.Context, points geo.Points) (Result, error)
}

var _ Finder = (*Searcher)(nil)
