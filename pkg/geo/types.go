// Package geo provides the spherical coordinate model and great-circle
// distance used by the most-distant-point search.
//
// Points are stored in radians; degrees appear only at the construction and
// accessor boundary. Latitude is expected in [-π/2, π/2] and longitude in
// [-π, π], but neither range is enforced here: callers that accept untrusted
// input validate it themselves (see Location.Valid).
package geo

import (
	"fmt"
	"iter"
	"math"

	"github.com/golang/geo/s1"
)

// EarthRadiusKm is the mean radius of Earth in kilometers.
const EarthRadiusKm = 6371.0

// Point is an immutable location on the sphere.
//
// Two points are equal when both fields are exactly equal, so the == operator
// is the intended comparison.
type Point struct {
	lat  float64 // radians
	long float64 // radians
}

// FromDegrees creates a point from latitude and longitude in degrees.
// Out-of-range values are converted as given.
func FromDegrees(lat, long float64) Point {
	return Point{
		lat:  (s1.Angle(lat) * s1.Degree).Radians(),
		long: (s1.Angle(long) * s1.Degree).Radians(),
	}
}

// FromRadians creates a point from latitude and longitude in radians.
func FromRadians(lat, long float64) Point {
	return Point{lat: lat, long: long}
}

// Lat returns the latitude in radians.
func (p Point) Lat() float64 { return p.lat }

// Long returns the longitude in radians.
func (p Point) Long() float64 { return p.long }

// LatDegrees returns the latitude in degrees.
func (p Point) LatDegrees() float64 {
	return s1.Angle(p.lat).Degrees()
}

// LongDegrees returns the longitude in degrees.
func (p Point) LongDegrees() float64 {
	return s1.Angle(p.long).Degrees()
}

// String formats the point in degrees.
func (p Point) String() string {
	return fmt.Sprintf("(%f,%f)", p.LatDegrees(), p.LongDegrees())
}

// Normalized folds a latitude that crossed a pole back into [-π/2, π/2],
// moving to the opposite meridian, and wraps longitude to [-π, π].
func (p Point) Normalized() Point {
	lat, long := p.lat, p.long
	switch {
	case lat > math.Pi/2:
		lat, long = math.Pi-lat, long+math.Pi
	case lat < -math.Pi/2:
		lat, long = -math.Pi-lat, long+math.Pi
	}
	return Point{lat: lat, long: math.Atan2(math.Sin(long), math.Cos(long))}
}

// Optimize precomputes the sines and cosines of both angles.
func (p Point) Optimize() OptimizedPoint {
	sinLat, cosLat := math.Sincos(p.lat)
	sinLong, cosLong := math.Sincos(p.long)
	return OptimizedPoint{
		SinLat:  sinLat,
		CosLat:  cosLat,
		SinLong: sinLong,
		CosLong: cosLong,
	}
}

// OptimizedPoint holds the trigonometric components of a Point so that it can
// take part in many distance evaluations without recomputing them.
type OptimizedPoint struct {
	SinLat  float64
	CosLat  float64
	SinLong float64
	CosLong float64
}

// Point recovers the angles with atan2, which is correct in every quadrant.
// At the poles the longitude is whatever the stored components encode.
func (o OptimizedPoint) Point() Point {
	return Point{
		lat:  math.Atan2(o.SinLat, o.CosLat),
		long: math.Atan2(o.SinLong, o.CosLong),
	}
}

// Points is the ordered input set whose isolation is measured.
// It only grows; searches read it and never modify it.
type Points []Point

// Push appends a point.
func (ps *Points) Push(p Point) {
	*ps = append(*ps, p)
}

// Len returns the number of points.
func (ps Points) Len() int { return len(ps) }

// All iterates the points in insertion order.
func (ps Points) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range ps {
			if !yield(p) {
				return
			}
		}
	}
}

// Optimized converts every point once, for use on the hot path.
func (ps Points) Optimized() []OptimizedPoint {
	out := make([]OptimizedPoint, len(ps))
	for i, p := range ps {
		out[i] = p.Optimize()
	}
	return out
}
