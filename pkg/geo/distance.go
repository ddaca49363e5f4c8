package geo

import "math"

// CentralAngle returns the angle in radians subtended at the centre of the
// sphere by two points, using the spherical law of cosines. The cosine of the
// longitude difference is expanded with the angle-sum identity so that only
// the precomputed components are needed.
//
// Rounding can push the arccos argument just outside [-1, 1] for identical or
// antipodal points; it is clamped so the result is never NaN. Identical
// points are exactly 0 apart. Otherwise, near zero the result is only
// accurate to about sqrt(machine epsilon) radians, roughly 0.2 m on Earth.
func CentralAngle(a, b OptimizedPoint) float64 {
	if a == b {
		return 0
	}
	c := a.CosLat*b.CosLat*(a.CosLong*b.CosLong+a.SinLong*b.SinLong) + a.SinLat*b.SinLat
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// Distance returns the great-circle distance in kilometers on a sphere of
// radius EarthRadiusKm.
func Distance(a, b OptimizedPoint) float64 {
	return EarthRadiusKm * CentralAngle(a, b)
}

// DistanceOn returns the great-circle distance on a sphere of the given
// radius. The result is in the radius' unit.
func DistanceOn(radius float64, a, b OptimizedPoint) float64 {
	return radius * CentralAngle(a, b)
}

// DistanceBetween is a convenience for two plain points, in kilometers.
func DistanceBetween(a, b Point) float64 {
	return Distance(a.Optimize(), b.Optimize())
}
