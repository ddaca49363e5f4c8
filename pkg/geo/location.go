package geo

// Location is the degree-based form of a point used at JSON boundaries.
//
// Example:
//
//	loc := geo.Location{Latitude: 37.7749, Longitude: -122.4194}
//	p := loc.Point()
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the location to a Point.
func (l Location) Point() Point {
	return FromDegrees(l.Latitude, l.Longitude)
}

// Valid reports whether the location lies in the canonical ranges
// latitude [-90, 90] and longitude [-180, 180].
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// LocationOf converts a point back to degrees.
func LocationOf(p Point) Location {
	return Location{Latitude: p.LatDegrees(), Longitude: p.LongDegrees()}
}

// PointsOf converts locations to an input set, preserving order.
func PointsOf(locs []Location) Points {
	ps := make(Points, 0, len(locs))
	for _, l := range locs {
		ps.Push(l.Point())
	}
	return ps
}
