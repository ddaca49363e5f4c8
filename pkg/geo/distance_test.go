package geo

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/golang/geo/s2"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
	}{
		{"Short distance - SF downtown to Market St", 37.7749, -122.4194, 37.7734, -122.4167},
		{"Medium distance - SF to Oakland", 37.7749, -122.4194, 37.8044, -122.2712},
		{"Long distance - SF to NYC", 37.7749, -122.4194, 40.7128, -74.0060},
		{"Across the date line", 10, 179, -10, -179},
		{"Quarter circle", 0, 0, 0, 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DistanceBetween(FromDegrees(tc.lat1, tc.lon1), FromDegrees(tc.lat2, tc.lon2))

			// s2 uses a haversine-style formula, so it is an independent check.
			angle := s2.LatLngFromDegrees(tc.lat1, tc.lon1).Distance(s2.LatLngFromDegrees(tc.lat2, tc.lon2))
			want := angle.Radians() * EarthRadiusKm

			if math.Abs(got-want) > 1e-3 {
				t.Errorf("DistanceBetween = %f km, want %f km", got, want)
			}
		})
	}
}

func TestDistanceIdentical(t *testing.T) {
	for _, loc := range []Location{{0, 0}, {37.7749, -122.4194}, {90, 0}, {-45.5, 179.9}} {
		p := loc.Point().Optimize()
		if d := Distance(p, p); d != 0 {
			t.Errorf("Distance(p, p) for %v = %v, want 0", loc, d)
		}
	}

	r := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		loc := Location{Latitude: r.Float64()*180 - 90, Longitude: r.Float64()*360 - 180}
		if d := DistanceBetween(loc.Point(), loc.Point()); d != 0 {
			t.Fatalf("DistanceBetween(p, p) for %v = %v, want 0", loc, d)
		}
	}
}

func TestDistanceAntipodal(t *testing.T) {
	for _, loc := range []Location{{0, 0}, {37.7749, -122.4194}, {-12.5, 33}, {89, 10}} {
		a := loc.Point()
		b := FromRadians(-a.Lat(), a.Long()+math.Pi)
		d := Distance(a.Optimize(), b.Optimize())
		if math.IsNaN(d) || math.Abs(d-EarthRadiusKm*math.Pi) > 1e-3 {
			t.Errorf("antipodal distance for %v = %v, want %v", loc, d, EarthRadiusKm*math.Pi)
		}
	}
}

func TestDistanceSymmetric(t *testing.T) {
	locs := []Location{{0, 0}, {10, 5}, {-33.8688, 151.2093}, {64.1, -21.9}, {-90, 0}}
	for _, a := range locs {
		for _, b := range locs {
			ab := Distance(a.Point().Optimize(), b.Point().Optimize())
			ba := Distance(b.Point().Optimize(), a.Point().Optimize())
			if ab != ba {
				t.Errorf("Distance(%v, %v) = %v but reversed = %v", a, b, ab, ba)
			}
		}
	}
}

func TestDistanceOnScalesWithRadius(t *testing.T) {
	a := FromDegrees(0, 0).Optimize()
	b := FromDegrees(0, 90).Optimize()
	if got, want := DistanceOn(1, a, b), math.Pi/2; math.Abs(got-want) > 1e-12 {
		t.Errorf("DistanceOn(1) = %v, want %v", got, want)
	}
	if got, want := DistanceOn(2*EarthRadiusKm, a, b), 2*Distance(a, b); math.Abs(got-want) > 1e-9 {
		t.Errorf("DistanceOn(2R) = %v, want %v", got, want)
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		loc   Location
		valid bool
	}{
		{Location{0, 0}, true},
		{Location{90, 180}, true},
		{Location{-90, -180}, true},
		{Location{90.1, 0}, false},
		{Location{0, -180.5}, false},
		{Location{math.NaN(), 0}, false},
	}
	for _, tc := range tests {
		if got := tc.loc.Valid(); got != tc.valid {
			t.Errorf("%v.Valid() = %v, want %v", tc.loc, got, tc.valid)
		}
	}

	loc := Location{Latitude: 12.5, Longitude: -45.25}
	back := LocationOf(loc.Point())
	if math.Abs(back.Latitude-loc.Latitude) > 1e-12 || math.Abs(back.Longitude-loc.Longitude) > 1e-12 {
		t.Errorf("LocationOf(Point()) = %v, want %v", back, loc)
	}

	ps := PointsOf([]Location{{1, 2}, {3, 4}})
	if ps.Len() != 2 || ps[1] != FromDegrees(3, 4) {
		t.Errorf("PointsOf = %v", ps)
	}
}
