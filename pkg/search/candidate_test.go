package search

import (
	"math"
	"testing"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weighted(lat, long, weight float64) WeightedPoint {
	return WeightedPoint{Point: geo.FromRadians(lat, long), Weight: weight}
}

func weights(ws []WeightedPoint) []float64 {
	out := make([]float64, len(ws))
	for i, w := range ws {
		out[i] = w.Weight
	}
	return out
}

func TestWeightedPointCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b WeightedPoint
		want int
	}{
		{"Weight decides", weighted(0, 0, 2), weighted(1, 1, 1), 1},
		{"Latitude breaks ties", weighted(0.1, 0, 1), weighted(0.2, 0, 1), -1},
		{"Longitude breaks ties", weighted(0, 0.3, 1), weighted(0, 0.2, 1), 1},
		{"Identical", weighted(0.5, 0.5, 3), weighted(0.5, 0.5, 3), 0},
		{"NaN sorts lowest", weighted(0, 0, math.NaN()), weighted(0, 0, math.Inf(-1)), -1},
		{"NaN equals NaN", weighted(0, 0, math.NaN()), weighted(0, 0, math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
		})
	}
}

func TestRetainerBand(t *testing.T) {
	r := NewRetainer(1)
	for i, w := range []float64{3, 5, 5, 4} {
		r.Offer(weighted(float64(i)*0.1, 0, w))
	}

	got, err := r.Drain()
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 4}, weights(got))

	// Equal weights come out by descending latitude.
	assert.Greater(t, got[0].Point.Lat(), got[1].Point.Lat())
	assert.Equal(t, 0, r.Len())
}

func TestRetainerBandDropsFarBelowBest(t *testing.T) {
	r := NewRetainer(1)
	assert.True(t, r.Offer(weighted(0, 0, 10)))
	assert.False(t, r.Offer(weighted(0, 1, 8.5)))
	assert.True(t, r.Offer(weighted(0, 2, 9)))

	// Stored before a better one arrived, then filtered out at drain time.
	r2 := NewRetainer(1)
	r2.Offer(weighted(0, 0, 1))
	r2.Offer(weighted(0, 1, 10))
	got, err := r2.Drain()
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, weights(got))
}

func TestRetainerExact(t *testing.T) {
	r := NewRetainer(0)

	assert.True(t, r.Offer(weighted(0, 0, 2)))
	assert.False(t, r.Offer(weighted(0, 1, 2)), "ties with the best are skipped")
	assert.False(t, r.Offer(weighted(0, 2, 1)))
	assert.True(t, r.Offer(weighted(0, 3, 7)))
	assert.Equal(t, 2, r.Len())

	got, err := r.Drain()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, weighted(0, 3, 7), got[0])
}

func TestRetainerExactKeepsFirstOfTies(t *testing.T) {
	r := NewRetainer(0)
	r.Offer(weighted(0.1, 0, 5))
	r.Offer(weighted(0.9, 0, 5))

	got, err := r.Drain()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.1, got[0].Point.Lat(), 0)
}

func TestRetainerDrainEmpty(t *testing.T) {
	r := NewRetainer(1)

	got, err := r.Drain()
	require.ErrorIs(t, err, ErrNoCandidates)
	assert.Nil(t, got)

	_, ok := r.Best()
	assert.False(t, ok)
}

func TestRetainerReusableAfterDrain(t *testing.T) {
	r := NewRetainer(0)
	r.Offer(weighted(0, 0, 3))
	_, err := r.Drain()
	require.NoError(t, err)

	r.Offer(weighted(0, 0, 1))
	got, err := r.Drain()
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, weights(got))
}
