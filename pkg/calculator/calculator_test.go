package calculator

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/NERVsystems/remotepoint/pkg/search"
	"github.com/NERVsystems/remotepoint/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// antipodeFinder answers with the antipode of the first input, which is cheap
// and easy to check.
type antipodeFinder struct {
	calls int
	err   error
}

func (f *antipodeFinder) MostDistant(_ context.Context, points geo.Points) (search.Result, error) {
	f.calls++
	if f.err != nil {
		return search.Result{}, f.err
	}
	if points.Len() == 0 {
		return search.Result{}, search.ErrNoPoints
	}
	p := points[0]
	return search.Result{
		Point:     geo.FromRadians(-p.Lat(), p.Long()+math.Pi).Optimize().Point(),
		Isolation: geo.EarthRadiusKm * math.Pi,
	}, nil
}

type update struct {
	inputs []geo.Location
	output *geo.Location
}

func TestCalculatorAddRemove(t *testing.T) {
	finder := &antipodeFinder{}
	c := New(finder, testutil.DiscardLogger())

	var updates []update
	c.Subscribe(func(inputs []geo.Location, output *geo.Location) {
		updates = append(updates, update{inputs, output})
	})
	require.Len(t, updates, 1)
	assert.Empty(t, updates[0].inputs)
	assert.Nil(t, updates[0].output)

	a := geo.Location{Latitude: 10, Longitude: 20}
	b := geo.Location{Latitude: -5, Longitude: 60}

	out, err := c.Add(t.Context(), a)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.InDelta(t, -10, out.Latitude, 1e-9)
	assert.InDelta(t, -160, out.Longitude, 1e-9)

	_, err = c.Add(t.Context(), b)
	require.NoError(t, err)
	assert.Equal(t, []geo.Location{a, b}, c.Inputs())

	// Re-adding an existing input moves it to the end instead of duplicating.
	_, err = c.Add(t.Context(), a)
	require.NoError(t, err)
	assert.Equal(t, []geo.Location{b, a}, c.Inputs())

	_, err = c.Remove(t.Context(), b)
	require.NoError(t, err)
	assert.Equal(t, []geo.Location{a}, c.Inputs())

	out, err = c.Remove(t.Context(), a)
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Empty(t, c.Inputs())

	got, isolation := c.Output()
	assert.Nil(t, got)
	assert.Zero(t, isolation)

	assert.Len(t, updates, 6)
	assert.Nil(t, updates[5].output)
	assert.Equal(t, 5, finder.calls)
}

func TestCalculatorOutput(t *testing.T) {
	c := New(&antipodeFinder{}, nil)
	_, err := c.Add(t.Context(), geo.Location{Latitude: 0, Longitude: 0})
	require.NoError(t, err)

	out, isolation := c.Output()
	require.NotNil(t, out)
	assert.InDelta(t, 180, math.Abs(out.Longitude), 1e-9)
	assert.InDelta(t, geo.EarthRadiusKm*math.Pi, isolation, 1e-9)
}

func TestCalculatorSearchErrorKeepsState(t *testing.T) {
	finder := &antipodeFinder{}
	c := New(finder, testutil.DiscardLogger())

	a := geo.Location{Latitude: 1, Longitude: 1}
	_, err := c.Add(t.Context(), a)
	require.NoError(t, err)

	finder.err = errors.New("boom")
	_, err = c.Add(t.Context(), geo.Location{Latitude: 2, Longitude: 2})
	require.Error(t, err)
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, []geo.Location{a}, c.Inputs())
}

func TestCalculatorUnsubscribe(t *testing.T) {
	c := New(&antipodeFinder{}, testutil.DiscardLogger())

	calls := 0
	id := c.Subscribe(func([]geo.Location, *geo.Location) { calls++ })
	assert.True(t, c.Unsubscribe(id))
	assert.False(t, c.Unsubscribe(id))

	_, err := c.Add(t.Context(), geo.Location{Latitude: 3, Longitude: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
