package cache

import (
	"testing"
	"time"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/NERVsystems/remotepoint/pkg/metrics"
	"github.com/NERVsystems/remotepoint/pkg/search"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIgnoresOrder(t *testing.T) {
	a := geo.Points{geo.FromDegrees(1, 2), geo.FromDegrees(3, 4), geo.FromDegrees(-1, 9)}
	b := geo.Points{a[2], a[0], a[1]}

	assert.Equal(t, Key(a), Key(b))
	assert.NotEqual(t, Key(a), Key(a[:2]))
	assert.NotEqual(t, Key(geo.Points{geo.FromDegrees(1, 2)}), Key(geo.Points{geo.FromDegrees(2, 1)}))

	// Sorting must not reorder the caller's slice.
	assert.Equal(t, geo.FromDegrees(-1, 9), b[0])
}

func TestResultCache(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)
	c := New(2, time.Minute, m)

	p1 := geo.Points{geo.FromDegrees(0, 0)}
	p2 := geo.Points{geo.FromDegrees(10, 10)}
	p3 := geo.Points{geo.FromDegrees(20, 20)}
	r1 := search.Result{Point: geo.FromDegrees(0, 180), Isolation: 1}

	_, ok := c.Get(p1)
	assert.False(t, ok)

	c.Add(p1, r1)
	got, ok := c.Get(p1)
	require.True(t, ok)
	assert.Equal(t, r1, got)

	c.Add(p2, search.Result{Isolation: 2})
	c.Add(p3, search.Result{Isolation: 3})
	assert.Equal(t, 2, c.Len())
	_, ok = c.Get(p1)
	assert.False(t, ok, "least recently used entry should be evicted")

	assert.InDelta(t, 1, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")), 0)

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestResultCacheExpires(t *testing.T) {
	c := New(0, 20*time.Millisecond, nil)
	points := geo.Points{geo.FromDegrees(5, 5)}

	c.Add(points, search.Result{Isolation: 1})
	_, ok := c.Get(points)
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := c.Get(points)
		return !ok
	}, time.Second, 10*time.Millisecond)
}
