// Package cache keeps recent search results so that repeated requests for the
// same input set do not rerun the grid search.
package cache

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/NERVsystems/remotepoint/pkg/metrics"
	"github.com/NERVsystems/remotepoint/pkg/search"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ResultCache is a thread-safe, size-bounded cache of search results with
// time-based expiration. Keys are independent of input order because the
// search result is.
type ResultCache struct {
	lru     *expirable.LRU[string, search.Result]
	metrics *metrics.Metrics
}

// New creates a cache holding at most size results for ttl each.
// A size of 0 means unbounded and a ttl of 0 means results never expire.
func New(size int, ttl time.Duration, m *metrics.Metrics) *ResultCache {
	return &ResultCache{
		lru:     expirable.NewLRU[string, search.Result](size, nil, ttl),
		metrics: m,
	}
}

// Get returns the cached result for points, if present and not expired.
func (c *ResultCache) Get(points geo.Points) (search.Result, bool) {
	res, ok := c.lru.Get(Key(points))
	c.metrics.CacheLookup(ok)
	return res, ok
}

// Add stores the result for points.
func (c *ResultCache) Add(points geo.Points, res search.Result) {
	c.lru.Add(Key(points), res)
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	return c.lru.Len()
}

// Purge removes every cached result.
func (c *ResultCache) Purge() {
	c.lru.Purge()
}

// Key returns the canonical form of an input set: the exact bit patterns of
// every point, sorted.
func Key(points geo.Points) string {
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b geo.Point) int {
		if c := cmp.Compare(a.Lat(), b.Lat()); c != 0 {
			return c
		}
		return cmp.Compare(a.Long(), b.Long())
	})

	var sb strings.Builder
	for i, p := range sorted {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.FormatUint(math.Float64bits(p.Lat()), 16))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatUint(math.Float64bits(p.Long()), 16))
	}
	return sb.String()
}
