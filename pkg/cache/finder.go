package cache

import (
	"context"
	"slices"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/NERVsystems/remotepoint/pkg/search"
)

// Finder answers queries from the cache and falls back to next on a miss.
// Only complete results are cached.
type Finder struct {
	cache *ResultCache
	next  search.Finder
}

// NewFinder wraps next with cache.
func NewFinder(cache *ResultCache, next search.Finder) *Finder {
	return &Finder{cache: cache, next: next}
}

// MostDistant implements search.Finder.
func (f *Finder) MostDistant(ctx context.Context, points geo.Points) (search.Result, error) {
	res, _, err := f.Lookup(ctx, points)
	return res, err
}

// Lookup is MostDistant that also reports whether the result was cached.
func (f *Finder) Lookup(ctx context.Context, points geo.Points) (search.Result, bool, error) {
	if points.Len() == 0 {
		return search.Result{}, false, search.ErrNoPoints
	}
	if res, ok := f.cache.Get(points); ok {
		res.Seeds = slices.Clone(res.Seeds)
		return res, true, nil
	}

	res, err := f.next.MostDistant(ctx, points)
	if err != nil {
		return res, false, err
	}
	stored := res
	stored.Seeds = slices.Clone(res.Seeds)
	f.cache.Add(points, stored)
	return res, false, nil
}
