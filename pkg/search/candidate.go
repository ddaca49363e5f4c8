package search

import (
	"cmp"
	"container/heap"

	"github.com/NERVsystems/remotepoint/pkg/geo"
)

// WeightedPoint is a candidate location paired with its isolation score, the
// distance to the nearest input point.
type WeightedPoint struct {
	Point  geo.Point
	Weight float64
}

// Compare orders candidates by weight, then latitude, then longitude. The
// float comparison is total: NaN sorts below every number, so the order is
// strict and reproducible even among equal weights.
func (w WeightedPoint) Compare(o WeightedPoint) int {
	if c := cmp.Compare(w.Weight, o.Weight); c != 0 {
		return c
	}
	if c := cmp.Compare(w.Point.Lat(), o.Point.Lat()); c != 0 {
		return c
	}
	return cmp.Compare(w.Point.Long(), o.Point.Long())
}

// candidateHeap implements heap.Interface as a max-heap under Compare.
type candidateHeap []WeightedPoint

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool { return h[i].Compare(h[j]) > 0 }

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is used by heap.Interface methods and should not be called directly.
func (h *candidateHeap) Push(x any) {
	*h = append(*h, x.(WeightedPoint))
}

// Pop is used by heap.Interface methods and should not be called directly.
func (h *candidateHeap) Pop() any {
	a := *h
	n := len(a)
	elem := a[n-1]
	*h = a[:n-1]
	return elem
}

// Retainer collects the candidates of one search pass and keeps those within
// allowance of the best weight seen.
//
// With allowance == 0 only a candidate strictly better than the current best
// is stored, which keeps the heap small while scanning a large grid. With
// allowance > 0 a candidate is dropped only when the current best exceeds it
// by more than allowance, so a band of near-best candidates survives grid
// quantization.
type Retainer struct {
	heap      candidateHeap
	allowance float64
}

// NewRetainer creates an empty retainer with the given allowance.
func NewRetainer(allowance float64) *Retainer {
	return &Retainer{allowance: allowance}
}

// Len returns the number of stored candidates.
func (r *Retainer) Len() int { return r.heap.Len() }

// Best returns the maximum candidate, if any.
func (r *Retainer) Best() (WeightedPoint, bool) {
	if r.heap.Len() == 0 {
		return WeightedPoint{}, false
	}
	return r.heap[0], true
}

// Offer considers a candidate and reports whether it was stored.
func (r *Retainer) Offer(c WeightedPoint) bool {
	if best, ok := r.Best(); ok && !r.admits(best.Weight, c.Weight) {
		return false
	}
	heap.Push(&r.heap, c)
	return true
}

func (r *Retainer) admits(best, weight float64) bool {
	if r.allowance > 0 {
		return best-weight <= r.allowance
	}
	return best < weight
}

// Drain empties the retainer and returns, in descending order, every
// candidate whose weight is at least the best weight minus the allowance.
// It returns ErrNoCandidates when nothing was offered.
func (r *Retainer) Drain() ([]WeightedPoint, error) {
	best, ok := r.Best()
	if !ok {
		return nil, ErrNoCandidates
	}
	threshold := best.Weight - r.allowance

	var out []WeightedPoint
	for r.heap.Len() > 0 {
		elem := heap.Pop(&r.heap).(WeightedPoint)
		if elem.Weight < threshold {
			break
		}
		out = append(out, elem)
	}
	r.heap = r.heap[:0]
	return out, nil
}
