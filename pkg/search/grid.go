package search

import "iter"

// Range is an inclusive, evenly spaced sequence of Steps+1 values from Lower
// to Upper. A Range with Steps == 0 holds the single value Lower.
//
// Ranges are plain values, so iterating one twice yields the same sequence.
type Range struct {
	Lower float64
	Upper float64
	Steps int
}

// NewRange creates a range over [lower, upper] split into steps intervals.
func NewRange(lower, upper float64, steps int) Range {
	return Range{Lower: lower, Upper: upper, Steps: steps}
}

// Len returns the number of values in the range.
func (r Range) Len() int {
	if r.Steps <= 0 {
		return 1
	}
	return r.Steps + 1
}

// At returns the i-th value, computed as Lower + step*i.
func (r Range) At(i int) float64 {
	if r.Steps <= 0 {
		return r.Lower
	}
	step := (r.Upper - r.Lower) / float64(r.Steps)
	return r.Lower + step*float64(i)
}

// Values materializes the range.
func (r Range) Values() []float64 {
	out := make([]float64, r.Len())
	for i := range out {
		out[i] = r.At(i)
	}
	return out
}

// All iterates the range lazily.
func (r Range) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		n := r.Len()
		for i := 0; i < n; i++ {
			if !yield(r.At(i)) {
				return
			}
		}
	}
}

// Grid is the cartesian product of a latitude range and a longitude range,
// enumerated latitude-major.
type Grid struct {
	Lat  Range
	Long Range
}

// Len returns the number of grid cells.
func (g Grid) Len() int {
	return g.Lat.Len() * g.Long.Len()
}
