package montecarlo

import (
	"fmt"
	"math"
	"slices"
)

// DefaultHistogramBins matches 100 evenly spaced edges.
const DefaultHistogramBins = 99

// Histogram is a density-normalised histogram of the retained samples.
// Density integrates to 1 over the bins that received samples.
type Histogram struct {
	Edges   []float64 // len(Density)+1 increasing bin edges
	Density []float64
}

// Histogram bins the retained samples into bins equal-width bins spanning
// [min·0.99, max·1.01]. The last bin is closed on the right.
func (e *Estimate) Histogram(bins int) (*Histogram, error) {
	if bins < 1 {
		return nil, fmt.Errorf("histogram needs at least one bin, got %d", bins)
	}
	if len(e.Samples) == 0 {
		return nil, fmt.Errorf("histogram of empty sample set")
	}

	lo := slices.Min(e.Samples) * 0.99
	hi := slices.Max(e.Samples) * 1.01
	if hi <= lo {
		// degenerate range: identical samples at or below zero
		lo, hi = math.Min(lo, hi)-0.5, math.Max(lo, hi)+0.5
	}

	h := &Histogram{
		Edges:   make([]float64, bins+1),
		Density: make([]float64, bins),
	}
	width := (hi - lo) / float64(bins)
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[bins] = hi

	// Negative samples can fall outside the scaled range and are not counted.
	counts := make([]int, bins)
	total := 0
	for _, x := range e.Samples {
		if x < lo || x > hi {
			continue
		}
		i := min(int((x-lo)/width), bins-1)
		counts[i]++
		total++
	}
	if total == 0 {
		return h, nil
	}

	norm := float64(total) * width
	for i, c := range counts {
		h.Density[i] = float64(c) / norm
	}

	return h, nil
}

// Peak returns the highest density, the height of the median marker line.
func (h *Histogram) Peak() float64 {
	if len(h.Density) == 0 {
		return 0
	}

	return slices.Max(h.Density)
}
