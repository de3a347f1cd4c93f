package montecarlo

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/rvjitter/errs"
	"github.com/montanaflynn/stats"
)

// Percentile levels bracketing the central 68.2% of the distribution.
const (
	UpperPercentile = 84.1
	LowerPercentile = 15.9
)

// Summary is the median and 1σ-equivalent percentiles of a sample set.
type Summary struct {
	Median float64
	Upper  float64 // P84.1
	Lower  float64 // P15.9
}

// ErrPlus returns P84.1 − median.
func (s Summary) ErrPlus() float64 { return s.Upper - s.Median }

// ErrMinus returns median − P15.9.
func (s Summary) ErrMinus() float64 { return s.Median - s.Lower }

// Sigma returns the symmetrised error sqrt((ErrPlus² + ErrMinus²) / 2).
func (s Summary) Sigma() float64 {
	p, m := s.ErrPlus(), s.ErrMinus()
	return math.Sqrt((p*p + m*m) / 2)
}

// Summarize computes the median and the P84.1/P15.9 percentiles of samples.
// samples is not modified.
func Summarize(samples []float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, errs.ErrNoFiniteSamples
	}

	med, err := Median(samples)
	if err != nil {
		return Summary{}, err
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	return Summary{
		Median: med,
		Upper:  percentileSorted(sorted, UpperPercentile),
		Lower:  percentileSorted(sorted, LowerPercentile),
	}, nil
}

// Median returns the middle value of samples, averaging the two central values
// for an even count.
func Median(samples []float64) (float64, error) {
	med, err := stats.Median(stats.Float64Data(samples))
	if err != nil {
		return 0, fmt.Errorf("median: %w", err)
	}

	return med, nil
}

// Percentile returns the p-th percentile (0..100) of samples using linear
// interpolation between closest ranks, so P50 equals the median.
func Percentile(samples []float64, p float64) (float64, error) {
	if len(samples) == 0 {
		return 0, errs.ErrNoFiniteSamples
	}
	if math.IsNaN(p) || p < 0 || p > 100 {
		return 0, fmt.Errorf("percentile %v out of range [0, 100]", p)
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	return percentileSorted(sorted, p), nil
}

func percentileSorted(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Clip returns the samples with |x − median| < k·sigma, preserving order.
// A non-positive sigma keeps every sample, since the strict bound would
// otherwise reject even the median.
func Clip(samples []float64, median, sigma, k float64) []float64 {
	if sigma <= 0 {
		return slices.Clone(samples)
	}

	limit := k * sigma
	kept := make([]float64, 0, len(samples))
	for _, x := range samples {
		if math.Abs(x-median) < limit {
			kept = append(kept, x)
		}
	}

	return kept
}
