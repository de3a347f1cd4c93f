package montecarlo

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/arloliu/rvjitter/errs"
	"github.com/arloliu/rvjitter/internal/options"
	"github.com/arloliu/rvjitter/internal/pool"
	"github.com/arloliu/rvjitter/model"
	"github.com/arloliu/rvjitter/star"
	"go.uber.org/zap"
)

// Estimate is the result of one propagation run.
type Estimate struct {
	// Median jitter in m/s.
	Median float64
	// ErrPlus is P84.1 − Median.
	ErrPlus float64
	// ErrMinus is Median − P15.9.
	ErrMinus float64
	// Samples are the retained jitter draws in draw order.
	Samples []float64

	Model  model.ModelType
	Branch model.Branch
	// Dropped counts non-finite draws.
	Dropped int
	// Clipped counts finite draws removed as outliers.
	Clipped int
}

// Annotation formats the result the way it is printed on the jitter plot.
func (e *Estimate) Annotation() string {
	return fmt.Sprintf("= %.2f +%.2f -%.2f [m/s]", e.Median, e.ErrPlus, e.ErrMinus)
}

func (e *Estimate) String() string {
	return fmt.Sprintf("%s %s σ_RV %s (n=%d, dropped=%d, clipped=%d)",
		e.Model, e.Branch, e.Annotation(), len(e.Samples), e.Dropped, e.Clipped)
}

// fillNormal overwrites dst with mean + sigma·z, z drawn from a standard normal
// stream seeded with seed.
func fillNormal(dst []float64, mean, sigma float64, seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed))
	for i := range dst {
		dst[i] = mean + sigma*rng.NormFloat64()
	}
}

// Propagate draws every variable of cfg's model, evaluates the relation for each
// draw and summarises the resulting jitter distribution.
//
// in must be the inputs cfg was configured from. Results are deterministic for
// given inputs, coefficients and sample size.
func Propagate(cfg *model.Config, in *star.Inputs, opts ...Option) (*Estimate, error) {
	if cfg == nil || in == nil {
		return nil, errors.New("propagate: nil model config or inputs")
	}

	mc := DefaultConfig()
	if err := options.Apply(&mc, opts...); err != nil {
		return nil, err
	}
	n := mc.SampleSize

	vars := cfg.Variables()
	scratch := pool.NewFloat64Slices(n)
	defer scratch.Release()

	columns := make([][]float64, len(vars))
	for i, v := range vars {
		mean, sigma, err := cfg.Distribution(v, in)
		if err != nil {
			return nil, err
		}
		columns[i] = scratch.Get()
		fillNormal(columns[i], mean, sigma, v.Seed)
	}

	est := cfg.Estimator()
	finite := make([]float64, 0, n)
	var sample model.Sample
	for j := 0; j < n; j++ {
		for i, v := range vars {
			sample.Set(v, columns[i][j])
		}
		x := est.Estimate(&sample)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		finite = append(finite, x)
	}
	dropped := n - len(finite)
	if len(finite) == 0 {
		return nil, fmt.Errorf("%w: all %d %s draws", errs.ErrNoFiniteSamples, n, cfg.Model)
	}

	first, err := Summarize(finite)
	if err != nil {
		return nil, err
	}
	kept := Clip(finite, first.Median, first.Sigma(), mc.ClipSigma)

	final, err := Summarize(kept)
	if err != nil {
		return nil, err
	}

	result := &Estimate{
		Median:   final.Median,
		ErrPlus:  final.ErrPlus(),
		ErrMinus: final.ErrMinus(),
		Samples:  kept,
		Model:    cfg.Model,
		Branch:   cfg.Branch,
		Dropped:  dropped,
		Clipped:  len(finite) - len(kept),
	}
	mc.Logger.Debug("monte carlo propagation",
		zap.Stringer("model", cfg.Model),
		zap.Stringer("branch", cfg.Branch),
		zap.Int("samples", n),
		zap.Int("dropped", result.Dropped),
		zap.Int("clipped", result.Clipped),
		zap.Float64("median", result.Median),
		zap.Float64("err_plus", result.ErrPlus),
		zap.Float64("err_minus", result.ErrMinus))

	return result, nil
}
