package montecarlo

import (
	"fmt"
	"math"

	"github.com/arloliu/rvjitter/errs"
	"github.com/arloliu/rvjitter/internal/options"
	"go.uber.org/zap"
)

const (
	// DefaultSampleSize is the number of Monte Carlo draws per variable.
	DefaultSampleSize = 100000
	// DefaultClipSigma is the outlier cut in symmetrised standard deviations.
	DefaultClipSigma = 10.0
)

// Config holds the Monte Carlo settings.
type Config struct {
	SampleSize int
	ClipSigma  float64
	Logger     *zap.Logger
}

// DefaultConfig returns the settings used when no option is given.
func DefaultConfig() Config {
	return Config{
		SampleSize: DefaultSampleSize,
		ClipSigma:  DefaultClipSigma,
		Logger:     zap.NewNop(),
	}
}

// Option configures a propagation run.
type Option = options.Option[*Config]

// WithSampleSize sets the number of draws. n must be at least 1.
func WithSampleSize(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidSampleSize, n)
		}
		cfg.SampleSize = n

		return nil
	})
}

// WithClipSigma sets the outlier cut k: samples with |x − median| >= k·σ are dropped.
func WithClipSigma(k float64) Option {
	return options.New(func(cfg *Config) error {
		if math.IsNaN(k) || math.IsInf(k, 0) || k <= 0 {
			return fmt.Errorf("%w: got %v", errs.ErrInvalidClipSigma, k)
		}
		cfg.ClipSigma = k

		return nil
	})
}

// WithLogger sets the logger for run summaries. Nil keeps the current logger.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	})
}
