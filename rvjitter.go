package rvjitter

import (
	"errors"
	"fmt"

	"github.com/arloliu/rvjitter/coeftable"
	"github.com/arloliu/rvjitter/internal/options"
	"github.com/arloliu/rvjitter/model"
	"github.com/arloliu/rvjitter/montecarlo"
	"github.com/arloliu/rvjitter/star"
	"go.uber.org/zap"
)

// DefaultTableFile is the conventional file name of the published coefficient table.
const DefaultTableFile = "fitparamsrms.csv"

type settings struct {
	inputs    []star.Option
	configure []model.ConfigureOption
	propagate []montecarlo.Option
}

// Option configures a Target.
type Option = options.Option[*settings]

func inputOption(opt star.Option) Option {
	return options.NoError(func(s *settings) {
		s.inputs = append(s.inputs, opt)
	})
}

// WithLuminosity sets the luminosity in solar units and its 1σ error.
func WithLuminosity(value, err float64) Option {
	return inputOption(star.WithLuminosity(value, err))
}

// WithMass sets the mass in solar units and its 1σ error.
func WithMass(value, err float64) Option {
	return inputOption(star.WithMass(value, err))
}

// WithTeff sets the effective temperature in K and its 1σ error.
func WithTeff(value, err float64) Option {
	return inputOption(star.WithTeff(value, err))
}

// WithLogG sets log(g) in dex (cgs) and its 1σ error.
func WithLogG(value, err float64) Option {
	return inputOption(star.WithLogG(value, err))
}

// WithGiant forces the giant (true) or dwarf/subgiant (false) coefficients.
func WithGiant(giant bool) Option {
	return inputOption(star.WithGiant(giant))
}

// WithCorrectionFactor overrides the model's default correction factor.
func WithCorrectionFactor(c float64) Option {
	return inputOption(star.WithCorrectionFactor(c))
}

// WithGiantLogGCut sets the log(g) at or below which the giant coefficients apply.
// Defaults to model.DefaultGiantLogGCut.
func WithGiantLogGCut(cut float64) Option {
	return options.NoError(func(s *settings) {
		s.configure = append(s.configure, model.WithGiantLogGCut(cut))
	})
}

// WithSampleSize sets the number of Monte Carlo draws. Defaults to 100000.
func WithSampleSize(n int) Option {
	return options.NoError(func(s *settings) {
		s.propagate = append(s.propagate, montecarlo.WithSampleSize(n))
	})
}

// WithClipSigma sets the outlier cut in symmetrised standard deviations. Defaults to 10.
func WithClipSigma(k float64) Option {
	return options.NoError(func(s *settings) {
		s.propagate = append(s.propagate, montecarlo.WithClipSigma(k))
	})
}

// WithLogger sets the logger for model selection and propagation summaries.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(s *settings) {
		s.configure = append(s.configure, model.WithLogger(logger))
		s.propagate = append(s.propagate, montecarlo.WithLogger(logger))
	})
}

// Target is one star with its model configured and coefficients bound.
// A Target is immutable and safe for concurrent use.
type Target struct {
	inputs    *star.Inputs
	config    *model.Config
	propagate []montecarlo.Option
}

// New validates the star's inputs, picks the branch and model, and binds the
// branch coefficients from table.
//
// Returns errs.ErrInsufficientInputs, errs.ErrNoApplicableModel or
// errs.ErrMissingCoefficient (as *errs.MissingCoefficientError) when the star
// cannot be estimated, and errs.ErrInvalidMeasurement for malformed inputs.
//
// Example:
//
//	target, err := rvjitter.New(table,
//	    rvjitter.WithTeff(4963.00, 80.000),
//	    rvjitter.WithLogG(3.210, 0.006),
//	)
func New(table *coeftable.Table, opts ...Option) (*Target, error) {
	if table == nil {
		return nil, errors.New("rvjitter: nil coefficient table")
	}

	s := &settings{}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	in, err := star.NewInputs(s.inputs...)
	if err != nil {
		return nil, err
	}

	cfg, err := model.Configure(table, in, s.configure...)
	if err != nil {
		return nil, err
	}

	// Reject bad Monte Carlo options now rather than on the first RV call.
	if err := options.Apply(new(montecarlo.Config), s.propagate...); err != nil {
		return nil, err
	}

	return &Target{inputs: in, config: cfg, propagate: s.propagate}, nil
}

// RV runs the Monte Carlo propagation and returns the median jitter in m/s, its
// P84.1/P15.9 errors and the retained samples. Repeated calls return identical
// results.
func (t *Target) RV() (*montecarlo.Estimate, error) {
	return montecarlo.Propagate(t.config, t.inputs, t.propagate...)
}

// Model returns the selected scaling relation.
func (t *Target) Model() model.ModelType { return t.config.Model }

// Branch returns the selected coefficient branch.
func (t *Target) Branch() model.Branch { return t.config.Branch }

// Config returns the model configuration. It must not be modified.
func (t *Target) Config() *model.Config { return t.config }

// Inputs returns the validated star inputs. They must not be modified.
func (t *Target) Inputs() *star.Inputs { return t.inputs }

func (t *Target) String() string {
	return fmt.Sprintf("Target{%s, %s}", t.inputs, t.config)
}

// Estimate is a shortcut for New followed by RV.
func Estimate(table *coeftable.Table, opts ...Option) (*montecarlo.Estimate, error) {
	target, err := New(table, opts...)
	if err != nil {
		return nil, err
	}

	return target.RV()
}

// LoadTable reads a coefficient table from path. The format follows the file
// extension: .csv or .yaml/.yml, optionally followed by .zst, .s2 or .lz4.
func LoadTable(path string) (*coeftable.Table, error) {
	return coeftable.LoadFile(path)
}
