package model

import (
	"fmt"
	"math"

	"github.com/arloliu/rvjitter/coeftable"
	"github.com/arloliu/rvjitter/errs"
	"github.com/arloliu/rvjitter/internal/options"
	"github.com/arloliu/rvjitter/star"
	"go.uber.org/zap"
)

// Representative log(g) values standing in for an explicit giant/dwarf flag.
// They only pick the coefficient branch and are never sampled.
const (
	GiantFlagLogG = 2.44
	DwarfFlagLogG = 4.44
)

// DefaultGiantLogGCut is the branch threshold: log(g) <= DefaultGiantLogGCut selects
// the giant coefficients.
//
// The value is log10(3.5) ≈ 0.544 dex: log10 applied to a threshold that is
// already in dex. With this cut every physical star, and even the giant flag's
// 2.44, lands on the dwarf branch. Use WithGiantLogGCut(3.5) for a cut at
// log(g) = 3.5.
var DefaultGiantLogGCut = math.Log10(3.5)

// LogGSource records where the branch-deciding log(g) came from.
type LogGSource int

const (
	LogGFromFlag LogGSource = iota
	LogGFromGravity
	LogGFromLMT
)

func (s LogGSource) String() string {
	switch s {
	case LogGFromFlag:
		return "giant flag"
	case LogGFromGravity:
		return "surface gravity"
	case LogGFromLMT:
		return "luminosity, mass and temperature"
	default:
		return "unknown"
	}
}

// ResolveLogG returns the log(g) used to pick the branch, trying in order the
// explicit giant flag, the supplied log(g), and the value derived from L, M and T.
// Returns errs.ErrInsufficientInputs when none is available.
func ResolveLogG(in *star.Inputs) (float64, LogGSource, error) {
	switch {
	case in.HasGiantFlag():
		if *in.Giant {
			return GiantFlagLogG, LogGFromFlag, nil
		}

		return DwarfFlagLogG, LogGFromFlag, nil
	case in.HasGravity():
		return in.LogG.Value, LogGFromGravity, nil
	case in.HasLMT():
		logg, _ := in.DerivedLogG()
		return logg, LogGFromLMT, nil
	default:
		return 0, 0, errs.ErrInsufficientInputs
	}
}

// BranchFor returns BranchGiant when logg <= cut and BranchDwarf otherwise.
func BranchFor(logg, cut float64) Branch {
	if logg <= cut {
		return BranchGiant
	}

	return BranchDwarf
}

// SelectModel picks the first model whose inputs are all present, in the fixed
// priority LMT, LTg, Tg, LT. LMT wins even when log(g) is also supplied.
func SelectModel(in *star.Inputs) (ModelType, error) {
	switch {
	case in.HasLuminosity() && in.HasMass() && in.HasTeff():
		return ModelLMT, nil
	case in.HasLuminosity() && in.HasTeff() && in.HasGravity():
		return ModelLTg, nil
	case in.HasTeff() && in.HasGravity():
		return ModelTg, nil
	case in.HasLuminosity() && in.HasTeff():
		return ModelLT, nil
	default:
		return ModelType(-1), errs.ErrNoApplicableModel
	}
}

// Config is the outcome of model configuration for one star.
type Config struct {
	Model            ModelType
	Branch           Branch
	LogG             float64
	LogGSource       LogGSource
	CorrectionFactor float64
	// Coefficients is the selected model's group from Set.
	Coefficients Group
	// Set holds every model's coefficients for Branch.
	Set *BranchSet
}

// Estimator returns the evaluator for the selected model and correction factor.
func (c *Config) Estimator() Estimator {
	return NewEstimator(c.Model, c.CorrectionFactor)
}

// Variables returns the selected model's random variables in draw order.
func (c *Config) Variables() []Variable {
	return c.Model.Variables()
}

// Distribution returns the mean and standard deviation of variable v: the
// measurement for a stellar quantity, the fitted value for a coefficient.
func (c *Config) Distribution(v Variable, in *star.Inputs) (mean, sigma float64, err error) {
	if !v.Input {
		coef, ok := c.Coefficients.Coefficient(v.Role)
		if !ok {
			return 0, 0, fmt.Errorf("model %s has no %s coefficient", c.Model, v.Role)
		}

		return coef.Value, coef.Err, nil
	}

	var m *star.Measurement
	switch v.Quantity {
	case QuantityLuminosity:
		m = in.Luminosity
	case QuantityMass:
		m = in.Mass
	case QuantityTeff:
		m = in.Teff
	case QuantityGravity:
		if g, ok := in.Gravity(); ok {
			m = &g
		}
	}
	if m == nil {
		return 0, 0, fmt.Errorf("%w: model %s needs %s", errs.ErrNoApplicableModel, c.Model, v.Quantity)
	}

	return m.Value, m.Err, nil
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Model: %s, Branch: %s, logg: %.3f (%s), C: %.2f}",
		c.Model, c.Branch, c.LogG, c.LogGSource, c.CorrectionFactor)
}

type configureConfig struct {
	giantCut float64
	logger   *zap.Logger
}

// ConfigureOption is a functional option for Configure.
type ConfigureOption = options.Option[*configureConfig]

// WithGiantLogGCut sets the log(g) threshold in dex at or below which the giant
// coefficients are used. Defaults to DefaultGiantLogGCut.
func WithGiantLogGCut(cut float64) ConfigureOption {
	return options.New(func(cfg *configureConfig) error {
		if math.IsNaN(cut) || math.IsInf(cut, 0) {
			return fmt.Errorf("giant log(g) cut must be finite, got %v", cut)
		}
		cfg.giantCut = cut

		return nil
	})
}

// WithLogger sets the logger for configuration decisions. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) ConfigureOption {
	return options.NoError(func(cfg *configureConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	})
}

// Configure resolves the branch, reads the branch's coefficients from table and
// selects the model for in.
//
// Errors, all terminal:
//   - errs.ErrInvalidMeasurement / errs.ErrInvalidCorrectionFactor: invalid inputs
//   - errs.ErrInsufficientInputs: no way to pick a branch
//   - errs.ErrMissingCoefficient: table lacks a name for the branch
//   - errs.ErrNoApplicableModel: branch known but no model applies
func Configure(table *coeftable.Table, in *star.Inputs, opts ...ConfigureOption) (*Config, error) {
	cfg := &configureConfig{giantCut: DefaultGiantLogGCut, logger: zap.NewNop()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	logg, source, err := ResolveLogG(in)
	if err != nil {
		return nil, err
	}
	branch := BranchFor(logg, cfg.giantCut)

	set, err := LoadBranch(table, branch)
	if err != nil {
		return nil, err
	}

	mt, err := SelectModel(in)
	if err != nil {
		cfg.logger.Debug("no applicable model",
			zap.Stringer("inputs", in),
			zap.Stringer("branch", branch))

		return nil, err
	}
	group, _ := set.Group(mt)

	c := mt.DefaultCorrectionFactor()
	if in.CorrectionFactor != nil {
		c = *in.CorrectionFactor
	}

	config := &Config{
		Model:            mt,
		Branch:           branch,
		LogG:             logg,
		LogGSource:       source,
		CorrectionFactor: c,
		Coefficients:     group,
		Set:              set,
	}
	cfg.logger.Debug("model configured",
		zap.Stringer("model", mt),
		zap.Stringer("branch", branch),
		zap.Float64("logg", logg),
		zap.Stringer("logg_source", source),
		zap.Float64("giant_cut", cfg.giantCut),
		zap.Float64("correction_factor", c))

	return config, nil
}
