// Package star describes the observed properties of one target star.
//
// Each physical quantity is supplied as a value together with its 1σ error,
// or not at all; the With* options make a half-specified quantity impossible:
//
//	in, err := star.NewInputs(
//	    star.WithLuminosity(12.006, 1.131),
//	    star.WithMass(1.304, 0.064),
//	    star.WithTeff(4963.0, 80.0),
//	)
package star

import (
	"fmt"
	"math"

	"github.com/arloliu/rvjitter/errs"
	"github.com/arloliu/rvjitter/internal/options"
)

// Measurement is an observed value and its 1σ uncertainty.
type Measurement struct {
	Value float64
	Err   float64
}

func (m Measurement) validate(quantity string) error {
	if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
		return fmt.Errorf("%w: %s value %v is not finite", errs.ErrInvalidMeasurement, quantity, m.Value)
	}
	if math.IsNaN(m.Err) || math.IsInf(m.Err, 0) || m.Err < 0 {
		return fmt.Errorf("%w: %s error %v must be finite and non-negative", errs.ErrInvalidMeasurement, quantity, m.Err)
	}

	return nil
}

// Inputs is the caller-supplied evidence about one star. Nil fields were not supplied.
type Inputs struct {
	// Luminosity in solar units.
	Luminosity *Measurement
	// Mass in solar units.
	Mass *Measurement
	// Teff is the effective temperature in K.
	Teff *Measurement
	// LogG is log10 of the surface gravity in cgs, error in dex.
	LogG *Measurement
	// Giant overrides the branch decision when set.
	Giant *bool
	// CorrectionFactor converts oscillation-only jitter to oscillation plus
	// granulation jitter. Nil selects the model default.
	CorrectionFactor *float64
}

// Option configures Inputs.
type Option = options.Option[*Inputs]

// WithLuminosity sets the luminosity (L_sun) and its 1σ error.
func WithLuminosity(value, err float64) Option {
	return options.New(func(in *Inputs) error {
		m := Measurement{Value: value, Err: err}
		if e := m.validate("luminosity"); e != nil {
			return e
		}
		in.Luminosity = &m

		return nil
	})
}

// WithMass sets the mass (M_sun) and its 1σ error.
func WithMass(value, err float64) Option {
	return options.New(func(in *Inputs) error {
		m := Measurement{Value: value, Err: err}
		if e := m.validate("mass"); e != nil {
			return e
		}
		in.Mass = &m

		return nil
	})
}

// WithTeff sets the effective temperature (K) and its 1σ error.
func WithTeff(value, err float64) Option {
	return options.New(func(in *Inputs) error {
		m := Measurement{Value: value, Err: err}
		if e := m.validate("teff"); e != nil {
			return e
		}
		in.Teff = &m

		return nil
	})
}

// WithLogG sets log(g) in dex and its 1σ error in dex.
func WithLogG(value, err float64) Option {
	return options.New(func(in *Inputs) error {
		m := Measurement{Value: value, Err: err}
		if e := m.validate("logg"); e != nil {
			return e
		}
		in.LogG = &m

		return nil
	})
}

// WithGiant forces the giant (true) or dwarf/subgiant (false) branch.
func WithGiant(giant bool) Option {
	return options.NoError(func(in *Inputs) {
		in.Giant = &giant
	})
}

// WithCorrectionFactor overrides the model's default correction factor.
func WithCorrectionFactor(c float64) Option {
	return options.New(func(in *Inputs) error {
		if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
			return fmt.Errorf("%w: got %v", errs.ErrInvalidCorrectionFactor, c)
		}
		in.CorrectionFactor = &c

		return nil
	})
}

// NewInputs applies opts and returns the validated inputs.
func NewInputs(opts ...Option) (*Inputs, error) {
	in := &Inputs{}
	if err := options.Apply(in, opts...); err != nil {
		return nil, err
	}

	return in, nil
}

// Validate re-checks inputs built as a struct literal rather than through NewInputs.
func (in *Inputs) Validate() error {
	checks := []struct {
		m    *Measurement
		name string
	}{
		{in.Luminosity, "luminosity"},
		{in.Mass, "mass"},
		{in.Teff, "teff"},
		{in.LogG, "logg"},
	}
	for _, c := range checks {
		if c.m == nil {
			continue
		}
		if err := c.m.validate(c.name); err != nil {
			return err
		}
	}
	if in.CorrectionFactor != nil {
		c := *in.CorrectionFactor
		if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
			return fmt.Errorf("%w: got %v", errs.ErrInvalidCorrectionFactor, c)
		}
	}

	return nil
}

func (in *Inputs) HasLuminosity() bool { return in.Luminosity != nil }
func (in *Inputs) HasMass() bool       { return in.Mass != nil }
func (in *Inputs) HasTeff() bool       { return in.Teff != nil }
func (in *Inputs) HasGravity() bool    { return in.LogG != nil }
func (in *Inputs) HasGiantFlag() bool  { return in.Giant != nil }

// HasLMT reports whether luminosity, mass and temperature are all present.
func (in *Inputs) HasLMT() bool {
	return in.HasLuminosity() && in.HasMass() && in.HasTeff()
}

// String lists the supplied quantities, e.g. "L=12.006±1.131 T=4963±80".
func (in *Inputs) String() string {
	s := ""
	add := func(label string, m *Measurement) {
		if m == nil {
			return
		}
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%s=%g±%g", label, m.Value, m.Err)
	}
	add("L", in.Luminosity)
	add("M", in.Mass)
	add("T", in.Teff)
	add("logg", in.LogG)
	if in.Giant != nil {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("giant=%t", *in.Giant)
	}
	if s == "" {
		return "(none)"
	}

	return s
}
