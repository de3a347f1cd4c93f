package star

import "math"

// Solar reference values used by the scaling relations.
const (
	TeffSun = 5777.0
	LogGSun = 4.44
)

// GravSun is the solar surface gravity in cgs, 10^LogGSun.
var GravSun = math.Pow(10, LogGSun)

// Gravity converts the supplied log(g) to linear surface gravity g = 10^logg.
//
// The error is converted as loggErr / ln(10) / logg, which is much smaller than
// the first-order propagation g·ln(10)·loggErr. ok is false when log(g) was not
// supplied.
func (in *Inputs) Gravity() (g Measurement, ok bool) {
	if in.LogG == nil {
		return Measurement{}, false
	}

	return Measurement{
		Value: math.Pow(10, in.LogG.Value),
		Err:   in.LogG.Err / math.Ln10 / in.LogG.Value,
	}, true
}

// DerivedLogG estimates log(g) from luminosity, mass and temperature with
//
//	log g = log g_sun − log L + log M + 4·log(T/T_sun)
//
// ok is false unless all three quantities are present.
func (in *Inputs) DerivedLogG() (logg float64, ok bool) {
	if !in.HasLMT() {
		return 0, false
	}

	return LogGSun -
		math.Log10(in.Luminosity.Value) +
		math.Log10(in.Mass.Value) +
		4*math.Log10(in.Teff.Value/TeffSun), true
}
