package model

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/arloliu/rvjitter/star"
)

// Sample is one Monte Carlo draw of the stellar quantities and coefficients.
// Entries a model does not use are ignored.
type Sample struct {
	Quantities [numQuantities]float64
	Coeffs     [numRoles]float64
}

// Set stores the drawn value of variable v.
func (s *Sample) Set(v Variable, x float64) {
	if v.Input {
		s.Quantities[v.Quantity] = x
	} else {
		s.Coeffs[v.Role] = x
	}
}

// Estimator evaluates one scaling relation for a single draw.
//
// Results follow math.Pow: a negative base with a non-integer exponent gives
// NaN and overflow gives ±Inf. Callers discard such draws.
type Estimator interface {
	// Estimate returns the jitter in m/s for one draw.
	Estimate(s *Sample) float64
	// Type returns the model type.
	Type() ModelType
	// CorrectionFactor returns the multiplicative factor C.
	CorrectionFactor() float64
	// Formula returns a human-readable form of the relation.
	Formula() string
}

func tRatio(s *Sample) float64 { return s.Quantities[QuantityTeff] / star.TeffSun }
func gRatio(s *Sample) float64 { return s.Quantities[QuantityGravity] / star.GravSun }

// LMTEstimator implements jitter = C·α·L^β·M^γ·(T/T_sun)^δ.
type LMTEstimator struct{ c float64 }

// NewLMTEstimator creates an LMT estimator with correction factor c.
func NewLMTEstimator(c float64) *LMTEstimator { return &LMTEstimator{c: c} }

func (e *LMTEstimator) Estimate(s *Sample) float64 {
	return e.c * s.Coeffs[RoleAlpha] *
		math.Pow(s.Quantities[QuantityLuminosity], s.Coeffs[RoleBeta]) *
		math.Pow(s.Quantities[QuantityMass], s.Coeffs[RoleGamma]) *
		math.Pow(tRatio(s), s.Coeffs[RoleDelta])
}

func (e *LMTEstimator) Type() ModelType           { return ModelLMT }
func (e *LMTEstimator) CorrectionFactor() float64 { return e.c }
func (e *LMTEstimator) Formula() string {
	return fmt.Sprintf("σ_RV = %.2f·α·L^β·M^γ·(T/T_sun)^δ", e.c)
}

// LTgEstimator implements jitter = C·α·L^β·(T/T_sun)^δ·(g/g_sun)^ε.
type LTgEstimator struct{ c float64 }

// NewLTgEstimator creates an LTg estimator with correction factor c.
func NewLTgEstimator(c float64) *LTgEstimator { return &LTgEstimator{c: c} }

func (e *LTgEstimator) Estimate(s *Sample) float64 {
	return e.c * s.Coeffs[RoleAlpha] *
		math.Pow(s.Quantities[QuantityLuminosity], s.Coeffs[RoleBeta]) *
		math.Pow(tRatio(s), s.Coeffs[RoleDelta]) *
		math.Pow(gRatio(s), s.Coeffs[RoleEpsilon])
}

func (e *LTgEstimator) Type() ModelType           { return ModelLTg }
func (e *LTgEstimator) CorrectionFactor() float64 { return e.c }
func (e *LTgEstimator) Formula() string {
	return fmt.Sprintf("σ_RV = %.2f·α·L^β·(T/T_sun)^δ·(g/g_sun)^ε", e.c)
}

// TgEstimator implements jitter = C·α·(T/T_sun)^δ·(g/g_sun)^ε.
type TgEstimator struct{ c float64 }

// NewTgEstimator creates a Tg estimator with correction factor c.
func NewTgEstimator(c float64) *TgEstimator { return &TgEstimator{c: c} }

func (e *TgEstimator) Estimate(s *Sample) float64 {
	return e.c * s.Coeffs[RoleAlpha] *
		math.Pow(tRatio(s), s.Coeffs[RoleDelta]) *
		math.Pow(gRatio(s), s.Coeffs[RoleEpsilon])
}

func (e *TgEstimator) Type() ModelType           { return ModelTg }
func (e *TgEstimator) CorrectionFactor() float64 { return e.c }
func (e *TgEstimator) Formula() string {
	return fmt.Sprintf("σ_RV = %.2f·α·(T/T_sun)^δ·(g/g_sun)^ε", e.c)
}

// LTEstimator implements jitter = C·α·L^β·(T/T_sun)^δ.
type LTEstimator struct{ c float64 }

// NewLTEstimator creates an LT estimator with correction factor c.
func NewLTEstimator(c float64) *LTEstimator { return &LTEstimator{c: c} }

func (e *LTEstimator) Estimate(s *Sample) float64 {
	return e.c * s.Coeffs[RoleAlpha] *
		math.Pow(s.Quantities[QuantityLuminosity], s.Coeffs[RoleBeta]) *
		math.Pow(tRatio(s), s.Coeffs[RoleDelta])
}

func (e *LTEstimator) Type() ModelType           { return ModelLT }
func (e *LTEstimator) CorrectionFactor() float64 { return e.c }
func (e *LTEstimator) Formula() string {
	return fmt.Sprintf("σ_RV = %.2f·α·L^β·(T/T_sun)^δ", e.c)
}

// NewEstimator creates the estimator for mt with correction factor c.
// Returns nil for an unknown model type.
func NewEstimator(mt ModelType, c float64) Estimator {
	switch mt {
	case ModelLMT:
		return NewLMTEstimator(c)
	case ModelLTg:
		return NewLTgEstimator(c)
	case ModelTg:
		return NewTgEstimator(c)
	case ModelLT:
		return NewLTEstimator(c)
	default:
		return nil
	}
}

// NewEstimatorByName creates an estimator from a model name such as "Tg".
// A zero correction factor selects the model default.
//
// Example:
//
//	est, err := model.NewEstimatorByName("LT", 0) // C = 1.87
func NewEstimatorByName(name string, c float64) (Estimator, error) {
	mt := ModelTypeFromString(name)
	if mt == ModelType(-1) {
		supported := make([]string, 0, len(modelTypeNames))
		for _, n := range modelTypeNames {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supported, ", "))
	}
	if c == 0 {
		c = mt.DefaultCorrectionFactor()
	}

	return NewEstimator(mt, c), nil
}
