package model

import (
	"strings"
)

// ModelType identifies one of the four jitter scaling relations.
type ModelType int

const (
	// ModelLMT is jitter = C·α·L^β·M^γ·(T/T_sun)^δ.
	ModelLMT ModelType = iota
	// ModelLTg is jitter = C·α·L^β·(T/T_sun)^δ·(g/g_sun)^ε.
	ModelLTg
	// ModelTg is jitter = C·α·(T/T_sun)^δ·(g/g_sun)^ε.
	ModelTg
	// ModelLT is jitter = C·α·L^β·(T/T_sun)^δ.
	ModelLT
	numModels
)

// ModelTypes lists the models in selection priority order.
var ModelTypes = []ModelType{ModelLMT, ModelLTg, ModelTg, ModelLT}

var modelTypeNames = map[ModelType]string{
	ModelLMT: "LMT",
	ModelLTg: "LTg",
	ModelTg:  "Tg",
	ModelLT:  "LT",
}

// String returns the model name as it appears in coefficient table keys.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// ModelTypeFromString returns the ModelType for a name such as "LTg".
// Matching is case-insensitive. Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	for mt, n := range modelTypeNames {
		if strings.EqualFold(n, name) {
			return mt
		}
	}

	return ModelType(-1)
}

// DefaultCorrectionFactor returns the factor used when the caller gives none.
func (mt ModelType) DefaultCorrectionFactor() float64 {
	switch mt {
	case ModelLMT, ModelLTg:
		return 1.93
	case ModelTg:
		return 2.01
	case ModelLT:
		return 1.87
	default:
		return 0
	}
}

// Branch selects the giant or dwarf/subgiant half of the coefficient table.
type Branch int

const (
	BranchGiant Branch = iota
	BranchDwarf
)

// String returns "Giant" or "Dwarf", matching coefficient table keys.
func (b Branch) String() string {
	switch b {
	case BranchGiant:
		return "Giant"
	case BranchDwarf:
		return "Dwarf"
	default:
		return "unknown"
	}
}

// Role is the position a coefficient takes in a scaling relation.
type Role int

const (
	RoleAlpha   Role = iota // normalisation
	RoleBeta                // luminosity exponent
	RoleGamma               // mass exponent
	RoleDelta               // temperature exponent
	RoleEpsilon             // gravity exponent
	numRoles
)

var roleNames = [numRoles]string{"alpha", "beta", "gamma", "delta", "epsilon"}

func (r Role) String() string {
	if r < 0 || r >= numRoles {
		return "unknown"
	}

	return roleNames[r]
}

// Quantity is an observed stellar property fed into a relation.
type Quantity int

const (
	QuantityLuminosity Quantity = iota
	QuantityMass
	QuantityTeff
	QuantityGravity
	numQuantities
)

var quantityNames = [numQuantities]string{"lumi", "mass", "teff", "grav"}

func (q Quantity) String() string {
	if q < 0 || q >= numQuantities {
		return "unknown"
	}

	return quantityNames[q]
}
