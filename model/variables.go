package model

import "slices"

// Variable is one randomly drawn quantity or coefficient together with the
// fixed seed of its random stream.
type Variable struct {
	Input    bool     // true for a stellar quantity, false for a coefficient
	Quantity Quantity // valid when Input
	Role     Role     // valid when !Input
	Seed     uint64
}

func (v Variable) String() string {
	if v.Input {
		return v.Quantity.String()
	}

	return v.Role.String()
}

func inputVar(q Quantity, seed uint64) Variable { return Variable{Input: true, Quantity: q, Seed: seed} }
func coefVar(r Role, seed uint64) Variable     { return Variable{Role: r, Seed: seed} }

// seedPlan fixes the draw order and seed of every variable. Seeds are unique
// across all models so no two variables share a random stream.
var seedPlan = map[ModelType][]Variable{
	ModelLMT: {
		inputVar(QuantityLuminosity, 1), inputVar(QuantityMass, 2), inputVar(QuantityTeff, 3),
		coefVar(RoleAlpha, 4), coefVar(RoleBeta, 5), coefVar(RoleGamma, 6), coefVar(RoleDelta, 7),
	},
	ModelLTg: {
		inputVar(QuantityLuminosity, 8), inputVar(QuantityTeff, 9), inputVar(QuantityGravity, 10),
		coefVar(RoleAlpha, 11), coefVar(RoleBeta, 12), coefVar(RoleDelta, 13), coefVar(RoleEpsilon, 14),
	},
	ModelTg: {
		inputVar(QuantityTeff, 15), inputVar(QuantityGravity, 16),
		coefVar(RoleAlpha, 17), coefVar(RoleDelta, 18), coefVar(RoleEpsilon, 19),
	},
	ModelLT: {
		inputVar(QuantityLuminosity, 20), inputVar(QuantityTeff, 21),
		coefVar(RoleAlpha, 22), coefVar(RoleBeta, 23), coefVar(RoleDelta, 24),
	},
}

// Variables returns the model's random variables in draw order.
func (mt ModelType) Variables() []Variable {
	return slices.Clone(seedPlan[mt])
}

// Quantities returns the stellar quantities the model needs.
func (mt ModelType) Quantities() []Quantity {
	var qs []Quantity
	for _, v := range seedPlan[mt] {
		if v.Input {
			qs = append(qs, v.Quantity)
		}
	}

	return qs
}
