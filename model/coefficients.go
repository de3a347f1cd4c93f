package model

import (
	"fmt"

	"github.com/arloliu/rvjitter/coeftable"
)

// modelRoles lists each model's coefficient roles and the table suffix that
// stores them. Suffixes are positional: the second exponent of every model is
// stored under "beta" or "gamma" regardless of which quantity it multiplies.
var modelRoles = map[ModelType][]struct {
	role   Role
	suffix string
}{
	ModelLMT: {{RoleAlpha, "alpha"}, {RoleBeta, "beta"}, {RoleGamma, "gamma"}, {RoleDelta, "delta"}},
	ModelLTg: {{RoleAlpha, "alpha"}, {RoleBeta, "beta"}, {RoleDelta, "gamma"}, {RoleEpsilon, "delta"}},
	ModelTg:  {{RoleAlpha, "alpha"}, {RoleDelta, "beta"}, {RoleEpsilon, "gamma"}},
	ModelLT:  {{RoleAlpha, "alpha"}, {RoleBeta, "beta"}, {RoleDelta, "gamma"}},
}

// Roles returns the coefficient roles a model uses, in draw order.
func (mt ModelType) Roles() []Role {
	entries := modelRoles[mt]
	roles := make([]Role, len(entries))
	for i, s := range entries {
		roles[i] = s.role
	}

	return roles
}

// CoefficientName returns the table key holding role for the given branch and model.
// ok is false when the model does not use role.
func CoefficientName(b Branch, mt ModelType, role Role) (name string, ok bool) {
	for _, s := range modelRoles[mt] {
		if s.role == role {
			return coeftable.Name(b.String(), mt.String(), s.suffix), true
		}
	}

	return "", false
}

// TableNames returns every key a branch needs, grouped by model in priority order.
func TableNames(b Branch) []string {
	var names []string
	for _, mt := range ModelTypes {
		for _, s := range modelRoles[mt] {
			names = append(names, coeftable.Name(b.String(), mt.String(), s.suffix))
		}
	}

	return names
}

// Group is the fitted coefficient set of one model on one branch.
type Group struct {
	model  ModelType
	coeffs [numRoles]coeftable.Coefficient
	used   [numRoles]bool
}

// Model returns the relation the group belongs to.
func (g Group) Model() ModelType {
	return g.model
}

// Coefficient returns the fitted value and error for role.
func (g Group) Coefficient(role Role) (coeftable.Coefficient, bool) {
	if role < 0 || role >= numRoles || !g.used[role] {
		return coeftable.Coefficient{}, false
	}

	return g.coeffs[role], true
}

// BranchSet holds the coefficient groups of all four models for one branch.
// It is read once from a table and never modified.
type BranchSet struct {
	branch Branch
	groups [numModels]Group
}

// LoadBranch reads all four coefficient groups of branch b from table.
// The first missing name is returned as *errs.MissingCoefficientError.
func LoadBranch(table *coeftable.Table, b Branch) (*BranchSet, error) {
	set := &BranchSet{branch: b}
	for _, mt := range ModelTypes {
		g := Group{model: mt}
		for _, s := range modelRoles[mt] {
			name := coeftable.Name(b.String(), mt.String(), s.suffix)
			c, err := table.Lookup(name)
			if err != nil {
				return nil, fmt.Errorf("load %s %s coefficients: %w", b, mt, err)
			}
			g.coeffs[s.role] = c
			g.used[s.role] = true
		}
		set.groups[mt] = g
	}

	return set, nil
}

// Branch returns the branch the set was loaded for.
func (s *BranchSet) Branch() Branch {
	return s.branch
}

// Group returns the coefficient group of model mt.
func (s *BranchSet) Group(mt ModelType) (Group, bool) {
	if mt < 0 || mt >= numModels {
		return Group{}, false
	}

	return s.groups[mt], true
}
