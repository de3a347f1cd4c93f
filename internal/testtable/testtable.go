// Package testtable provides a complete synthetic coefficient table for tests
// and examples. The values are chosen to give jitter of a few m/s for typical
// inputs; they are not published fit results.
package testtable

import (
	"github.com/arloliu/rvjitter/coeftable"
)

type row struct {
	model  string
	suffix string
	giant  coeftable.Coefficient
	dwarf  coeftable.Coefficient
}

var rows = []row{
	{"LMT", "alpha", coeftable.Coefficient{Value: 0.72, Err: 0.05}, coeftable.Coefficient{Value: 0.45, Err: 0.04}},
	{"LMT", "beta", coeftable.Coefficient{Value: 0.61, Err: 0.02}, coeftable.Coefficient{Value: 0.55, Err: 0.03}},
	{"LMT", "gamma", coeftable.Coefficient{Value: -0.58, Err: 0.08}, coeftable.Coefficient{Value: -0.40, Err: 0.09}},
	{"LMT", "delta", coeftable.Coefficient{Value: 1.10, Err: 0.30}, coeftable.Coefficient{Value: 0.90, Err: 0.25}},

	{"LTg", "alpha", coeftable.Coefficient{Value: 0.68, Err: 0.05}, coeftable.Coefficient{Value: 0.47, Err: 0.04}},
	{"LTg", "beta", coeftable.Coefficient{Value: 0.10, Err: 0.03}, coeftable.Coefficient{Value: 0.15, Err: 0.04}},
	{"LTg", "gamma", coeftable.Coefficient{Value: 1.30, Err: 0.35}, coeftable.Coefficient{Value: 1.00, Err: 0.30}},
	{"LTg", "delta", coeftable.Coefficient{Value: -0.52, Err: 0.02}, coeftable.Coefficient{Value: -0.45, Err: 0.003}},

	{"Tg", "alpha", coeftable.Coefficient{Value: 0.66, Err: 0.04}, coeftable.Coefficient{Value: 0.50, Err: 0.04}},
	{"Tg", "beta", coeftable.Coefficient{Value: 1.80, Err: 0.40}, coeftable.Coefficient{Value: 1.20, Err: 0.30}},
	{"Tg", "gamma", coeftable.Coefficient{Value: -0.60, Err: 0.02}, coeftable.Coefficient{Value: -0.50, Err: 0.02}},

	{"LT", "alpha", coeftable.Coefficient{Value: 0.70, Err: 0.05}, coeftable.Coefficient{Value: 0.48, Err: 0.04}},
	{"LT", "beta", coeftable.Coefficient{Value: 0.55, Err: 0.02}, coeftable.Coefficient{Value: 0.50, Err: 0.02}},
	{"LT", "gamma", coeftable.Coefficient{Value: -0.80, Err: 0.40}, coeftable.Coefficient{Value: 0.40, Err: 0.35}},
}

// Values returns the synthetic coefficients keyed by table name.
func Values() map[string]coeftable.Coefficient {
	out := make(map[string]coeftable.Coefficient, 2*len(rows))
	for _, r := range rows {
		out[coeftable.Name("Giant", r.model, r.suffix)] = r.giant
		out[coeftable.Name("Dwarf", r.model, r.suffix)] = r.dwarf
	}

	return out
}

// Full returns the synthetic table after the error floor has been applied.
func Full() *coeftable.Table {
	t, err := coeftable.NewTable(Values())
	if err != nil {
		panic(err)
	}

	return t
}

// Without returns the synthetic table minus the named entries.
func Without(names ...string) *coeftable.Table {
	values := Values()
	for _, n := range names {
		delete(values, n)
	}
	t, err := coeftable.NewTable(values)
	if err != nil {
		panic(err)
	}

	return t
}
