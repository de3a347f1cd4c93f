// Package rvjitter estimates the radial-velocity jitter of a star from
// empirical scaling relations over luminosity, mass, effective temperature
// and surface gravity.
//
// Given whichever of those quantities are known, with 1σ errors, rvjitter picks
// one of four relations (LMT, LTg, Tg, LT), chooses the giant or dwarf/subgiant
// coefficients from log(g), and propagates every uncertainty through a
// reproducible Monte Carlo simulation. The result is the median jitter in m/s
// with asymmetric errors and the retained sample distribution.
//
// # Basic Usage
//
//	table, err := rvjitter.LoadTable("fitparamsrms.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	target, err := rvjitter.New(table,
//	    rvjitter.WithLuminosity(12.006, 1.131),
//	    rvjitter.WithMass(1.304, 0.064),
//	    rvjitter.WithTeff(4963.00, 80.000),
//	)
//	if err != nil {
//	    log.Fatal(err) // errs.ErrInsufficientInputs, errs.ErrNoApplicableModel, ...
//	}
//
//	est, err := target.RV()
//	fmt.Println(est.Median, est.ErrPlus, est.ErrMinus)
//
// # Coefficient Tables
//
// The fitted coefficients are read from a CSV (parameter, value, std columns)
// or YAML file, optionally compressed with zstd, s2 or lz4. Standard errors
// below 0.005 are raised to 0.01 on load. See the coeftable package.
//
// # Package Structure
//
// This package provides top-level wrappers around the star, model and
// montecarlo packages. Use those directly for finer control, for example to
// inspect the configured model before sampling.
package rvjitter
