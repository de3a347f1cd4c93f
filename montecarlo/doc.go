// Package montecarlo propagates input and coefficient uncertainties through a
// configured jitter relation.
//
// Every random variable of the selected model gets its own generator seeded
// with the variable's fixed seed, so the same inputs always produce the same
// samples. Draws whose jitter is NaN or ±Inf are discarded, samples further
// than ClipSigma symmetrised standard deviations from the median are clipped,
// and the median with its P84.1/P15.9 errors is computed on what remains.
//
//	cfg, _ := model.Configure(table, in)
//	est, err := montecarlo.Propagate(cfg, in)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(est.Annotation()) // = 3.45 +0.21 -0.19 [m/s]
package montecarlo
