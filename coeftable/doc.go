// Package coeftable holds the fitted coefficients of the RV jitter scaling
// relations and the loaders that read them from disk.
//
// A table is a fixed-schema key-value lookup: each parameter name maps to a
// fitted value and its standard error. Names follow
//
//	RV_RMS_All_<Giant|Dwarf>_<LMT|LTg|Tg|LT>_<alpha|beta|gamma|delta>
//
// Tables are read from CSV (columns parameter, value, std) or YAML, optionally
// compressed with zstd, s2 or lz4:
//
//	table, err := coeftable.LoadFile("fitparamsrms.csv.zst")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, err := table.Lookup(coeftable.Name("Giant", "LMT", "alpha"))
//
// Every loaded error below ErrFloor is raised to ErrFloorValue so that an
// over-fit parameter does not produce an unrealistically narrow Monte Carlo draw.
// Tables are immutable after construction and safe for concurrent reads.
package coeftable
