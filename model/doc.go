// Package model selects and evaluates the RV jitter scaling relations.
//
// Four power-law relations are supported, chosen in fixed priority order from
// whichever stellar quantities are present:
//
//   - LMT: σ = C·α·L^β·M^γ·(T/T_sun)^δ  (luminosity, mass, temperature)
//   - LTg: σ = C·α·L^β·(T/T_sun)^δ·(g/g_sun)^ε  (luminosity, temperature, gravity)
//   - Tg:  σ = C·α·(T/T_sun)^δ·(g/g_sun)^ε  (temperature, gravity)
//   - LT:  σ = C·α·L^β·(T/T_sun)^δ  (luminosity, temperature)
//
// Each relation was fitted separately for giants and for dwarfs/subgiants. The
// branch is chosen from log(g): an explicit flag first, then a supplied log(g),
// then log(g) derived from L, M and T.
//
//	in, _ := star.NewInputs(star.WithTeff(4963, 80), star.WithLogG(3.21, 0.006))
//	cfg, err := model.Configure(table, in)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Model, cfg.Branch) // Tg Dwarf
//
// The C correction factor converts oscillation-only jitter to oscillation plus
// granulation jitter; model defaults are 1.93 (LMT, LTg), 2.01 (Tg) and 1.87 (LT).
package model
