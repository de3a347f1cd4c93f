package model

import (
	"errors"
	"math"
	"testing"

	"github.com/arloliu/rvjitter/coeftable"
	"github.com/arloliu/rvjitter/errs"
	"github.com/arloliu/rvjitter/internal/testtable"
	"github.com/arloliu/rvjitter/star"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"
)

func mustInputs(t *testing.T, opts ...star.Option) *star.Inputs {
	t.Helper()
	in, err := star.NewInputs(opts...)
	require.NoError(t, err)

	return in
}

func TestResolveLogG(t *testing.T) {
	tests := []struct {
		name   string
		opts   []star.Option
		logg   float64
		source LogGSource
	}{
		{
			name:   "giant flag wins over gravity",
			opts:   []star.Option{star.WithGiant(true), star.WithLogG(4.1, 0.1)},
			logg:   GiantFlagLogG,
			source: LogGFromFlag,
		},
		{
			name:   "dwarf flag",
			opts:   []star.Option{star.WithGiant(false), star.WithLuminosity(1, 0.1), star.WithTeff(5000, 50)},
			logg:   DwarfFlagLogG,
			source: LogGFromFlag,
		},
		{
			name:   "gravity wins over derived",
			opts:   []star.Option{star.WithLogG(3.21, 0.006), star.WithLuminosity(12.006, 1.131), star.WithMass(1.304, 0.064), star.WithTeff(4963, 80)},
			logg:   3.21,
			source: LogGFromGravity,
		},
		{
			name:   "derived from L, M, T",
			opts:   []star.Option{star.WithLuminosity(1, 0.1), star.WithMass(1, 0.1), star.WithTeff(star.TeffSun, 50)},
			logg:   star.LogGSun,
			source: LogGFromLMT,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logg, source, err := ResolveLogG(mustInputs(t, tt.opts...))
			require.NoError(t, err)
			require.InDelta(t, tt.logg, logg, 1e-12)
			require.Equal(t, tt.source, source)
		})
	}

	t.Run("insufficient", func(t *testing.T) {
		_, _, err := ResolveLogG(mustInputs(t, star.WithLuminosity(1, 0.1), star.WithTeff(5000, 50)))
		require.ErrorIs(t, err, errs.ErrInsufficientInputs)
	})
}

func TestBranchFor(t *testing.T) {
	cut := math.Log10(3.5)

	require.Equal(t, BranchGiant, BranchFor(cut, cut), "boundary is inclusive")
	require.Equal(t, BranchGiant, BranchFor(math.Nextafter(cut, 0), cut))
	require.Equal(t, BranchDwarf, BranchFor(math.Nextafter(cut, 1), cut))
	require.Equal(t, BranchDwarf, BranchFor(GiantFlagLogG, DefaultGiantLogGCut))
	require.Equal(t, BranchGiant, BranchFor(GiantFlagLogG, 3.5))
	require.Equal(t, BranchDwarf, BranchFor(DwarfFlagLogG, 3.5))
}

func TestBranchForProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		logg := rapid.Float64Range(-2, 6).Draw(t, "logg")
		cut := rapid.Float64Range(-2, 6).Draw(t, "cut")

		got := BranchFor(logg, cut)
		if (logg <= cut) != (got == BranchGiant) {
			t.Fatalf("BranchFor(%v, %v) = %s", logg, cut, got)
		}
	})
}

func TestSelectModel(t *testing.T) {
	tests := []struct {
		name string
		opts []star.Option
		want ModelType
	}{
		{"LMT", []star.Option{star.WithLuminosity(1, 0.1), star.WithMass(1, 0.1), star.WithTeff(5000, 50)}, ModelLMT},
		{"LMT beats LTg", []star.Option{star.WithLuminosity(1, 0.1), star.WithMass(1, 0.1), star.WithTeff(5000, 50), star.WithLogG(3, 0.1)}, ModelLMT},
		{"LTg", []star.Option{star.WithLuminosity(1, 0.1), star.WithTeff(5000, 50), star.WithLogG(3, 0.1)}, ModelLTg},
		{"Tg", []star.Option{star.WithTeff(5000, 50), star.WithLogG(3, 0.1)}, ModelTg},
		{"Tg with mass", []star.Option{star.WithMass(1, 0.1), star.WithTeff(5000, 50), star.WithLogG(3, 0.1)}, ModelTg},
		{"LT", []star.Option{star.WithLuminosity(1, 0.1), star.WithTeff(5000, 50)}, ModelLT},
		{"LT with flag", []star.Option{star.WithLuminosity(1, 0.1), star.WithTeff(5000, 50), star.WithGiant(false)}, ModelLT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectModel(mustInputs(t, tt.opts...))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, opts := range [][]star.Option{
		{star.WithLogG(3, 0.1)},
		{star.WithLuminosity(1, 0.1), star.WithMass(1, 0.1)},
		{star.WithTeff(5000, 50), star.WithGiant(true)},
		{},
	} {
		_, err := SelectModel(mustInputs(t, opts...))
		require.ErrorIs(t, err, errs.ErrNoApplicableModel)
	}
}

func TestConfigure(t *testing.T) {
	table := testtable.Full()

	t.Run("LMT without gravity", func(t *testing.T) {
		in := mustInputs(t,
			star.WithLuminosity(12.006, 1.131),
			star.WithMass(1.304, 0.064),
			star.WithTeff(4963.00, 80.000),
		)
		cfg, err := Configure(table, in)
		require.NoError(t, err)

		require.Equal(t, ModelLMT, cfg.Model)
		require.Equal(t, LogGFromLMT, cfg.LogGSource)
		require.InDelta(t, 3.212, cfg.LogG, 1e-3)
		// 3.212 > log10(3.5)
		require.Equal(t, BranchDwarf, cfg.Branch)
		require.InDelta(t, 1.93, cfg.CorrectionFactor, 0)

		alpha, ok := cfg.Coefficients.Coefficient(RoleAlpha)
		require.True(t, ok)
		require.Equal(t, table.MustLookup("RV_RMS_All_Dwarf_LMT_alpha"), alpha)
	})

	t.Run("LMT on giant branch with physical cut", func(t *testing.T) {
		in := mustInputs(t,
			star.WithLuminosity(12.006, 1.131),
			star.WithMass(1.304, 0.064),
			star.WithTeff(4963.00, 80.000),
		)
		cfg, err := Configure(table, in, WithGiantLogGCut(3.5))
		require.NoError(t, err)
		require.Equal(t, BranchGiant, cfg.Branch)

		gamma, ok := cfg.Coefficients.Coefficient(RoleGamma)
		require.True(t, ok)
		require.Equal(t, table.MustLookup("RV_RMS_All_Giant_LMT_gamma"), gamma)
	})

	t.Run("Tg with default factor", func(t *testing.T) {
		in := mustInputs(t, star.WithTeff(4963.00, 80.000), star.WithLogG(3.210, 0.006))
		cfg, err := Configure(table, in)
		require.NoError(t, err)

		require.Equal(t, ModelTg, cfg.Model)
		require.Equal(t, BranchDwarf, cfg.Branch)
		require.Equal(t, LogGFromGravity, cfg.LogGSource)
		require.InDelta(t, 2.01, cfg.CorrectionFactor, 0)
	})

	t.Run("explicit correction factor", func(t *testing.T) {
		in := mustInputs(t, star.WithLuminosity(12, 1), star.WithTeff(4963, 80), star.WithGiant(true), star.WithCorrectionFactor(1.6))
		cfg, err := Configure(table, in)
		require.NoError(t, err)
		require.Equal(t, ModelLT, cfg.Model)
		require.InDelta(t, 1.6, cfg.CorrectionFactor, 0)
		require.InDelta(t, 1.6, cfg.Estimator().CorrectionFactor(), 0)
	})

	t.Run("insufficient inputs", func(t *testing.T) {
		_, err := Configure(table, mustInputs(t))
		require.ErrorIs(t, err, errs.ErrInsufficientInputs)
	})

	t.Run("gravity alone", func(t *testing.T) {
		_, err := Configure(table, mustInputs(t, star.WithLogG(3.21, 0.006)))
		require.ErrorIs(t, err, errs.ErrNoApplicableModel)
		require.NotErrorIs(t, err, errs.ErrInsufficientInputs)
	})

	t.Run("missing coefficient", func(t *testing.T) {
		partial := testtable.Without("RV_RMS_All_Dwarf_Tg_gamma")
		in := mustInputs(t, star.WithTeff(4963.00, 80.000), star.WithLogG(3.210, 0.006))

		_, err := Configure(partial, in)
		require.ErrorIs(t, err, errs.ErrMissingCoefficient)

		var missing *errs.MissingCoefficientError
		require.True(t, errors.As(err, &missing))
		require.Equal(t, "RV_RMS_All_Dwarf_Tg_gamma", missing.Name)
	})

	t.Run("missing coefficient of another model is still fatal", func(t *testing.T) {
		partial := testtable.Without("RV_RMS_All_Dwarf_LT_alpha")
		in := mustInputs(t, star.WithTeff(4963.00, 80.000), star.WithLogG(3.210, 0.006))

		_, err := Configure(partial, in)
		require.ErrorIs(t, err, errs.ErrMissingCoefficient)
	})

	t.Run("missing coefficient on the other branch is fine", func(t *testing.T) {
		partial := testtable.Without("RV_RMS_All_Giant_Tg_gamma")
		in := mustInputs(t, star.WithTeff(4963.00, 80.000), star.WithLogG(3.210, 0.006))

		_, err := Configure(partial, in)
		require.NoError(t, err)
	})

	t.Run("invalid cut", func(t *testing.T) {
		in := mustInputs(t, star.WithTeff(4963.00, 80.000), star.WithLogG(3.210, 0.006))
		_, err := Configure(table, in, WithGiantLogGCut(math.NaN()))
		require.Error(t, err)
	})

	t.Run("struct literal inputs are validated", func(t *testing.T) {
		in := &star.Inputs{Teff: &star.Measurement{Value: math.NaN(), Err: 1}, LogG: &star.Measurement{Value: 3, Err: 0.1}}
		_, err := Configure(table, in)
		require.ErrorIs(t, err, errs.ErrInvalidMeasurement)
	})
}

func TestConfigureLogsDecision(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	in := mustInputs(t, star.WithLuminosity(12, 1), star.WithTeff(4963, 80), star.WithLogG(3.21, 0.006))

	_, err := Configure(testtable.Full(), in, WithLogger(zap.New(core)))
	require.NoError(t, err)

	entries := logs.FilterMessage("model configured").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "LTg", fields["model"])
	require.Equal(t, "Dwarf", fields["branch"])
}

func TestConfigDistribution(t *testing.T) {
	table := testtable.Full()
	in := mustInputs(t, star.WithLuminosity(12, 1), star.WithTeff(4963, 80), star.WithLogG(3.21, 0.006))
	cfg, err := Configure(table, in)
	require.NoError(t, err)
	require.Equal(t, ModelLTg, cfg.Model)

	for _, v := range cfg.Variables() {
		mean, sigma, err := cfg.Distribution(v, in)
		require.NoError(t, err, v.String())

		switch {
		case v.Input && v.Quantity == QuantityGravity:
			require.InDelta(t, math.Pow(10, 3.21), mean, 1e-9)
			require.InDelta(t, 0.006/math.Ln10/3.21, sigma, 1e-15)
		case v.Input && v.Quantity == QuantityTeff:
			require.InDelta(t, 4963.0, mean, 0)
			require.InDelta(t, 80.0, sigma, 0)
		case !v.Input && v.Role == RoleEpsilon:
			// stored under the positional "delta" suffix
			want := table.MustLookup(coeftable.Name("Dwarf", "LTg", "delta"))
			require.InDelta(t, want.Value, mean, 0)
			require.InDelta(t, want.Err, sigma, 0)
		}
	}

	_, _, err = cfg.Distribution(Variable{Role: RoleGamma}, in)
	require.Error(t, err)
}
