package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Value    float64
	Name     string
	LastCall string
}

var errNegative = errors.New("value cannot be negative")

func withValue(v float64) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if v < 0 {
			return errNegative
		}
		c.Value = v
		c.LastCall = "withValue"

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.Name = name
		c.LastCall = "withName"
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withValue(1.93), withName("LMT"))

		require.NoError(t, err)
		require.InDelta(t, 1.93, cfg.Value, 0)
		require.Equal(t, "LMT", cfg.Name)
		require.Equal(t, "withName", cfg.LastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, withValue(2.01), withValue(-1), withName("not applied"))

		require.ErrorIs(t, err, errNegative)
		require.InDelta(t, 2.01, cfg.Value, 0)
		require.Empty(t, cfg.Name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}

		err := Apply(cfg, nil, withName("Tg"), nil)

		require.NoError(t, err)
		require.Equal(t, "Tg", cfg.Name)
	})

	t.Run("no options leaves target unchanged", func(t *testing.T) {
		cfg := &testConfig{Value: 1.87}

		require.NoError(t, Apply(cfg))
		require.InDelta(t, 1.87, cfg.Value, 0)
	})
}

func TestNoErrorWithPrimitiveTarget(t *testing.T) {
	var n int
	require.NoError(t, Apply(&n, Option[*int](NoError(func(p *int) { *p = 42 }))))
	require.Equal(t, 42, n)
}
