package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/X-Neon/simple-units/unit"
)

func TestCastAcrossScales(t *testing.T) {
	kilo := unit.New[tick, int64, unit.Kilo](5)

	assert.Equal(t, int64(5000), unit.Cast[int64, unit.One](kilo).Count())
	assert.Equal(t, int64(5_000_000), unit.Cast[int64, unit.Milli](kilo).Count())
	assert.Equal(t, 5.0, unit.Cast[float64, unit.Kilo](kilo).Count())
}

func TestCastTruncates(t *testing.T) {
	// Cast is the explicit escape hatch: integral division truncates.
	u := ticks(5500)
	assert.Equal(t, int64(5), unit.Cast[int64, unit.Kilo](u).Count())

	f := unit.New[tick, float64, unit.One](5500)
	assert.Equal(t, 5.5, unit.Cast[float64, unit.Kilo](f).Count())
}

func TestCastRoundTrip(t *testing.T) {
	// Exact when both directions are non-narrowing.
	u := unit.New[tick, int64, unit.Kilo](7)
	back := unit.Cast[int64, unit.Kilo](unit.Cast[int64, unit.One](u))
	assert.Equal(t, u, back)

	f := unit.New[tick, float64, unit.One](0.25)
	fback := unit.Cast[float64, unit.One](unit.Cast[float64, unit.Kilo](f))
	assert.Equal(t, f, fback)
}

func TestCastOverflowingScaleRatioPanics(t *testing.T) {
	// Kilo to atto needs a 10²¹ conversion ratio, which no int64 holds.
	// A wrapped ratio would pass the narrowing guard and silently corrupt
	// the count, so the ratio arithmetic refuses it outright.
	kilo := unit.New[tick, int64, unit.Kilo](1)
	require.Panics(t, func() { unit.Cast[int64, unit.Atto](kilo) })
	require.Panics(t, func() { unit.Convert[int64, unit.Atto](kilo) })

	exa := unit.New[tick, int64, unit.Exa](1)
	require.Panics(t, func() { unit.Cast[int64, unit.Atto](exa) })

	// The full span collapses when the operand scales cancel.
	atto := unit.New[tick, int64, unit.Atto](5)
	assert.Equal(t, int64(5), unit.DivFold[int64](atto, unit.New[tick, int64, unit.Atto](1)))
}

func TestConvertGuard(t *testing.T) {
	t.Run("integral to coarser integral is rejected", func(t *testing.T) {
		_, err := unit.Convert[int64, unit.Kilo](ticks(5000))
		require.Error(t, err)
		assert.ErrorIs(t, err, unit.ErrNarrowing)
	})

	t.Run("rejection is static, even for values that would survive", func(t *testing.T) {
		// 5000 is a whole number of kilo-units; the guard still refuses,
		// because the type pair can truncate.
		_, err := unit.Convert[int64, unit.Kilo](ticks(5000))
		require.Error(t, err)
	})

	t.Run("floating source into integral target is rejected", func(t *testing.T) {
		f := unit.New[tick, float64, unit.One](5)
		_, err := unit.Convert[int64, unit.One](f)
		require.Error(t, err)
		assert.ErrorIs(t, err, unit.ErrNarrowing)
	})

	t.Run("integral to finer integral succeeds", func(t *testing.T) {
		u, err := unit.Convert[int64, unit.One](unit.New[tick, int64, unit.Kilo](5))
		require.NoError(t, err)
		assert.Equal(t, int64(5000), u.Count())
	})

	t.Run("anything into floating target succeeds", func(t *testing.T) {
		u, err := unit.Convert[float64, unit.Kilo](ticks(500))
		require.NoError(t, err)
		assert.Equal(t, 0.5, u.Count())
	})
}

func TestMustConvert(t *testing.T) {
	assert.Equal(t, int64(5000), unit.MustConvert[int64, unit.One](unit.New[tick, int64, unit.Kilo](5)).Count())
	require.Panics(t, func() {
		unit.MustConvert[int64, unit.Kilo](ticks(5))
	})
}
