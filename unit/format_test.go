package unit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/X-Neon/simple-units/unit"
)

// minute is a custom scale with no metric prefix.
type minute struct{}

func (minute) Factor() unit.Ratio { return unit.NewRatio(60, 1) }

func TestStringMetricPrefixes(t *testing.T) {
	assert.Equal(t, "5s", ticks(5).String())
	assert.Equal(t, "2.5ks", unit.New[tick, float64, unit.Kilo](2.5).String())
	assert.Equal(t, "3µs", unit.New[tick, int64, unit.Micro](3).String())
	assert.Equal(t, "50ns", unit.New[tick, int64, unit.Nano](50).String())
	assert.Equal(t, "7Gm", unit.New[length, int64, unit.Giga](7).String())
}

func TestStringBracketedScales(t *testing.T) {
	assert.Equal(t, "7[60]s", unit.New[tick, int64, minute](7).String())
	assert.Equal(t, "3[1/100]m", unit.New[length, int64, unit.Centi](3).String())
}

func TestStringDimensionless(t *testing.T) {
	// Dimensionless quantities have no symbol; only count and scale print.
	assert.Equal(t, "1000n", unit.AsMilli.String())
}
