package si_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/X-Neon/simple-units/si"
	"github.com/X-Neon/simple-units/unit"
)

func TestHouseholdPower(t *testing.T) {
	pc := si.Watts(500)
	kettle := si.Kilowatts(2)

	total := unit.Add[int64, unit.One](kettle, pc)
	assert.True(t, unit.Equal(total, si.Watts(2500)))

	totalKW := unit.Cast[float64, unit.Kilo](total)
	assert.Equal(t, 2.5, totalKW.Count())
	assert.Equal(t, "2.5kW", totalKW.String())

	assert.Equal(t, int64(4), unit.DivFold[int64](kettle, pc))
}

func TestEnergyFromPowerAndTime(t *testing.T) {
	kettle := si.Kilowatts(2)
	elapsed := si.Seconds(4)

	e := unit.Mul[int64, unit.One](si.PowerTime, elapsed, kettle)
	assert.True(t, unit.Equal(e, si.Joules(8000)))

	// The same product under a coarser floating representation.
	mj := unit.Mul[float64, unit.Mega](si.PowerTime, elapsed, kettle)
	assert.Equal(t, 0.008, mj.Count())
	assert.True(t, unit.Equal(mj, si.Joules(8000)))
}

func TestTotalEnergyScenario(t *testing.T) {
	total := unit.Add[int64, unit.One](si.Kilowatts(2), si.Watts(500))
	e := unit.Mul[int64, unit.One](si.PowerTime, si.Seconds(4), total)
	assert.True(t, unit.Equal(e, si.Megajoules(0.01)))
	assert.True(t, unit.Equal(e, si.Joules(10000)))
}

func TestSecondsAcrossScalesAndReps(t *testing.T) {
	assert.Equal(t, int64(5), si.Seconds(5).Count())
	assert.Equal(t, 5.0, si.Seconds(5).Value())

	kilo := unit.New[si.Time, int64, unit.Kilo](5)
	assert.True(t, unit.Equal(kilo, si.Seconds(5000)))
	assert.Equal(t, int64(5), kilo.Count())
	assert.Equal(t, 5000.0, kilo.Value())

	assert.True(t, unit.Equal(unit.New[si.Time, int16, unit.Mega](5), si.Seconds(5_000_000)))
	assert.True(t, unit.Equal(unit.New[si.Time, float64, unit.Kilo](0.5), si.Seconds(500)))
}

func TestSecondQuotients(t *testing.T) {
	assert.Equal(t, int64(2), unit.DivFold[int64](si.Seconds(6), si.Seconds(3)))
	assert.Equal(t, int64(0), unit.DivFold[int64](si.Seconds(1), si.Seconds(2)))
	assert.Equal(t, 0.5, unit.DivFold[float64](unit.New[si.Time, float64, unit.One](1), si.Seconds(2)))
	assert.Equal(t, int64(500), unit.DivFold[int64](unit.New[si.Time, int64, unit.Kilo](1), si.Seconds(2)))
}

func TestSecondArithmetic(t *testing.T) {
	assert.Equal(t, si.Seconds(2), si.Seconds(6).Div(3))
	assert.Equal(t, si.Seconds(6), si.Seconds(3).Mul(2))
	assert.Equal(t, si.Seconds(5), si.Seconds(3).Add(si.Seconds(2)))
	assert.Equal(t, si.Seconds(3), si.Seconds(5).Sub(si.Seconds(2)))

	kilo := unit.New[si.Time, int64, unit.Kilo](1)
	assert.True(t, unit.Equal(unit.Add[int64, unit.One](kilo, si.Seconds(1)), si.Seconds(1001)))
	assert.True(t, unit.Equal(unit.Sub[int64, unit.One](kilo, si.Seconds(1)), si.Seconds(999)))

	assert.True(t, unit.Equal(unit.Rem[int64, unit.One](si.Seconds(3), si.Seconds(2)), si.Seconds(1)))
	assert.Equal(t, si.Seconds(1), unit.RemScalar(si.Seconds(3), 2))
}

func TestFrequencyIsInverseTime(t *testing.T) {
	assert.Equal(t, int64(6), unit.MulFold[int64](si.TimeFrequency, si.Seconds(3), si.Hz(2)))
	assert.Equal(t, int64(6), unit.MulFold[int64](si.TimeFrequency.Swap(), si.Hz(2), si.Seconds(3)))

	kilo := unit.New[si.Time, int64, unit.Kilo](3)
	assert.Equal(t, int64(6000), unit.MulFold[int64](si.TimeFrequency, kilo, si.Hz(2)))

	milli := unit.New[si.Frequency, int64, unit.Milli](2)
	assert.Equal(t, int64(6), unit.MulFold[int64](si.TimeFrequency, kilo, milli))
}

func TestClockPeriod(t *testing.T) {
	period := unit.Div[int64, unit.Nano](si.TimeFrequency.Swap(), unit.AsNano, si.Hz(20_000_000))
	assert.True(t, unit.Equal(period, unit.New[si.Time, int64, unit.Nano](50)))
}

func TestPowerTimeProductBothOrders(t *testing.T) {
	assert.True(t, unit.Equal(
		unit.Mul[int64, unit.One](si.PowerTime, si.Seconds(3), si.Watts(2)),
		si.Joules(6),
	))
	assert.True(t, unit.Equal(
		unit.Mul[int64, unit.One](si.PowerTime.Swap(), si.Watts(2), si.Seconds(3)),
		si.Joules(6),
	))

	kilo := unit.New[si.Time, int64, unit.Kilo](3)
	assert.True(t, unit.Equal(
		unit.Mul[int64, unit.One](si.PowerTime, kilo, si.Watts(2)),
		si.Joules(6000),
	))

	milliWatts := unit.New[si.Power, int64, unit.Milli](2)
	assert.True(t, unit.Equal(
		unit.Mul[int64, unit.One](si.PowerTime, kilo, milliWatts),
		si.Joules(6),
	))
}

func TestEnergyPerPowerIsTime(t *testing.T) {
	// joules / watts = seconds, implied by the single PowerTime declaration.
	elapsed := unit.Div[int64, unit.One](si.PowerTime.Swap(), si.Joules(6), si.Watts(2))
	assert.True(t, unit.Equal(elapsed, si.Seconds(3)))
}

func TestDurationBridge(t *testing.T) {
	d := unit.ToDuration(si.Seconds(5))
	assert.Equal(t, 5*time.Second, d)

	back, err := unit.FromDuration[si.Time, int64, unit.One](d)
	require.NoError(t, err)
	assert.Equal(t, si.Seconds(5), back)

	kilo := unit.New[si.Time, int64, unit.Kilo](5)
	assert.Equal(t, 5000*time.Second, unit.ToDuration(kilo))

	fromKilo, err := unit.FromDuration[si.Time, int64, unit.One](unit.ToDuration(kilo))
	require.NoError(t, err)
	assert.True(t, unit.Equal(fromKilo, kilo))
}

func TestDeclaredRelationsAreListed(t *testing.T) {
	rels := unit.Relations()

	var powerTime, timeFreq bool
	for _, r := range rels {
		if r.LeftSym == "s" && r.RightSym == "W" && r.ResultSym == "J" {
			powerTime = true
		}
		if r.LeftSym == "s" && r.RightSym == "Hz" && r.ResultSym == "" {
			timeFreq = true
		}
	}
	assert.True(t, powerTime, "s × W = J should be listed")
	assert.True(t, timeFreq, "s × Hz = (dimensionless) should be listed")
}
