// Package si declares the dimensions, relations and named units used
// throughout this module's examples and tooling: time, frequency, power and
// energy. It is ordinary calling code for package unit — any package can
// declare its own dimensions the same way.
package si

import (
	"github.com/X-Neon/simple-units/unit"
)

// Time is the time dimension. Its base unit is the second, and it bridges
// to time.Duration.
type Time struct{}

func (Time) Symbol() string { return "s" }
func (Time) TimeDimension() {}

// Frequency is the frequency dimension, base unit hertz.
type Frequency struct{}

func (Frequency) Symbol() string { return "Hz" }

// Power is the power dimension, base unit watt.
type Power struct{}

func (Power) Symbol() string { return "W" }

// Energy is the energy dimension, base unit joule.
type Energy struct{}

func (Energy) Symbol() string { return "J" }

var (
	// PowerTime declares seconds × watts = joules, which also carries the
	// derived relations: joules / watts = seconds, joules / seconds = watts.
	PowerTime = unit.DeclareMul[Time, Power, Energy]()

	// TimeFrequency declares that time and frequency are inverses: their
	// product is a bare count of cycles.
	TimeFrequency = unit.DeclareInverse[Time, Frequency]()
)

// Named unit types. The generic forms remain available for other
// representations and scales, e.g. unit.Unit[si.Time, int16, unit.Mega].
type (
	Second    = unit.Unit[Time, int64, unit.One]
	Hertz     = unit.Unit[Frequency, int64, unit.One]
	Watt      = unit.Unit[Power, int64, unit.One]
	Kilowatt  = unit.Unit[Power, int64, unit.Kilo]
	KilowattF = unit.Unit[Power, float64, unit.Kilo]
	Joule     = unit.Unit[Energy, int64, unit.One]
	Megajoule = unit.Unit[Energy, float64, unit.Mega]
)

func Seconds(n int64) Second { return unit.New[Time, int64, unit.One](n) }

func Hz(n int64) Hertz { return unit.New[Frequency, int64, unit.One](n) }

func Watts(n int64) Watt { return unit.New[Power, int64, unit.One](n) }

func Kilowatts(n int64) Kilowatt { return unit.New[Power, int64, unit.Kilo](n) }

func Joules(n int64) Joule { return unit.New[Energy, int64, unit.One](n) }

func Megajoules(x float64) Megajoule { return unit.New[Energy, float64, unit.Mega](x) }
