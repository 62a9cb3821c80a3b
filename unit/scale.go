package unit

import "fmt"

// Scale is a type-level rational multiplier from a quantity's stored count
// to its dimension's base unit. Scales are zero-size marker types; their
// factor is read from the zero value, so a Scale carries no storage in the
// quantity itself.
//
// Custom scales are a type and a method:
//
//	type Minute struct{}
//
//	func (Minute) Factor() unit.Ratio { return unit.NewRatio(60, 1) }
type Scale interface {
	Factor() Ratio
}

// The standard metric scales.
type (
	Exa   struct{}
	Peta  struct{}
	Tera  struct{}
	Giga  struct{}
	Mega  struct{}
	Kilo  struct{}
	Hecto struct{}
	Deca  struct{}
	One   struct{}
	Deci  struct{}
	Centi struct{}
	Milli struct{}
	Micro struct{}
	Nano  struct{}
	Pico  struct{}
	Femto struct{}
	Atto  struct{}
)

func (Exa) Factor() Ratio   { return Ratio{1_000_000_000_000_000_000, 1} }
func (Peta) Factor() Ratio  { return Ratio{1_000_000_000_000_000, 1} }
func (Tera) Factor() Ratio  { return Ratio{1_000_000_000_000, 1} }
func (Giga) Factor() Ratio  { return Ratio{1_000_000_000, 1} }
func (Mega) Factor() Ratio  { return Ratio{1_000_000, 1} }
func (Kilo) Factor() Ratio  { return Ratio{1_000, 1} }
func (Hecto) Factor() Ratio { return Ratio{100, 1} }
func (Deca) Factor() Ratio  { return Ratio{10, 1} }
func (One) Factor() Ratio   { return Ratio{1, 1} }
func (Deci) Factor() Ratio  { return Ratio{1, 10} }
func (Centi) Factor() Ratio { return Ratio{1, 100} }
func (Milli) Factor() Ratio { return Ratio{1, 1_000} }
func (Micro) Factor() Ratio { return Ratio{1, 1_000_000} }
func (Nano) Factor() Ratio  { return Ratio{1, 1_000_000_000} }
func (Pico) Factor() Ratio  { return Ratio{1, 1_000_000_000_000} }
func (Femto) Factor() Ratio { return Ratio{1, 1_000_000_000_000_000} }
func (Atto) Factor() Ratio  { return Ratio{1, 1_000_000_000_000_000_000} }

// factorOf returns the normalized factor of the scale type S.
func factorOf[S Scale]() Ratio {
	var s S
	return canon(s.Factor())
}

// metricPrefixes maps a scale factor to the prefix printed between a count
// and a dimension symbol. Deci through hecto have no single-letter metric
// prefix in this table and fall through to the bracketed form, matching
// the display contract.
var metricPrefixes = map[Ratio]string{
	{1_000_000_000_000_000_000, 1}: "E",
	{1_000_000_000_000_000, 1}:     "P",
	{1_000_000_000_000, 1}:         "T",
	{1_000_000_000, 1}:             "G",
	{1_000_000, 1}:                 "M",
	{1_000, 1}:                     "k",
	{1, 1}:                         "",
	{1, 1_000}:                     "m",
	{1, 1_000_000}:                 "µ",
	{1, 1_000_000_000}:             "n",
	{1, 1_000_000_000_000}:         "p",
	{1, 1_000_000_000_000_000}:     "f",
	{1, 1_000_000_000_000_000_000}: "a",
}

// prefixFor renders a scale factor for display: a metric prefix when one
// exists, otherwise "[num]" or "[num/den]".
func prefixFor(r Ratio) string {
	if p, ok := metricPrefixes[r]; ok {
		return p
	}
	if r.Den == 1 {
		return fmt.Sprintf("[%d]", r.Num)
	}
	return fmt.Sprintf("[%d/%d]", r.Num, r.Den)
}

// Prefix describes one metric prefix known to the display layer.
type Prefix struct {
	Name   string
	Symbol string
	Factor Ratio
}

// Prefixes returns the metric prefixes with single-symbol spellings,
// ordered from largest factor to smallest.
func Prefixes() []Prefix {
	return []Prefix{
		{"exa", "E", Ratio{1_000_000_000_000_000_000, 1}},
		{"peta", "P", Ratio{1_000_000_000_000_000, 1}},
		{"tera", "T", Ratio{1_000_000_000_000, 1}},
		{"giga", "G", Ratio{1_000_000_000, 1}},
		{"mega", "M", Ratio{1_000_000, 1}},
		{"kilo", "k", Ratio{1_000, 1}},
		{"", "", Ratio{1, 1}},
		{"milli", "m", Ratio{1, 1_000}},
		{"micro", "µ", Ratio{1, 1_000_000}},
		{"nano", "n", Ratio{1, 1_000_000_000}},
		{"pico", "p", Ratio{1, 1_000_000_000_000}},
		{"femto", "f", Ratio{1, 1_000_000_000_000_000}},
		{"atto", "a", Ratio{1, 1_000_000_000_000_000_000}},
	}
}
