// Package unit implements a type-checked algebra of physical quantities.
//
// A quantity is a [Unit], a generic value type parameterized by three
// type-level properties: a dimension tag (what kind of quantity it is),
// a numeric representation (how its count is stored), and a scale (the
// rational multiplier from the stored count to the dimension's base unit).
// A Unit stores exactly one numeric field; everything else is carried by
// the type.
//
// Dimensions are zero-size marker types declared by the caller:
//
//	type Power struct{}
//
//	func (Power) Symbol() string { return "W" }
//
// Two quantities interoperate only when they share a dimension tag, and the
// compiler rejects anything else: every operation in this package is generic
// over a single shared tag, so adding watts to seconds is a type error, not
// a runtime fault.
//
// Algebraic relations between dimensions are declared once, at package init,
// and return an unforgeable witness that the dimension-changing operators
// require:
//
//	var PowerTime = unit.DeclareMul[Time, Power, Energy]() // s × W = J
//
//	e := unit.Mul[int64, unit.One](PowerTime, elapsed, draw)
//
// One declaration carries all four implied relations: A×B=C, B×A=C (via
// [Rule.Swap]), C/A=B and C/B=A (via [Div]). Multiplying dimensions with no
// declared relation does not compile, because no witness for them exists.
//
// # Static checks in a runtime-rational world
//
// Go has no compile-time rationals and no type-level arithmetic, so two of
// the algebra's guarantees are enforced by deterministic checks over the
// instantiated types rather than by the type checker itself:
//
//   - Scale ratios are fetched from the zero value of the scale type. The
//     scale's identity is still part of the quantity's type; only its
//     numeric value is read at runtime.
//   - The narrowing guard (a conversion into an integral representation must
//     not be able to drop fractional precision) is evaluated from the type
//     parameters alone. [Convert] reports it as an error; the operator
//     functions, whose misuse is always a programming mistake visible on
//     first execution, panic instead.
//
// The guard is intentionally static: it looks only at the representations
// and the reduced scale ratio, never at the value being converted. A lossy
// conversion is rejected even when the particular value would survive it.
// [Cast] is the explicit escape hatch and truncates like integer division.
//
// Dimensions flagged as time-like (they implement the TimeDimension marker
// method) additionally convert to and from [time.Duration]; see
// [FromDuration] and [ToDuration].
package unit
