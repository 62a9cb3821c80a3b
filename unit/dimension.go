package unit

// Dimension is the constraint satisfied by dimension tags: zero-size marker
// types identifying a kind of physical quantity. Two tags name the same
// dimension only when they are the identical declared type; there is no
// subtyping between dimensions.
//
// A tag is a struct and a symbol:
//
//	type Energy struct{}
//
//	func (Energy) Symbol() string { return "J" }
type Dimension interface {
	Symbol() string
}

// DurationDimension is the subset of dimension tags that bridge to
// time.Duration. A tag opts in by also implementing the TimeDimension
// marker method; quantities of any other dimension cannot be used with
// FromDuration or ToDuration at all.
type DurationDimension interface {
	Dimension
	TimeDimension()
}

// Dimensionless is the tag for plain numbers that still carry a scale, such
// as the As* prefix constants below. It is the result dimension of inverse
// relations and of dividing a quantity by another of the same dimension.
type Dimensionless struct{}

func (Dimensionless) Symbol() string { return "" }

// Dimensionless scalars used to force a quotient into a particular scale,
// e.g. AsNano / hz(2e7) is a nanosecond count.
var (
	AsNano  = New[Dimensionless, int64, Nano](1_000_000_000)
	AsMicro = New[Dimensionless, int64, Nano](1_000_000)
	AsMilli = New[Dimensionless, int64, Nano](1_000)
)
