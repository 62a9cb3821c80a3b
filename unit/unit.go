package unit

// Unit is a quantity of dimension D: a single stored count of type R, where
// one count is worth S base units of D. The meaning of a Unit value is
// always count × scale base units; converting between scales changes the
// count, never the meaning.
//
// Units are plain values. Copying is free, the zero value is a zero
// quantity, and no method mutates its receiver.
type Unit[D Dimension, R Rep, S Scale] struct {
	v R
}

// New constructs a quantity from a raw count, taken verbatim in the
// quantity's own scale. Narrowing at construction is impossible by
// construction: the count already has the representation type, and Go
// performs no implicit numeric conversions that could smuggle a fractional
// value into an integral R.
func New[D Dimension, R Rep, S Scale](v R) Unit[D, R, S] {
	return Unit[D, R, S]{v: v}
}

// Zero returns the zero quantity of the given type.
func Zero[D Dimension, R Rep, S Scale]() Unit[D, R, S] {
	return Unit[D, R, S]{}
}

// Min returns the quantity with the lowest representable count.
func Min[D Dimension, R Rep, S Scale]() Unit[D, R, S] {
	return Unit[D, R, S]{v: minRep[R]()}
}

// Max returns the quantity with the highest representable count.
func Max[D Dimension, R Rep, S Scale]() Unit[D, R, S] {
	return Unit[D, R, S]{v: maxRep[R]()}
}

// Count returns the raw stored count in the quantity's own scale, with no
// conversion.
func (u Unit[D, R, S]) Count() R {
	return u.v
}

// Value returns the quantity's magnitude in whole base units of its
// dimension, as a float64. Use ValueAs to pick another representation.
func (u Unit[D, R, S]) Value() float64 {
	return ValueAs[float64](u)
}

// ValueAs returns the quantity's magnitude in whole base units of its
// dimension, converted to R2 with Cast semantics (truncating for integral
// R2).
func ValueAs[R2 Rep, D Dimension, R Rep, S Scale](u Unit[D, R, S]) R2 {
	return Cast[R2, One](u).Count()
}

// Neg returns the negated quantity.
func (u Unit[D, R, S]) Neg() Unit[D, R, S] {
	return Unit[D, R, S]{v: -u.v}
}

// Add returns u + v. The operand must have the identical type; use the
// package-level Add to combine quantities of differing representation or
// scale.
func (u Unit[D, R, S]) Add(v Unit[D, R, S]) Unit[D, R, S] {
	return Unit[D, R, S]{v: u.v + v.v}
}

// Sub returns u - v for an operand of the identical type.
func (u Unit[D, R, S]) Sub(v Unit[D, R, S]) Unit[D, R, S] {
	return Unit[D, R, S]{v: u.v - v.v}
}

// Mul scales the count by a dimensionless factor. The scale and dimension
// are unchanged.
func (u Unit[D, R, S]) Mul(k R) Unit[D, R, S] {
	return Unit[D, R, S]{v: u.v * k}
}

// Div divides the count by a dimensionless factor, with the representation's
// own division semantics (truncating for integral R).
func (u Unit[D, R, S]) Div(k R) Unit[D, R, S] {
	return Unit[D, R, S]{v: u.v / k}
}

// RemScalar returns the remainder of the count by a dimensionless factor.
// Defined for integral representations only.
func RemScalar[D Dimension, R Integer, S Scale](u Unit[D, R, S], k R) Unit[D, R, S] {
	return Unit[D, R, S]{v: u.Count() % k}
}
