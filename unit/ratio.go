package unit

import (
	"fmt"

	"github.com/X-Neon/simple-units/errors"
)

// Ratio is a positive rational number in lowest terms. Scales report their
// factor as a Ratio, and all scale arithmetic (conversion ratios, common
// scales, relation products) is carried out on reduced Ratios so that
// multiply-before-divide stays exact for integral counts.
type Ratio struct {
	Num int64
	Den int64
}

// NewRatio returns num/den reduced to lowest terms. Both arguments must be
// positive; a scale factor of zero or below has no meaning here.
func NewRatio(num, den int64) Ratio {
	if num <= 0 || den <= 0 {
		panic(errors.Newf("unit: ratio %d/%d is not positive", num, den))
	}
	g := gcd(num, den)
	return Ratio{Num: num / g, Den: den / g}
}

// Mul returns r×o in lowest terms. Cross-cancellation happens before the
// multiplications so intermediate products stay small; a product that still
// does not fit in int64 panics rather than wrapping, since a wrapped scale
// factor would corrupt every count converted through it.
func (r Ratio) Mul(o Ratio) Ratio {
	g1 := gcd(r.Num, o.Den)
	g2 := gcd(o.Num, r.Den)
	return Ratio{
		Num: mulExact(r.Num/g1, o.Num/g2),
		Den: mulExact(r.Den/g2, o.Den/g1),
	}
}

// Div returns r/o in lowest terms.
func (r Ratio) Div(o Ratio) Ratio {
	return r.Mul(Ratio{Num: o.Den, Den: o.Num})
}

// Inv returns the reciprocal of r.
func (r Ratio) Inv() Ratio {
	return Ratio{Num: r.Den, Den: r.Num}
}

// Float returns r as a float64.
func (r Ratio) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

func (r Ratio) String() string {
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// CommonScale returns the finest scale that evenly divides both a and b:
// the gcd of the numerators over the lcm of the denominators. Converting
// either operand of a binary operation to the common scale multiplies its
// count by an integer, so addition, subtraction and comparison across
// scales are always exact.
func CommonScale(a, b Ratio) Ratio {
	// Already in lowest terms: any prime dividing both numerators cannot
	// divide either denominator.
	return Ratio{
		Num: gcd(a.Num, b.Num),
		Den: mulExact(a.Den/gcd(a.Den, b.Den), b.Den),
	}
}

// mulExact multiplies two positive int64s, panicking on overflow. The scale
// ratios these arise from are type-level constants, so an overflowing pair
// of scales is a programming error caught on first use.
func mulExact(x, y int64) int64 {
	p := x * y
	if x != 0 && p/x != y {
		panic(errors.Newf("unit: scale ratio %d × %d overflows int64", x, y))
	}
	return p
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// canon normalizes a caller-supplied scale factor. User scale types are free
// to return an unreduced ratio from Factor; everything downstream assumes
// lowest terms.
func canon(r Ratio) Ratio {
	return NewRatio(r.Num, r.Den)
}
