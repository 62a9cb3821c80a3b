package unit

import (
	"github.com/X-Neon/simple-units/errors"
)

// The package-level operators combine quantities of one dimension but
// differing representation or scale. Both operands are first expressed at
// their common scale (see CommonScale), where every count is an exact
// integer multiple of the original, so the operation itself is lossless.
// Computation is carried in int64, or in float64 when either representation
// is floating point; unsigned counts above math.MaxInt64 are outside the
// supported range (see Rep).
//
// Go cannot spell "the common type of these two operand types" as a result
// type, so the caller names the result's representation and scale as the
// leading type arguments:
//
//	total := unit.Add[int64, unit.One](pc, kettle)
//
// Delivery from the common scale into the requested type goes through the
// narrowing guard; requesting a type too coarse to hold the exact result is
// a programming error and panics. A floating-point result type always
// succeeds.

// Add returns a + b in the requested representation and scale.
func Add[R3 Rep, S3 Scale, D Dimension, R1 Rep, S1 Scale, R2 Rep, S2 Scale](
	a Unit[D, R1, S1], b Unit[D, R2, S2],
) Unit[D, R3, S3] {
	av, bv, cs := commonTerms(a, b)
	return fromCommon[R3, S3, D](av.add(bv), cs, "sum")
}

// Sub returns a - b in the requested representation and scale.
func Sub[R3 Rep, S3 Scale, D Dimension, R1 Rep, S1 Scale, R2 Rep, S2 Scale](
	a Unit[D, R1, S1], b Unit[D, R2, S2],
) Unit[D, R3, S3] {
	av, bv, cs := commonTerms(a, b)
	return fromCommon[R3, S3, D](av.sub(bv), cs, "difference")
}

// Rem returns the remainder of a by b in the requested representation and
// scale. Remainder is defined for integral representations only.
func Rem[R3 Integer, S3 Scale, D Dimension, R1 Integer, S1 Scale, R2 Integer, S2 Scale](
	a Unit[D, R1, S1], b Unit[D, R2, S2],
) Unit[D, R3, S3] {
	f1, f2 := factorOf[S1](), factorOf[S2]()
	cs := CommonScale(f1, f2)
	m1, m2 := f1.Div(cs), f2.Div(cs)
	v := (int64(a.v) * m1.Num) % (int64(b.v) * m2.Num)
	return fromCommon[R3, S3, D](term{i: v}, cs, "remainder")
}

// Compare orders two same-dimension quantities exactly, returning -1, 0 or
// +1. Cross-dimension comparison does not compile.
func Compare[D Dimension, R1 Rep, S1 Scale, R2 Rep, S2 Scale](
	a Unit[D, R1, S1], b Unit[D, R2, S2],
) int {
	av, bv, _ := commonTerms(a, b)
	if av.flt || bv.flt {
		x, y := av.float(), bv.float()
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	switch {
	case av.i < bv.i:
		return -1
	case av.i > bv.i:
		return 1
	}
	return 0
}

// Equal reports whether two same-dimension quantities denote the same
// physical magnitude, regardless of representation or scale.
func Equal[D Dimension, R1 Rep, S1 Scale, R2 Rep, S2 Scale](
	a Unit[D, R1, S1], b Unit[D, R2, S2],
) bool {
	return Compare(a, b) == 0
}

// Less reports whether a denotes a smaller magnitude than b.
func Less[D Dimension, R1 Rep, S1 Scale, R2 Rep, S2 Scale](
	a Unit[D, R1, S1], b Unit[D, R2, S2],
) bool {
	return Compare(a, b) < 0
}

// term is a count in the promoted computation representation: int64 for
// purely integral operands, float64 otherwise.
type term struct {
	i   int64
	f   float64
	flt bool
}

func (t term) float() float64 {
	if t.flt {
		return t.f
	}
	return float64(t.i)
}

func (t term) add(o term) term {
	if t.flt || o.flt {
		return term{f: t.float() + o.float(), flt: true}
	}
	return term{i: t.i + o.i}
}

func (t term) sub(o term) term {
	if t.flt || o.flt {
		return term{f: t.float() - o.float(), flt: true}
	}
	return term{i: t.i - o.i}
}

// commonTerms expresses both operand counts at the finest common scale.
// The per-operand multipliers are whole numbers by construction, so the
// integral path is exact.
func commonTerms[D Dimension, R1 Rep, S1 Scale, R2 Rep, S2 Scale](
	a Unit[D, R1, S1], b Unit[D, R2, S2],
) (term, term, Ratio) {
	f1, f2 := factorOf[S1](), factorOf[S2]()
	cs := CommonScale(f1, f2)
	m1, m2 := f1.Div(cs), f2.Div(cs)

	var av, bv term
	if isFloat[R1]() {
		av = term{f: float64(a.v) * m1.Float(), flt: true}
	} else {
		av = term{i: int64(a.v) * m1.Num}
	}
	if isFloat[R2]() {
		bv = term{f: float64(b.v) * m2.Float(), flt: true}
	} else {
		bv = term{i: int64(b.v) * m2.Num}
	}
	return av, bv, cs
}

// fromCommon delivers a count at scale cs into the requested result type,
// applying the narrowing rules for integral targets. The misuse cases are
// type-level mistakes, so they panic rather than return an error.
func fromCommon[R3 Rep, S3 Scale, D Dimension](v term, cs Ratio, op string) Unit[D, R3, S3] {
	r := cs.Div(factorOf[S3]())
	if isFloat[R3]() {
		return Unit[D, R3, S3]{v: R3(v.float() * r.Float())}
	}
	if v.flt {
		panic(errors.Newf("unit: %s of floating-point operands requires a floating-point result representation, not %s",
			op, repName[R3]()))
	}
	if r.Den != 1 {
		panic(errors.Newf("unit: %s result scale %s cannot exactly hold the common scale %s",
			op, factorOf[S3](), cs))
	}
	return Unit[D, R3, S3]{v: R3(v.i * r.Num)}
}
