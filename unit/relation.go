package unit

import (
	"reflect"
	"sort"
	"sync"

	"github.com/X-Neon/simple-units/errors"
)

// Rule is the witness that a multiplicative relation A × B = C has been
// declared. The dimension-changing operators take a Rule as their first
// argument, so multiplying or dividing dimensions with no declared relation
// is a compile error: no witness of the needed type exists. Rules are minted
// only by DeclareMul and DeclareInverse; the interface cannot be implemented
// outside this package.
type Rule[A, B, C Dimension] interface {
	// Swap returns the witness for the commuted product B × A = C.
	Swap() Rule[B, A, C]

	sealed(A, B, C)
}

type rule[A, B, C Dimension] struct{}

func (rule[A, B, C]) Swap() Rule[B, A, C] { return rule[B, A, C]{} }
func (rule[A, B, C]) sealed(A, B, C)      {}

// DeclareMul declares the relation A × B = C and returns its witness. One
// declaration structurally implies the full family: B × A = C through
// Rule.Swap, and C / A = B, C / B = A through Div.
//
// Declarations are type-level facts, made once at package init. Declaring a
// conflicting result for an already-declared ordered pair panics at init;
// re-declaring the identical relation is redundant but harmless.
func DeclareMul[A, B, C Dimension]() Rule[A, B, C] {
	ta, tb, tc := tagType[A](), tagType[B](), tagType[C]()

	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.put(registry.products, "×", pair{ta, tb}, tc)
	registry.put(registry.products, "×", pair{tb, ta}, tc)
	registry.put(registry.quotients, "/", pair{tc, ta}, tb)
	registry.put(registry.quotients, "/", pair{tc, tb}, ta)
	registry.record(Relation{
		Left:      ta.String(),
		Right:     tb.String(),
		Result:    tc.String(),
		LeftSym:   symbolOf[A](),
		RightSym:  symbolOf[B](),
		ResultSym: symbolOf[C](),
	})
	return rule[A, B, C]{}
}

// DeclareInverse declares that A and B are inverse dimensions: their product
// is dimensionless. Shorthand for DeclareMul[A, B, Dimensionless].
func DeclareInverse[A, B Dimension]() Rule[A, B, Dimensionless] {
	return DeclareMul[A, B, Dimensionless]()
}

// Scalar returns the witness for the built-in identity relation
// D × 1 = D: multiplying a quantity by a dimensionless factor, or dividing
// by one, keeps its dimension. The identity holds for every dimension
// without declaration, Dimensionless itself included (Scalar[Dimensionless]
// is 1 × 1 = 1), so these witnesses are minted on demand and never touch
// the registry.
//
//	ms := unit.Mul[int64, unit.Nano](unit.Scalar[Time](), secs, unit.AsMilli)
//
// Read as A × B = C with A = C = D, the same witness also drives both
// division forms: Div(Scalar[D](), d, d2) is the same-dimension quotient as
// a dimensionless quantity, and Div(Scalar[D]().Swap(), d, k) divides d by
// the dimensionless k.
func Scalar[D Dimension]() Rule[D, Dimensionless, D] {
	return rule[D, Dimensionless, D]{}
}

// Mul multiplies quantities of two related dimensions. The result dimension
// comes from the witness; its exact magnitude has the product of the operand
// scales, delivered into the requested representation and scale the same way
// as the package-level Add:
//
//	e := unit.Mul[int64, unit.One](PowerTime, seconds, watts) // joules
func Mul[R3 Rep, S3 Scale, A, B, C Dimension, R1 Rep, S1 Scale, R2 Rep, S2 Scale](
	_ Rule[A, B, C], a Unit[A, R1, S1], b Unit[B, R2, S2],
) Unit[C, R3, S3] {
	s := factorOf[S1]().Mul(factorOf[S2]())
	if isFloat[R1]() || isFloat[R2]() {
		return fromCommon[R3, S3, C](term{f: float64(a.v) * float64(b.v), flt: true}, s, "product")
	}
	return fromCommon[R3, S3, C](term{i: int64(a.v) * int64(b.v)}, s, "product")
}

// Div divides a product quantity by one of its factors: given A × B = C,
// Div(rule, c, a) is c / a with dimension B. For the other factor divide
// with the swapped witness. The counts divide with the representation's own
// semantics (truncating for integral operands) and the result carries the
// quotient of the operand scales.
func Div[R3 Rep, S3 Scale, A, B, C Dimension, Rc Rep, Sc Scale, Ra Rep, Sa Scale](
	_ Rule[A, B, C], c Unit[C, Rc, Sc], a Unit[A, Ra, Sa],
) Unit[B, R3, S3] {
	s := factorOf[Sc]().Div(factorOf[Sa]())
	if isFloat[Rc]() || isFloat[Ra]() {
		return fromCommon[R3, S3, B](term{f: float64(c.v) / float64(a.v), flt: true}, s, "quotient")
	}
	return fromCommon[R3, S3, B](term{i: int64(c.v) / int64(a.v)}, s, "quotient")
}

// MulFold multiplies quantities of two inverse dimensions, collapsing to a
// plain number with the combined scale folded into the value.
func MulFold[R3 Rep, A, B Dimension, R1 Rep, S1 Scale, R2 Rep, S2 Scale](
	_ Rule[A, B, Dimensionless], a Unit[A, R1, S1], b Unit[B, R2, S2],
) R3 {
	s := factorOf[S1]().Mul(factorOf[S2]())
	if isFloat[R1]() || isFloat[R2]() {
		return R3(float64(a.v) * float64(b.v) * s.Float())
	}
	return R3(int64(a.v) * int64(b.v) * s.Num / s.Den)
}

// DivFold divides two quantities of the same dimension, collapsing to a
// plain number. The scale ratio is folded in multiply-first, so integral
// quotients across scales stay exact: 2 kW / 500 W is exactly 4.
func DivFold[R3 Rep, D Dimension, R1 Rep, S1 Scale, R2 Rep, S2 Scale](
	a Unit[D, R1, S1], b Unit[D, R2, S2],
) R3 {
	s := factorOf[S1]().Div(factorOf[S2]())
	if isFloat[R1]() || isFloat[R2]() {
		return R3(float64(a.v) * s.Float() / float64(b.v))
	}
	return R3((s.Num * int64(a.v)) / (s.Den * int64(b.v)))
}

// Relation is one declared multiplicative relation, for introspection and
// display. Left, Right and Result are the tag type names; the Sym fields
// are the dimension symbols.
type Relation struct {
	Left      string
	Right     string
	Result    string
	LeftSym   string
	RightSym  string
	ResultSym string
}

// Relations returns every declared relation, one row per DeclareMul call,
// sorted by operand type names. The implied commuted and division forms are
// not listed separately.
func Relations() []Relation {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	out := make([]Relation, len(registry.declared))
	copy(out, registry.declared)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Left != out[j].Left {
			return out[i].Left < out[j].Left
		}
		return out[i].Right < out[j].Right
	})
	return out
}

type pair struct {
	a, b reflect.Type
}

// relationRegistry is the process-global relation table. It exists for two
// reasons: conflict detection at declaration time, and introspection. The
// operators themselves never consult it; the witness types carry everything
// they need.
type relationRegistry struct {
	mu        sync.Mutex
	products  map[pair]reflect.Type
	quotients map[pair]reflect.Type
	declared  []Relation
}

var registry = relationRegistry{
	products:  make(map[pair]reflect.Type),
	quotients: make(map[pair]reflect.Type),
}

func (reg *relationRegistry) put(table map[pair]reflect.Type, op string, p pair, result reflect.Type) {
	if prev, ok := table[p]; ok {
		if prev != result {
			panic(errors.Newf("unit: conflicting relation %s %s %s: already %s, redeclared as %s",
				p.a, op, p.b, prev, result))
		}
		return
	}
	table[p] = result
}

func (reg *relationRegistry) record(r Relation) {
	for _, d := range reg.declared {
		if d == r {
			return
		}
	}
	reg.declared = append(reg.declared, r)
}

func tagType[D Dimension]() reflect.Type {
	return reflect.TypeOf(*new(D))
}

func symbolOf[D Dimension]() string {
	var d D
	return d.Symbol()
}
