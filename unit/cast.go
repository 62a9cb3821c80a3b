package unit

import (
	"github.com/X-Neon/simple-units/errors"
)

// ErrNarrowing marks conversions refused by the narrowing guard. Check with
// errors.Is.
var ErrNarrowing = errors.New("narrowing conversion")

// Cast converts a quantity to another representation and scale of the same
// dimension. It is the single conversion primitive: the count is widened,
// multiplied by the reduced scale ratio's numerator and only then divided by
// its denominator, and finally narrowed to R2. For integral targets the
// division truncates toward zero; Cast never refuses a conversion. Use
// Convert when the narrowing guard should apply.
//
// The dimension cannot change: D is shared between argument and result, so
// a cross-dimension cast does not compile.
func Cast[R2 Rep, S2 Scale, D Dimension, R Rep, S Scale](u Unit[D, R, S]) Unit[D, R2, S2] {
	r := factorOf[S]().Div(factorOf[S2]())
	if isFloat[R]() || isFloat[R2]() {
		v := float64(u.v) * float64(r.Num) / float64(r.Den)
		return Unit[D, R2, S2]{v: R2(v)}
	}
	v := int64(u.v) * r.Num / r.Den
	return Unit[D, R2, S2]{v: R2(v)}
}

// Convert is Cast behind the narrowing guard: it refuses any conversion
// that could silently drop fractional precision into an integral target.
// A floating-point target always succeeds. An integral target requires an
// integral source and a scale ratio that reduces to a whole number.
//
// The guard is a property of the four type parameters, never of the value:
// Convert fails for every value of a lossy type pair, even ones that would
// happen to survive, mirroring a purely static check.
func Convert[R2 Rep, S2 Scale, D Dimension, R Rep, S Scale](u Unit[D, R, S]) (Unit[D, R2, S2], error) {
	if err := narrowing[R2, S2, R, S](); err != nil {
		return Unit[D, R2, S2]{}, err
	}
	return Cast[R2, S2](u), nil
}

// MustConvert is Convert that panics on a guarded conversion. Intended for
// conversions the caller knows are exact, in the manner of regexp.MustCompile.
func MustConvert[R2 Rep, S2 Scale, D Dimension, R Rep, S Scale](u Unit[D, R, S]) Unit[D, R2, S2] {
	v, err := Convert[R2, S2](u)
	if err != nil {
		panic(err)
	}
	return v
}

// narrowing implements the guard shared by Convert and the duration bridge.
func narrowing[R2 Rep, S2 Scale, R Rep, S Scale]() error {
	if isFloat[R2]() {
		return nil
	}
	if isFloat[R]() {
		return errors.Wrapf(ErrNarrowing, "unit: cannot convert %s count to integral representation %s",
			repName[R](), repName[R2]())
	}
	if r := factorOf[S]().Div(factorOf[S2]()); r.Den != 1 {
		return errors.Wrapf(ErrNarrowing, "unit: conversion from scale %s to scale %s is inexact (ratio %s) for integral representation %s",
			factorOf[S](), factorOf[S2](), r, repName[R2]())
	}
	return nil
}
