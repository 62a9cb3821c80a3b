package unit

import (
	"time"

	"github.com/X-Neon/simple-units/errors"
)

// The duration bridge. time.Duration is a nanosecond count, so for
// duration-compatible dimensions the base unit is the second and a duration
// is a quantity at scale Nano. Only tags satisfying DurationDimension can
// appear here; for any other dimension these functions do not compile.

// ToDuration converts a quantity of a duration-compatible dimension to a
// time.Duration, with Cast semantics: scales coarser than a nanosecond
// convert exactly, finer ones truncate.
func ToDuration[D DurationDimension, R Rep, S Scale](u Unit[D, R, S]) time.Duration {
	return time.Duration(Cast[int64, Nano](u).Count())
}

// FromDuration converts a time.Duration into a quantity of a
// duration-compatible dimension. Floating-point targets always succeed.
// Integral targets are guarded against truncation; because every duration
// arrives at nanosecond scale, the guard here is necessarily about the
// value: a duration that is not a whole number of target-scale units is
// an error.
func FromDuration[D DurationDimension, R Rep, S Scale](d time.Duration) (Unit[D, R, S], error) {
	if isFloat[R]() {
		return Cast[R, S](New[D, int64, Nano](int64(d))), nil
	}
	r := factorOf[Nano]().Div(factorOf[S]())
	v := int64(d) * r.Num
	if v%r.Den != 0 {
		return Unit[D, R, S]{}, errors.Wrapf(ErrNarrowing, "unit: duration %s is not a whole number of units at scale %s",
			d, factorOf[S]())
	}
	return Unit[D, R, S]{v: R(v / r.Den)}, nil
}

// MustFromDuration is FromDuration that panics on an inexact conversion.
func MustFromDuration[D DurationDimension, R Rep, S Scale](d time.Duration) Unit[D, R, S] {
	u, err := FromDuration[D, R, S](d)
	if err != nil {
		panic(err)
	}
	return u
}
