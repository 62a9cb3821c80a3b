// Package errors provides error handling for simple-units.
//
// It re-exports github.com/cockroachdb/errors so that every package in the
// module builds errors the same way: stack traces by default, wrapping with
// context, and errors.Is/As-compatible inspection.
//
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Error creation and wrapping.
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing annotations.
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection.
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
	Join   = crdb.Join
)

// Assertions.
var (
	AssertionFailedf = crdb.AssertionFailedf
)
