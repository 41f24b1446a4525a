// Package errors is the single errors import for the module. It re-exports
// the stdlib tree helpers and pkg/errors' stack-carrying constructors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Stdlib helpers. New does not record a stack, so sentinels stay cheap.
//
//nolint:gochecknoglobals
var (
	New  = stderrors.New
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// Stack-carrying constructors. Wrap and Wrapf return nil for a nil error.
//
//nolint:gochecknoglobals
var (
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
)

// AsType returns the first error in err's tree of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}
