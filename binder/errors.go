package binder

import "errors"

var (
	// ErrBinderNotApplicable tells the handler wrapper to try the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to this request")

	ErrInvalidForm    = errors.New("invalid form data")
	ErrInvalidSignals = errors.New("invalid datastar signals")
	ErrInvalidPath    = errors.New("invalid path parameter")
)
