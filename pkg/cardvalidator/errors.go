package cardvalidator

import "errors"

var (
	// ErrUnknownBrand is returned by ParseBrand for names outside the supported set.
	ErrUnknownBrand = errors.New("unknown card brand")
)
