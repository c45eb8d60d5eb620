package cardform

import (
	"log/slog"

	"github.com/dmitrymomot/cardform/pkg/cardvalidator"
)

// Option configures a Form.
type Option func(*Form)

// WithNumberValidator replaces the card number classifier.
func WithNumberValidator(v NumberValidator) Option {
	return func(f *Form) {
		if v != nil {
			f.numbers = v
		}
	}
}

// WithCVVValidator replaces the security code validator.
func WithCVVValidator(v CVVValidator) Option {
	return func(f *Form) {
		if v != nil {
			f.cvvs = v
		}
	}
}

// WithValidator uses one cardvalidator.Validator for numbers and codes.
func WithValidator(v *cardvalidator.Validator) Option {
	return func(f *Form) {
		if v != nil {
			f.numbers = v
			f.cvvs = v
		}
	}
}

// WithAcceptedBrands limits classification to the given brands.
// Numbers of other brands are treated like unrecognised numbers.
// Without this option every supported brand is accepted.
func WithAcceptedBrands(brands ...cardvalidator.Brand) Option {
	return func(f *Form) {
		if len(brands) == 0 {
			return
		}
		f.accepted = make(map[cardvalidator.Brand]bool, len(brands))
		for _, b := range brands {
			f.accepted[b] = true
		}
	}
}

// WithLogger sets the logger. Card numbers and codes are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}
