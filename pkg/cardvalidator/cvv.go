package cardvalidator

// DefaultCVVSize is the expected security code length when no brand is known.
const DefaultCVVSize = 3

// Verification is the outcome of checking a security code.
type Verification struct {
	PotentiallyValid bool `json:"isPotentiallyValid"`
	Valid            bool `json:"isValid"`
}

// CVV verifies a security code against the expected length using the
// Default validator.
func CVV(raw string, size int) Verification {
	return Default.CVV(raw, size)
}

// CVV verifies a security code against the expected length. A size of zero
// or less falls back to DefaultCVVSize. Shorter digit strings are potentially
// valid, longer ones or any non-digit input are not.
func (v *Validator) CVV(raw string, size int) Verification {
	if size <= 0 {
		size = DefaultCVVSize
	}
	if raw != "" && !isDigits(raw) {
		return Verification{}
	}
	switch {
	case len(raw) == size:
		return Verification{PotentiallyValid: true, Valid: true}
	case len(raw) < size:
		return Verification{PotentiallyValid: true}
	default:
		return Verification{}
	}
}
