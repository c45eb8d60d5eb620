package cardvalidator

import (
	"strings"
	"unicode"
)

// NumberVerification is the outcome of checking a (possibly partial) card number.
//
// Card is nil when no brand, or more than one brand, matches the input.
// PotentiallyValid reports whether typing more digits could make the number
// valid. Valid reports a complete number with a correct length and checksum.
type NumberVerification struct {
	Card             *CardType `json:"card"`
	PotentiallyValid bool      `json:"isPotentiallyValid"`
	Valid            bool      `json:"isValid"`
}

// Validator checks card numbers and security codes. The zero value is usable.
type Validator struct {
	luhnUnionPay bool
	maxLength    int
}

// Option configures a Validator.
type Option func(*Validator)

// WithUnionPayLuhn enables checksum validation for UnionPay numbers, some of
// which are issued without a Luhn check digit.
func WithUnionPayLuhn() Option {
	return func(v *Validator) { v.luhnUnionPay = true }
}

// WithMaxLength caps the accepted number length below the brand maximum.
func WithMaxLength(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.maxLength = n
		}
	}
}

// New returns a configured Validator.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Default is the validator used by the package-level helpers.
var Default = New()

// Number verifies raw card number input using the Default validator.
func Number(raw string) NumberVerification {
	return Default.Number(raw)
}

// Number verifies raw card number input. Spaces and dashes are ignored; any
// other non-digit character makes the input invalid.
func (v *Validator) Number(raw string) NumberVerification {
	number := Normalize(raw)
	if number == "" || !isDigits(number) {
		return NumberVerification{}
	}

	types := Detect(number)
	if len(types) == 0 {
		return NumberVerification{}
	}
	if len(types) > 1 {
		return NumberVerification{PotentiallyValid: true}
	}

	card := types[0]
	valid := luhn(number)
	if card.Brand == BrandUnionPay && !v.luhnUnionPay {
		valid = true
	}

	maxLength := card.MaxLength()
	if v.maxLength > 0 {
		maxLength = min(maxLength, v.maxLength)
	}

	res := NumberVerification{Card: &card}
	if len(number) > maxLength {
		return res
	}
	if card.hasLength(len(number)) {
		res.Valid = valid
		res.PotentiallyValid = len(number) < maxLength || valid
		return res
	}
	res.PotentiallyValid = len(number) < maxLength
	return res
}

// Normalize strips whitespace and dashes from card number input.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

// Luhn reports whether a digit string passes the mod-10 checksum.
func Luhn(number string) bool {
	return isDigits(number) && luhn(number)
}

func luhn(number string) bool {
	sum, double := 0, false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
