package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Check wraps a precomputed condition, for state owned by another component.
func Check(field string, ok bool, message, key string) Rule {
	return Rule{
		Check: func() bool { return ok },
		Error: ValidationError{Field: field, Message: message, TranslationKey: key},
	}
}

func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
		},
	}
}

func MaxLen(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= n
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters", n),
			TranslationKey: "validation.max_length",
		},
	}
}

// Digits passes for strings made only of ASCII digits. Empty strings pass;
// combine with Required when the field is mandatory.
func Digits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for i := 0; i < len(value); i++ {
				if value[i] < '0' || value[i] > '9' {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain digits only",
			TranslationKey: "validation.digits",
		},
	}
}

// ValidCreditCardChecksum validates a card number using the Luhn algorithm.
// Spaces and dashes are ignored.
func ValidCreditCardChecksum(field, value string) Rule {
	return Rule{
		Check: func() bool {
			cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
			if len(cleaned) < 12 || len(cleaned) > 19 {
				return false
			}

			sum := 0
			isEven := false
			for i := len(cleaned) - 1; i >= 0; i-- {
				if cleaned[i] < '0' || cleaned[i] > '9' {
					return false
				}
				digit := int(cleaned[i] - '0')
				if isEven {
					digit *= 2
					if digit > 9 {
						digit = digit/10 + digit%10
					}
				}
				sum += digit
				isEven = !isEven
			}
			return sum%10 == 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid credit card number",
			TranslationKey: "validation.credit_card",
		},
	}
}
