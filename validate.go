package cardform

import "github.com/dmitrymomot/cardform/pkg/validator"

// Validate evaluates data with a fresh form built from opts and reports
// field-level problems as validator.ValidationErrors. It applies the same
// rules as the submit gate and is meant for submissions that did not go
// through the interactive flow.
func Validate(data FormData, opts ...Option) error {
	f := New(nil, opts...)
	f.HolderChanged(data.Holder)
	f.NumberChanged(data.Number)
	f.CVVChanged(data.CVV)

	number, cvv := string(FieldNumber), string(FieldCVV)
	rules := []validator.Rule{
		validator.Required(number, data.Number),
		validator.Required(cvv, data.CVV),
	}
	if data.Number != "" {
		rules = append(rules, validator.Check(number, f.NumberState() == FieldValid,
			"card number is incomplete, invalid or not accepted", "validation.card_number"))
	}
	if data.CVV != "" {
		c, ok := f.Classification()
		rules = append(rules,
			validator.Digits(cvv, data.CVV),
			validator.Check(cvv, ok && c.NumberValid && f.CVVState() == FieldValid,
				"security code does not match the card", "validation.card_cvv"),
		)
	}
	return validator.Apply(rules...)
}
