// Package validator provides small declarative validation rules.
//
// A Rule couples a Check func with the ValidationError reported when the check
// fails. Apply evaluates rules in order and aggregates failures into
// ValidationErrors, which implements error and can be recovered with
// ExtractValidationErrors or errors.As.
//
//	err := validator.Apply(
//		validator.Required("ccHolder", holder),
//		validator.MaxLen("ccHolder", holder, 128),
//		validator.ValidCreditCardChecksum("ccNumber", number),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for field, msgs := range verrs.Map() {
//			// render msgs next to field
//		}
//	}
//
// Rules are stateless and safe for concurrent use.
package validator
