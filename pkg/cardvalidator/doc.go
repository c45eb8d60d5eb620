// Package cardvalidator detects the brand of a payment card number and checks
// card numbers and security codes as they are being typed.
//
// Results are three-valued: an input may be valid, potentially valid (a prefix
// of something that could become valid) or neither. This lets interactive forms
// show brand affinity and the expected security code length before the number
// is complete.
//
// # Usage
//
//	res := cardvalidator.Number("4111 1111 1111 1111")
//	if res.Card != nil {
//		fmt.Println(res.Card.Brand, res.Card.Code.Name, res.Card.Code.Size) // visa CVV 3
//	}
//	fmt.Println(res.PotentiallyValid, res.Valid) // true true
//
//	cvv := cardvalidator.CVV("12", 3)
//	fmt.Println(cvv.PotentiallyValid, cvv.Valid) // true false
//
// Supported brands are Visa, Mastercard, American Express, Diners Club,
// Discover, JCB, UnionPay, Maestro and Mir. UnionPay numbers skip the Luhn
// checksum unless WithUnionPayLuhn is set.
//
// Helpers Normalize, Format and Mask cover display concerns: stripping
// separators, grouping digits by brand gaps and masking a number for logs.
package cardvalidator
