package cardvalidator

import "strings"

// Format groups the digits of a card number the way they are embossed on the
// card, using the gaps of the detected brand ("4111 1111 1111 1111").
// Input that is not a digit string after normalisation is returned unchanged.
func Format(raw string) string {
	number := Normalize(raw)
	if !isDigits(number) {
		return raw
	}

	gaps := fourGaps
	if types := Detect(number); len(types) == 1 {
		gaps = types[0].Gaps
	}

	var sb strings.Builder
	sb.Grow(len(number) + len(gaps))
	next := 0
	for i := 0; i < len(number); i++ {
		if next < len(gaps) && i == gaps[next] {
			sb.WriteByte(' ')
			next++
		}
		sb.WriteByte(number[i])
	}
	return sb.String()
}

// Mask hides all but the first six and last four digits of a number. Short
// numbers keep only the last four digits visible.
func Mask(raw string) string {
	number := Normalize(raw)
	n := len(number)
	switch {
	case n == 0:
		return ""
	case n <= 4:
		return strings.Repeat("*", n)
	case n < 10:
		return strings.Repeat("*", n-4) + number[n-4:]
	default:
		return number[:6] + strings.Repeat("*", n-10) + number[n-4:]
	}
}
