package cardvalidator

import "strconv"

// Detect returns the card types a digit string may belong to.
//
// A type is a candidate when the number is a prefix of one of its patterns or
// one of its patterns is a prefix of the number. When every candidate matched
// a full pattern, only the strongest (longest pattern) is returned, so "4111"
// is Visa only while "4" stays ambiguous between Visa and Maestro's 493698.
// An empty input yields every type.
func Detect(number string) []CardType {
	if number == "" {
		return Types()
	}

	type candidate struct {
		card     CardType
		strength int
	}

	var candidates []candidate
	for _, t := range cardTypes {
		for _, p := range t.patterns {
			if !p.matches(number) {
				continue
			}
			c := candidate{card: t}
			if n := p.length(); len(number) >= n {
				c.strength = n
			}
			candidates = append(candidates, c)
			break
		}
	}

	out := make([]CardType, 0, len(candidates))
	best := -1
	for i, c := range candidates {
		if c.strength == 0 {
			best = -1
			break
		}
		if best < 0 || c.strength > candidates[best].strength {
			best = i
		}
	}
	if best >= 0 {
		return append(out, candidates[best].card)
	}
	for _, c := range candidates {
		out = append(out, c.card)
	}
	return out
}

func (p pattern) length() int {
	return len(strconv.Itoa(p.lo))
}

func (p pattern) matches(number string) bool {
	if p.hi == 0 {
		s := strconv.Itoa(p.lo)
		n := min(len(s), len(number))
		return s[:n] == number[:n]
	}

	lo, hi := strconv.Itoa(p.lo), strconv.Itoa(p.hi)
	head := number[:min(len(number), len(lo))]
	v, err := strconv.Atoi(head)
	if err != nil {
		return false
	}
	l, _ := strconv.Atoi(lo[:len(head)])
	h, _ := strconv.Atoi(hi[:min(len(head), len(hi))])
	return v >= l && v <= h
}
