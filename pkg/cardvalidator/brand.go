package cardvalidator

import (
	"fmt"
	"strings"
)

// Brand identifies a card network. The set is closed: every CardType returned
// by this package carries one of the constants below.
type Brand string

const (
	BrandUnknown    Brand = ""
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandAmex       Brand = "american-express"
	BrandDinersClub Brand = "diners-club"
	BrandDiscover   Brand = "discover"
	BrandJCB        Brand = "jcb"
	BrandUnionPay   Brand = "unionpay"
	BrandMaestro    Brand = "maestro"
	BrandMir        Brand = "mir"
)

func (b Brand) String() string {
	if b == BrandUnknown {
		return "unknown"
	}
	return string(b)
}

// ParseBrand converts a brand name as used in configuration ("visa",
// "american-express", ...) into a Brand.
func ParseBrand(s string) (Brand, error) {
	name := Brand(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range cardTypes {
		if t.Brand == name {
			return name, nil
		}
	}
	return BrandUnknown, fmt.Errorf("%w: %q", ErrUnknownBrand, s)
}

// Code describes the security code printed on a card.
type Code struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// DefaultCode is used when no brand has been detected.
var DefaultCode = Code{Name: "CVV", Size: DefaultCVVSize}

// CardType is the static description of a brand.
type CardType struct {
	Brand    Brand  `json:"type"`
	NiceName string `json:"niceType"`
	Code     Code   `json:"code"`
	Lengths  []int  `json:"lengths"`
	Gaps     []int  `json:"gaps"`

	patterns []pattern
}

// MaxLength returns the longest valid number length for the brand.
func (t CardType) MaxLength() int {
	n := 0
	for _, l := range t.Lengths {
		n = max(n, l)
	}
	return n
}

func (t CardType) hasLength(n int) bool {
	for _, l := range t.Lengths {
		if l == n {
			return true
		}
	}
	return false
}

// pattern is either a single prefix (hi == 0) or an inclusive prefix range.
type pattern struct {
	lo, hi int
}

func prefix(p int) pattern { return pattern{lo: p} }

func span(lo, hi int) pattern { return pattern{lo: lo, hi: hi} }

func lengths(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

var fourGaps = []int{4, 8, 12}

// cardTypes is ordered by detection priority.
var cardTypes = []CardType{
	{
		Brand:    BrandVisa,
		NiceName: "Visa",
		Code:     Code{Name: "CVV", Size: 3},
		Lengths:  []int{16, 18, 19},
		Gaps:     fourGaps,
		patterns: []pattern{prefix(4)},
	},
	{
		Brand:    BrandMastercard,
		NiceName: "Mastercard",
		Code:     Code{Name: "CVC", Size: 3},
		Lengths:  []int{16},
		Gaps:     fourGaps,
		patterns: []pattern{span(51, 55), span(2221, 2229), span(223, 229), span(23, 26), span(270, 271), prefix(2720)},
	},
	{
		Brand:    BrandAmex,
		NiceName: "American Express",
		Code:     Code{Name: "CID", Size: 4},
		Lengths:  []int{15},
		Gaps:     []int{4, 10},
		patterns: []pattern{prefix(34), prefix(37)},
	},
	{
		Brand:    BrandDinersClub,
		NiceName: "Diners Club",
		Code:     Code{Name: "CVV", Size: 3},
		Lengths:  []int{14, 16, 19},
		Gaps:     []int{4, 10},
		patterns: []pattern{span(300, 305), prefix(36), prefix(38), prefix(39)},
	},
	{
		Brand:    BrandDiscover,
		NiceName: "Discover",
		Code:     Code{Name: "CID", Size: 3},
		Lengths:  []int{16, 19},
		Gaps:     fourGaps,
		patterns: []pattern{prefix(6011), span(644, 649), prefix(65)},
	},
	{
		Brand:    BrandJCB,
		NiceName: "JCB",
		Code:     Code{Name: "CVV", Size: 3},
		Lengths:  []int{16, 17, 18, 19},
		Gaps:     fourGaps,
		patterns: []pattern{prefix(2131), prefix(1800), span(3528, 3589)},
	},
	{
		Brand:    BrandUnionPay,
		NiceName: "UnionPay",
		Code:     Code{Name: "CVN", Size: 3},
		Lengths:  lengths(14, 19),
		Gaps:     fourGaps,
		patterns: []pattern{
			prefix(620), span(62100, 62182), span(62184, 62187), span(62185, 62197),
			span(62200, 62205), span(622010, 622999), prefix(622018), span(622019, 622999),
			span(62207, 62209), span(623, 626), prefix(6270), prefix(6272), prefix(6276),
			span(627700, 627779), span(627781, 627799), prefix(6282), prefix(6291),
			prefix(6292), prefix(810), span(8110, 8131), span(8132, 8151),
			span(8152, 8163), span(8164, 8171),
		},
	},
	{
		Brand:    BrandMaestro,
		NiceName: "Maestro",
		Code:     Code{Name: "CVC", Size: 3},
		Lengths:  lengths(12, 19),
		Gaps:     fourGaps,
		patterns: []pattern{
			prefix(493698), span(500000, 504174), span(504176, 506698),
			span(506779, 508999), span(56, 59), prefix(63), prefix(67), prefix(6),
		},
	},
	{
		Brand:    BrandMir,
		NiceName: "Mir",
		Code:     Code{Name: "CVP2", Size: 3},
		Lengths:  lengths(16, 19),
		Gaps:     fourGaps,
		patterns: []pattern{span(2200, 2204)},
	},
}

// Types returns every supported card type in detection order.
func Types() []CardType {
	out := make([]CardType, len(cardTypes))
	copy(out, cardTypes)
	return out
}

// Lookup returns the card type for a brand.
func Lookup(b Brand) (CardType, bool) {
	for _, t := range cardTypes {
		if t.Brand == b {
			return t, true
		}
	}
	return CardType{}, false
}
