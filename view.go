package cardform

import "github.com/dmitrymomot/cardform/pkg/cardvalidator"

// View is the presentation state derived from the form. Field names double as
// DataStar signal names.
type View struct {
	Brand       cardvalidator.Brand `json:"brand"`
	BrandName   string              `json:"brandName"`
	CVVLabel    string              `json:"cvvLabel"`
	CVVSize     int                 `json:"cvvSize"`
	CVVDisabled bool                `json:"cvvDisabled"`
	NumberState FieldState          `json:"numberState"`
	CVVState    FieldState          `json:"cvvState"`
	CanSubmit   bool                `json:"canSubmit"`
}

// View derives presentation flags. The brand is shown regardless of number
// validity; the CVV input is enabled only for a fully valid number. Without a
// classification the CVV hint falls back to cardvalidator.DefaultCode.
func (f *Form) View() View {
	v := View{
		CVVLabel:    cardvalidator.DefaultCode.Name,
		CVVSize:     cardvalidator.DefaultCode.Size,
		CVVDisabled: true,
		NumberState: f.number.Current(),
		CVVState:    f.cvv.Current(),
		CanSubmit:   f.CanSubmit(),
	}

	c := f.classification
	if c == nil {
		return v
	}
	v.Brand = c.Brand
	if ct, ok := cardvalidator.Lookup(c.Brand); ok {
		v.BrandName = ct.NiceName
	}
	if c.Code.Name != "" {
		v.CVVLabel = c.Code.Name
	}
	if c.Code.Size > 0 {
		v.CVVSize = c.Code.Size
	}
	v.CVVDisabled = !c.NumberValid
	return v
}
