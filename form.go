package cardform

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/cardform/pkg/cardvalidator"
	"github.com/dmitrymomot/cardform/pkg/logger"
)

// FormData holds the raw field values exactly as entered.
type FormData struct {
	Holder string `json:"ccHolder" form:"ccHolder"`
	Number string `json:"ccNumber" form:"ccNumber"`
	CVV    string `json:"ccCVV" form:"ccCVV"`
}

// Classification is derived from the card number on every change.
// It is replaced as a whole and never mutated in place.
type Classification struct {
	Brand       cardvalidator.Brand `json:"brand"`
	Code        cardvalidator.Code  `json:"code"`
	NumberValid bool                `json:"numberValid"`
}

// NumberValidator classifies raw card number input.
type NumberValidator interface {
	Number(raw string) cardvalidator.NumberVerification
}

// CVVValidator checks a security code against an expected length.
type CVVValidator interface {
	CVV(raw string, size int) cardvalidator.Verification
}

// SubmitFunc receives the form data once per successful submit.
type SubmitFunc func(ctx context.Context, data FormData) error

// Form tracks the three card fields and the state derived from them.
//
// A Form is not safe for concurrent use. It is meant to be owned by a single
// goroutine, typically the one running Bind.
type Form struct {
	numbers  NumberValidator
	cvvs     CVVValidator
	accepted map[cardvalidator.Brand]bool
	onSubmit SubmitFunc
	logger   *slog.Logger

	data           FormData
	classification *Classification
	number         *fieldMachine
	cvv            *fieldMachine
}

// New creates a form that passes submitted data to onSubmit.
func New(onSubmit SubmitFunc, opts ...Option) *Form {
	f := &Form{
		numbers:  cardvalidator.Default,
		cvvs:     cardvalidator.Default,
		onSubmit: onSubmit,
		logger:   slog.Default(),
		number:   newFieldMachine(string(FieldNumber)),
		cvv:      newFieldMachine(string(FieldCVV)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// HolderChanged records the card holder name. It has no validation rules.
func (f *Form) HolderChanged(raw string) {
	f.data.Holder = raw
}

// NumberChanged reclassifies the card number.
//
// The classification is cleared when the input is empty or the validator
// reports it as not potentially valid. A number whose brand is recognised but
// which is not complete yet keeps a classification with NumberValid false, so
// the brand and its security code size are known before the number is done.
// The CVV state is recomputed against the new classification.
func (f *Form) NumberChanged(raw string) {
	f.data.Number = raw
	res := f.numbers.Number(raw)

	var next *Classification
	if raw != "" && res.PotentiallyValid && res.Card != nil && f.accepts(res.Card.Brand) {
		next = &Classification{
			Brand:       res.Card.Brand,
			Code:        res.Card.Code,
			NumberValid: res.Valid,
		}
	}

	if brandOf(f.classification) != brandOf(next) {
		f.logger.Debug("card brand changed",
			logger.Component("cardform"),
			logger.Brand(brandOf(next).String()),
			logger.Field(string(FieldNumber)),
		)
	}
	f.classification = next

	if raw == "" {
		f.number.reset()
	} else {
		f.number.set(next != nil && next.NumberValid)
	}

	f.syncCVV()
}

// CVVChanged records the security code and validates it against the expected
// length of the current brand. Without a classification, or with an empty
// code, the CVV state is unknown.
func (f *Form) CVVChanged(raw string) {
	f.data.CVV = raw
	f.syncCVV()
}

func (f *Form) syncCVV() {
	if f.classification == nil || f.data.CVV == "" {
		f.cvv.reset()
		return
	}
	res := f.cvvs.CVV(f.data.CVV, f.classification.Code.Size)
	f.cvv.set(res.PotentiallyValid && res.Valid)
}

// Classification returns the current classification, if any.
func (f *Form) Classification() (Classification, bool) {
	if f.classification == nil {
		return Classification{}, false
	}
	return *f.classification, true
}

func (f *Form) NumberState() FieldState {
	return f.number.Current()
}

func (f *Form) CVVState() FieldState {
	return f.cvv.Current()
}

// Data returns the raw values as entered.
func (f *Form) Data() FormData {
	return f.data
}

// CanSubmit reports the submit gate: a classification exists, the number is
// fully valid and the CVV is valid.
func (f *Form) CanSubmit() bool {
	return f.classification != nil &&
		f.classification.NumberValid &&
		f.cvv.Current() == FieldValid
}

// Submit forwards the raw field values to the submit callback when the gate
// is open. Values are passed through untouched.
func (f *Form) Submit(ctx context.Context) error {
	if !f.CanSubmit() {
		return ErrSubmitBlocked
	}
	if f.onSubmit == nil {
		return ErrNoSubmitHandler
	}
	if err := f.onSubmit(ctx, f.data); err != nil {
		return errors.Join(ErrSubmitFailed, err)
	}

	f.logger.InfoContext(ctx, "card form submitted",
		logger.Component("cardform"),
		logger.Brand(f.classification.Brand.String()),
	)
	return nil
}

func (f *Form) accepts(b cardvalidator.Brand) bool {
	return len(f.accepted) == 0 || f.accepted[b]
}

func brandOf(c *Classification) cardvalidator.Brand {
	if c == nil {
		return cardvalidator.BrandUnknown
	}
	return c.Brand
}
