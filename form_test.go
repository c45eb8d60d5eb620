package cardform_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardform"
	"github.com/dmitrymomot/cardform/pkg/cardvalidator"
)

const (
	visa       = "4111111111111111"
	mastercard = "5555555555554444"
	amex       = "378282246310005"
)

type stubNumbers struct {
	res   cardvalidator.NumberVerification
	calls int
}

func (s *stubNumbers) Number(string) cardvalidator.NumberVerification {
	s.calls++
	return s.res
}

func TestForm_NumberChanged(t *testing.T) {
	t.Parallel()

	t.Run("empty number has no classification", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged(visa)
		f.NumberChanged("")

		_, ok := f.Classification()
		assert.False(t, ok)
		assert.Equal(t, cardform.FieldUnknown, f.NumberState())
	})

	t.Run("visa", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged(visa)

		c, ok := f.Classification()
		require.True(t, ok)
		assert.Equal(t, cardvalidator.BrandVisa, c.Brand)
		assert.True(t, c.NumberValid)
		assert.Equal(t, 3, c.Code.Size)
		assert.Equal(t, "CVV", c.Code.Name)
		assert.Equal(t, cardform.FieldValid, f.NumberState())
	})

	t.Run("mastercard", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged(mastercard)

		c, ok := f.Classification()
		require.True(t, ok)
		assert.Equal(t, cardvalidator.BrandMastercard, c.Brand)
		assert.True(t, c.NumberValid)
		assert.Equal(t, 3, c.Code.Size)
	})

	t.Run("amex uses four digit code", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged(amex)

		c, ok := f.Classification()
		require.True(t, ok)
		assert.Equal(t, cardvalidator.BrandAmex, c.Brand)
		assert.Equal(t, cardvalidator.Code{Name: "CID", Size: 4}, c.Code)
	})

	t.Run("separators are accepted", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged("4111 1111-1111 1111")

		c, ok := f.Classification()
		require.True(t, ok)
		assert.True(t, c.NumberValid)
	})

	t.Run("partial number keeps brand with invalid number", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged("4111")

		c, ok := f.Classification()
		require.True(t, ok)
		assert.Equal(t, cardvalidator.BrandVisa, c.Brand)
		assert.False(t, c.NumberValid)
		assert.Equal(t, 3, c.Code.Size)
		assert.Equal(t, cardform.FieldInvalid, f.NumberState())
	})

	t.Run("not potentially valid clears previous classification", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"9999", "4111abc", "41111111111111111111"} {
			f := cardform.New(nil)
			f.NumberChanged(visa)
			f.NumberChanged(raw)

			_, ok := f.Classification()
			assert.False(t, ok, raw)
			assert.Equal(t, cardform.FieldInvalid, f.NumberState(), raw)
		}
	})

	t.Run("ambiguous prefix has no classification", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged("4")

		_, ok := f.Classification()
		assert.False(t, ok)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged(visa)
		f.CVVChanged("123")
		first, _ := f.Classification()
		view := f.View()

		f.NumberChanged(visa)
		second, _ := f.Classification()
		assert.Equal(t, first, second)
		assert.Equal(t, view, f.View())
	})

	t.Run("brand outside the accepted set", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil, cardform.WithAcceptedBrands(cardvalidator.BrandVisa))
		f.NumberChanged(mastercard)

		_, ok := f.Classification()
		assert.False(t, ok)
		assert.Equal(t, cardform.FieldInvalid, f.NumberState())

		f.NumberChanged(visa)
		_, ok = f.Classification()
		assert.True(t, ok)
	})

	t.Run("recognised but incomplete result from a custom validator", func(t *testing.T) {
		t.Parallel()
		card, _ := cardvalidator.Lookup(cardvalidator.BrandDiscover)
		numbers := &stubNumbers{res: cardvalidator.NumberVerification{Card: &card, PotentiallyValid: true}}
		f := cardform.New(nil, cardform.WithNumberValidator(numbers))
		f.NumberChanged("6011")

		c, ok := f.Classification()
		require.True(t, ok)
		assert.Equal(t, cardvalidator.BrandDiscover, c.Brand)
		assert.False(t, c.NumberValid)
		assert.Equal(t, card.Code, c.Code)
		assert.Equal(t, 1, numbers.calls)
	})

	t.Run("card without potential validity from a custom validator", func(t *testing.T) {
		t.Parallel()
		card, _ := cardvalidator.Lookup(cardvalidator.BrandVisa)
		numbers := &stubNumbers{res: cardvalidator.NumberVerification{Card: &card}}
		f := cardform.New(nil, cardform.WithNumberValidator(numbers))
		f.NumberChanged("4111")

		_, ok := f.Classification()
		assert.False(t, ok)
	})
}

func TestForm_CVVChanged(t *testing.T) {
	t.Parallel()

	t.Run("exact length is valid", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged(visa)
		f.CVVChanged("123")
		assert.Equal(t, cardform.FieldValid, f.CVVState())
	})

	t.Run("short code is invalid", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged(visa)
		f.CVVChanged("12")
		assert.Equal(t, cardform.FieldInvalid, f.CVVState())
	})

	t.Run("long or non-digit code is invalid", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged(visa)
		f.CVVChanged("1234")
		assert.Equal(t, cardform.FieldInvalid, f.CVVState())
		f.CVVChanged("12a")
		assert.Equal(t, cardform.FieldInvalid, f.CVVState())
	})

	t.Run("no classification leaves state unknown", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.CVVChanged("123")
		assert.Equal(t, cardform.FieldUnknown, f.CVVState())
	})

	t.Run("empty code resets state", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged(visa)
		f.CVVChanged("123")
		f.CVVChanged("")
		assert.Equal(t, cardform.FieldUnknown, f.CVVState())
	})

	t.Run("code is validated against a partial number brand", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged("3782")
		f.CVVChanged("1234")
		assert.Equal(t, cardform.FieldValid, f.CVVState())
		assert.False(t, f.CanSubmit())
	})

	t.Run("clearing the number resets the code state", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged(visa)
		f.CVVChanged("123")
		f.NumberChanged("")
		assert.Equal(t, cardform.FieldUnknown, f.CVVState())
		assert.Equal(t, "123", f.Data().CVV)
	})

	t.Run("brand change revalidates the code", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged(visa)
		f.CVVChanged("123")
		require.Equal(t, cardform.FieldValid, f.CVVState())

		f.NumberChanged(amex)
		assert.Equal(t, cardform.FieldInvalid, f.CVVState())

		f.NumberChanged(visa)
		assert.Equal(t, cardform.FieldValid, f.CVVState())
	})
}

func TestForm_CanSubmit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		cvv    string
		want   bool
	}{
		{name: "no classification", number: "", cvv: "123", want: false},
		{name: "number not valid", number: "4111", cvv: "123", want: false},
		{name: "cvv invalid", number: visa, cvv: "12", want: false},
		{name: "cvv unknown", number: visa, cvv: "", want: false},
		{name: "all valid", number: visa, cvv: "123", want: true},
		{name: "amex all valid", number: amex, cvv: "1234", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := cardform.New(nil)
			f.NumberChanged(tt.number)
			f.CVVChanged(tt.cvv)
			assert.Equal(t, tt.want, f.CanSubmit())
			assert.Equal(t, tt.want, f.View().CanSubmit)
		})
	}
}

func TestForm_Submit(t *testing.T) {
	t.Parallel()

	t.Run("forwards values unmodified", func(t *testing.T) {
		t.Parallel()
		var got []cardform.FormData
		f := cardform.New(func(_ context.Context, data cardform.FormData) error {
			got = append(got, data)
			return nil
		})
		f.HolderChanged("  jane DOE ")
		f.NumberChanged("4111 1111 1111 1111")
		f.CVVChanged("123")

		require.NoError(t, f.Submit(context.Background()))
		require.Len(t, got, 1)
		assert.Equal(t, cardform.FormData{
			Holder: "  jane DOE ",
			Number: "4111 1111 1111 1111",
			CVV:    "123",
		}, got[0])
	})

	t.Run("blocked while gate is closed", func(t *testing.T) {
		t.Parallel()
		called := false
		f := cardform.New(func(context.Context, cardform.FormData) error {
			called = true
			return nil
		})
		f.NumberChanged(visa)
		f.CVVChanged("12")

		err := f.Submit(context.Background())
		assert.ErrorIs(t, err, cardform.ErrSubmitBlocked)
		assert.False(t, called)
	})

	t.Run("callback error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("declined")
		f := cardform.New(func(context.Context, cardform.FormData) error { return boom })
		f.NumberChanged(visa)
		f.CVVChanged("123")

		err := f.Submit(context.Background())
		assert.ErrorIs(t, err, cardform.ErrSubmitFailed)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no callback", func(t *testing.T) {
		t.Parallel()
		f := cardform.New(nil)
		f.NumberChanged(visa)
		f.CVVChanged("123")
		assert.ErrorIs(t, f.Submit(context.Background()), cardform.ErrNoSubmitHandler)
	})
}
