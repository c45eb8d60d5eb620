package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardform/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", "Jane"),
			validator.Digits("cvv", "123"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", "  "),
			validator.Digits("cvv", "12a"),
			validator.MaxLen("cvv", "12a", 2),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"name", "cvv"}, verrs.Fields())
		assert.True(t, verrs.Has("cvv"))
		assert.False(t, verrs.Has("number"))
		assert.Len(t, verrs.Get("cvv"), 2)
		assert.Equal(t, map[string][]string{
			"name": {"field is required"},
			"cvv":  {"must contain digits only", "must be at most 2 characters"},
		}, verrs.Map())
		assert.Contains(t, err.Error(), "name: field is required")
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.Check("ccNumber", false, "invalid", "validation.card_number"))
	wrapped := fmt.Errorf("submit: %w", err)

	assert.True(t, validator.IsValidationError(wrapped))
	verrs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, verrs, 1)
	assert.Equal(t, "validation.card_number", verrs[0].TranslationKey)

	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	assert.False(t, validator.IsValidationError(nil))
	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
}

func TestValidCreditCardChecksum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"4111111111111111", true},
		{"4111 1111 1111 1111", true},
		{"5555-5555-5555-4444", true},
		{"4111111111111112", false},
		{"4111", false},
		{"4111x11111111111", false},
		{"", false},
	}
	for _, tt := range tests {
		err := validator.Apply(validator.ValidCreditCardChecksum("ccNumber", tt.value))
		assert.Equal(t, tt.want, err == nil, tt.value)
	}
}
