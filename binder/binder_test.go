package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardform/binder"
)

type cardRequest struct {
	Field    string `path:"field"`
	Holder   string `json:"ccHolder" form:"ccHolder"`
	Number   string `json:"ccNumber" form:"ccNumber"`
	CVV      string `json:"ccCVV" form:"ccCVV"`
	Remember bool   `json:"remember" form:"remember"`
	Internal string `form:"-"`
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		body := url.Values{
			"ccHolder": {" Jane "},
			"ccNumber": {"4111 1111 1111 1111"},
			"ccCVV":    {"123"},
			"remember": {"on"},
			"Internal": {"x"},
		}.Encode()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got cardRequest
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, " Jane ", got.Holder)
		assert.Equal(t, "4111 1111 1111 1111", got.Number)
		assert.Equal(t, "123", got.CVV)
		assert.True(t, got.Remember)
		assert.Empty(t, got.Internal)
	})

	t.Run("other content types are not applicable", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		var got cardRequest
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("remember=maybe"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got cardRequest
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrInvalidForm)
	})

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("ccCVV=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		assert.ErrorIs(t, binder.Form()(req, cardRequest{}), binder.ErrInvalidForm)
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("post body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"ccNumber":"4111","ccCVV":"12"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(binder.DataStarHeader, "true")

		var got cardRequest
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "4111", got.Number)
		assert.Equal(t, "12", got.CVV)
	})

	t.Run("get query", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"datastar": {`{"ccHolder":"Jane"}`}}.Encode()
		req := httptest.NewRequest(http.MethodGet, "/?"+q, nil)
		req.Header.Set(binder.DataStarHeader, "true")

		var got cardRequest
		require.NoError(t, binder.Signals()(req, &got))
		assert.Equal(t, "Jane", got.Holder)
	})

	t.Run("without datastar header", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))

		var got cardRequest
		assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		req.Header.Set(binder.DataStarHeader, "true")

		var got cardRequest
		assert.ErrorIs(t, binder.Signals()(req, &got), binder.ErrInvalidSignals)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	var got cardRequest
	var bindErr error
	r.Post("/input/{field}", func(w http.ResponseWriter, req *http.Request) {
		bindErr = binder.Path(chi.URLParam)(req, &got)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/input/ccNumber", nil))
	require.NoError(t, bindErr)
	assert.Equal(t, "ccNumber", got.Field)
}
