package cardinput

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/cardform/handler"
)

var (
	ErrMissingViews = errors.New("cardinput: page and toast views are required")

	ErrInvalidFormID   = handler.NewHTTPError(http.StatusBadRequest, "invalid_form_id")
	ErrSessionNotFound = handler.NewHTTPError(http.StatusNotFound, "form_session_not_found")
	ErrSessionExists   = handler.NewHTTPError(http.StatusConflict, "form_session_exists")
	ErrSessionClosed   = handler.NewHTTPError(http.StatusConflict, "form_session_closed")
	ErrUnknownField    = handler.NewHTTPError(http.StatusNotFound, "unknown_field")
	ErrSubmitFailed    = handler.NewHTTPError(http.StatusBadGateway, "card_submit_failed")
)
