package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/cardform/binder"
	"github.com/dmitrymomot/cardform/pkg/logger"
	"github.com/dmitrymomot/cardform/pkg/requestid"
)

type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig holds the components used to render errors.
type ErrorHandlerConfig struct {
	// ErrorPage renders a full page for plain HTTP requests.
	ErrorPage func(ErrorPageParams) templ.Component
	// ErrorToast renders a notification patched into the page for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component
	// ToastTarget defaults to "#toast-container".
	ToastTarget string
}

type errorInfo struct {
	status  int
	message string
}

func classifyError(err error) errorInfo {
	info := errorInfo{
		status:  http.StatusInternalServerError,
		message: "An error occurred processing your request",
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		info.status = httpErr.Code
		if httpErr.Code < http.StatusInternalServerError {
			info.message = httpErr.Key
		}
	case errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidSignals),
		errors.Is(err, binder.ErrInvalidPath):
		info.status = http.StatusBadRequest
		info.message = "The request could not be read"
	}

	if ve, ok := AsValidationError(err); ok {
		info.status = http.StatusBadRequest
		info.message = ve.Error()
	}
	return info
}

// NewErrorHandler returns an error handler that logs the failure and renders
// a page for plain requests or a toast for DataStar requests. Messages of
// 5xx errors are never shown to the client.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		id := requestid.FromContext(r.Context())
		info := classifyError(err)

		level := slog.LevelError
		if info.status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Component("error_handler"),
			logger.Error(err),
			slog.Int("status_code", info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		var resp Response
		switch {
		case IsDataStar(r) && cfg.ErrorToast != nil:
			kind := "error"
			if info.status < http.StatusInternalServerError {
				kind = "warning"
			}
			resp = Templ(cfg.ErrorToast(ErrorToastParams{Message: info.message, Type: kind, RequestID: id}),
				WithTarget(cfg.ToastTarget), WithPatchMode(PatchPrepend))
		case !IsDataStar(r) && cfg.ErrorPage != nil:
			resp = TemplStatus(info.status, cfg.ErrorPage(ErrorPageParams{
				Error:      info.message,
				StatusCode: info.status,
				RequestID:  id,
				RetryURL:   r.URL.Path,
			}))
		default:
			http.Error(ctx.ResponseWriter(), info.message, info.status)
			return
		}

		if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(r.Context(), "failed to render error",
				logger.Component("error_handler"),
				logger.Error(rerr),
			)
		}
	}
}
