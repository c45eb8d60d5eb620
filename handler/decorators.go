package handler

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/cardform/pkg/logger"
)

// Logged logs each handled request at debug level with its duration.
func Logged[C Context, R any](log *slog.Logger, name string) Decorator[C, R] {
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "request handled",
				logger.Component(name),
				slog.String("path", ctx.Request().URL.Path),
				slog.Duration("duration", time.Since(start)),
			)
			return resp
		}
	}
}
