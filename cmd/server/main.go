package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/cardform"
	"github.com/dmitrymomot/cardform/handler"
	"github.com/dmitrymomot/cardform/modules/cardinput"
	"github.com/dmitrymomot/cardform/pkg/cardvalidator"
	"github.com/dmitrymomot/cardform/pkg/clientip"
	"github.com/dmitrymomot/cardform/pkg/config"
	"github.com/dmitrymomot/cardform/pkg/environment"
	"github.com/dmitrymomot/cardform/pkg/httpserver"
	"github.com/dmitrymomot/cardform/pkg/logger"
	"github.com/dmitrymomot/cardform/pkg/ratelimiter"
	"github.com/dmitrymomot/cardform/pkg/requestid"
	"github.com/dmitrymomot/cardform/views"
)

// Config is the application configuration.
type Config struct {
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	AppName   string `env:"APP_NAME" envDefault:"cardform"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	HTTP      httpserver.Config
	Card      cardinput.Config
	RateLimit ratelimiter.Config
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(log)

	ctx := environment.WithContext(context.Background(), environment.Parse(cfg.AppEnv))

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	store := ratelimiter.NewMemoryStore()
	defer store.Close()

	h, err := newHandler(cfg, log, store)
	if err != nil {
		return err
	}
	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, h)
}

func newLogger(cfg Config) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.AppEnv), cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		lvl, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	if cfg.LogFormat != "" {
		f, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...), nil
}

func newHandler(cfg Config, log *slog.Logger, store ratelimiter.Store) (http.Handler, error) {
	errorHandler := handler.NewErrorHandler(log, views.ErrorHandlerConfig())

	bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	limited := handler.Wrap(handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrTooManyRequests)
	}), handler.WithErrorHandler[handler.Context, struct{}](errorHandler))

	card, err := cardinput.NewService(cfg.Card, submitCard(log), views.CardInput(), errorHandler,
		cardinput.WithLogger(log),
		cardinput.WithSubmitMiddleware(ratelimiter.Middleware(bucket, clientip.Key,
			ratelimiter.WithLimitedHandler(limited),
			ratelimiter.WithLogger(log),
		)),
	)
	if err != nil {
		return nil, err
	}

	mount := strings.TrimRight(cfg.Card.MountPath, "/")
	if mount == "" {
		mount = "/card"
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware)
	r.Get("/healthz", httpserver.Healthz)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, mount+"/", http.StatusFound)
	})
	r.Mount(mount, card.Handle())
	return r, nil
}

// submitCard accepts validated card data. Only the brand and the masked
// number are ever logged.
func submitCard(log *slog.Logger) cardform.SubmitFunc {
	return func(ctx context.Context, data cardform.FormData) error {
		brand := cardvalidator.BrandUnknown
		if v := cardvalidator.Number(data.Number); v.Card != nil {
			brand = v.Card.Brand
		}
		log.InfoContext(ctx, "card submitted",
			logger.Component("cardinput"),
			logger.Brand(brand.String()),
			logger.Masked(cardvalidator.Mask(data.Number)),
		)
		return nil
	}
}
