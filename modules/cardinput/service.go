package cardinput

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/cardform"
	"github.com/dmitrymomot/cardform/binder"
	"github.com/dmitrymomot/cardform/handler"
	"github.com/dmitrymomot/cardform/pkg/cardvalidator"
)

// Config is loaded from the environment by the application.
type Config struct {
	AcceptedBrands []string `env:"CARD_ACCEPTED_BRANDS" envSeparator:","`
	StreamBuffer   int      `env:"CARD_STREAM_BUFFER" envDefault:"16"`
	MountPath      string   `env:"CARD_MOUNT_PATH" envDefault:"/card"`
}

// Views renders the module's markup.
type Views struct {
	Page  func(PageParams) templ.Component
	Toast func(ToastParams) templ.Component
}

// PageParams is the data for the full form page.
type PageParams struct {
	FormID    string
	BasePath  string
	Signals   Signals
	Holder    string
	Errors    map[string][]string
	Submitted bool
	// TestCards lists sample numbers to show outside production.
	TestCards []string
}

var testCards = []string{"4111 1111 1111 1111", "5555 5555 5555 4444", "3782 822463 10005"}

// ToastParams is the data for a notification patched into the page.
type ToastParams struct {
	Type    string // "success", "warning" or "error"
	Message string
}

// Signals is the client signal store of a form session.
type Signals struct {
	FormID string `json:"formId,omitempty"`
	cardform.View
	NumberFormatted string `json:"numberFormatted"`
}

// Service serves an interactive card form. Each open page holds a form
// session that lives while its DataStar stream is connected.
type Service struct {
	cfg          Config
	brands       []cardvalidator.Brand
	onSubmit     cardform.SubmitFunc
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
	logger       *slog.Logger
	sessions     *sessions
	submitGuards []func(http.Handler) http.Handler
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSubmitMiddleware guards POST /submit, for example with a rate limiter.
func WithSubmitMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(s *Service) {
		s.submitGuards = append(s.submitGuards, mw...)
	}
}

// NewService validates cfg and returns a service that passes submitted card
// data to onSubmit.
func NewService(
	cfg Config,
	onSubmit cardform.SubmitFunc,
	views *Views,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...Option,
) (*Service, error) {
	if onSubmit == nil {
		return nil, cardform.ErrNoSubmitHandler
	}
	if views == nil || views.Page == nil || views.Toast == nil {
		return nil, ErrMissingViews
	}

	brands := make([]cardvalidator.Brand, 0, len(cfg.AcceptedBrands))
	for _, name := range cfg.AcceptedBrands {
		if strings.TrimSpace(name) == "" {
			continue
		}
		b, err := cardvalidator.ParseBrand(name)
		if err != nil {
			return nil, fmt.Errorf("cardinput: accepted brands: %w", err)
		}
		brands = append(brands, b)
	}
	cfg.MountPath = strings.TrimRight(cfg.MountPath, "/")

	s := &Service{
		cfg:          cfg,
		brands:       brands,
		onSubmit:     onSubmit,
		views:        views,
		errorHandler: errorHandler,
		logger:       slog.Default(),
		sessions:     newSessions(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger, handler.ErrorHandlerConfig{})
	}
	return s, nil
}

// Handle returns the module router, to be mounted at Config.MountPath.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	))
	r.Get("/stream", handler.Wrap(s.stream,
		handler.WithBinders[handler.Context, StreamRequest](binder.Signals()),
		handler.WithErrorHandler[handler.Context, StreamRequest](s.errorHandler),
	))
	r.Post("/input/{field}", handler.Wrap(s.input,
		handler.WithBinders[handler.Context, InputRequest](
			binder.Path(chi.URLParam),
			binder.Signals(),
		),
		handler.WithErrorHandler[handler.Context, InputRequest](s.errorHandler),
		handler.WithDecorators(handler.Logged[handler.Context, InputRequest](s.logger, "cardinput")),
	))
	r.With(s.submitGuards...).Post("/submit", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, SubmitRequest](
			binder.Signals(), // DataStar action
			binder.Form(),    // plain form post
		),
		handler.WithErrorHandler[handler.Context, SubmitRequest](s.errorHandler),
		handler.WithDecorators(handler.Logged[handler.Context, SubmitRequest](s.logger, "cardinput")),
	))

	return r
}

// Sessions reports the number of connected form sessions.
func (s *Service) Sessions() int {
	return s.sessions.len()
}

func (s *Service) formOptions() []cardform.Option {
	return []cardform.Option{
		cardform.WithAcceptedBrands(s.brands...),
		cardform.WithLogger(s.logger),
	}
}

func (s *Service) signals(f *cardform.Form, formID string) Signals {
	return Signals{
		FormID:          formID,
		View:            f.View(),
		NumberFormatted: cardvalidator.Format(f.Data().Number),
	}
}
