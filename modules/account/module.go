package account

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/toolgate/handler"
	"github.com/dmitrymomot/toolgate/internal/views"
	"github.com/dmitrymomot/toolgate/pkg/auth"
	"github.com/dmitrymomot/toolgate/pkg/clientip"
	"github.com/dmitrymomot/toolgate/pkg/ratelimiter"
	"github.com/dmitrymomot/toolgate/pkg/validator"
)

// Module serves registration, activation, login and token refresh.
type Module struct {
	cfg          Config
	auth         *auth.Service
	brand        views.Brand
	validate     *validator.Validator
	errorHandler handler.ErrorHandler[handler.Context]
	rateLimit    func(http.Handler) http.Handler
	logger       *slog.Logger
}

type Option func(*Module)

// WithLogger sets the logger used for request errors.
func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithErrorHandler replaces the JSON error handler built from the logger.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(m *Module) {
		if h != nil {
			m.errorHandler = h
		}
	}
}

// WithRateLimit limits the credential endpoints per client IP.
func WithRateLimit(bucket *ratelimiter.Bucket) Option {
	return func(m *Module) {
		if bucket == nil {
			return
		}
		m.rateLimit = ratelimiter.Middleware(bucket, clientKey,
			ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
				_ = handler.JSONError(handler.ErrTooManyRequests.WithMessage("Too many requests, try again later")).Render(w, r)
			}),
			ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				m.errorHandler(handler.NewContext(w, r), err)
			}),
		)
	}
}

// New creates the account module.
func New(cfg Config, svc *auth.Service, brand views.Brand, opts ...Option) *Module {
	if svc == nil {
		panic("account: auth service is required")
	}

	m := &Module{
		cfg:    cfg,
		auth:   svc,
		brand:  brand,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: validator.New(
			validator.WithMessage("eqfield", func(_, _ string) string { return "Passwords do not match" }),
		),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.errorHandler == nil {
		m.errorHandler = handler.NewErrorHandler(m.logger)
	}

	return m
}

func clientKey(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}
