package billing

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/toolgate/handler"
	"github.com/dmitrymomot/toolgate/pkg/auth"
	"github.com/dmitrymomot/toolgate/pkg/catalog"
	"github.com/dmitrymomot/toolgate/pkg/jwt"
	"github.com/dmitrymomot/toolgate/pkg/subscription"
)

// Config holds billing module settings.
type Config struct {
	AgentDashboardURL string `env:"AGENT_DASHBOARD_URL" envDefault:"http://localhost:3000/agent/dashboard"`
}

// Module serves the tool catalog, checkout, webhook and access routes.
type Module struct {
	cfg          Config
	auth         *auth.Service
	catalog      *catalog.Service
	subs         *subscription.Service
	errorHandler handler.ErrorHandler[handler.Context]
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

// New creates the billing module.
// Panics if a service is nil to fail fast during initialization.
func New(cfg Config, authSvc *auth.Service, cat *catalog.Service, subs *subscription.Service, opts ...Option) *Module {
	if authSvc == nil || cat == nil || subs == nil {
		panic("billing: auth, catalog and subscription services are required")
	}

	m := &Module{
		cfg:     cfg,
		auth:    authSvc,
		catalog: cat,
		subs:    subs,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.errorHandler == nil {
		m.errorHandler = handler.NewErrorHandler(m.logger)
	}
	return m
}

var (
	errNoCredentials = handler.ErrUnauthorized.WithMessage("Authentication credentials were not provided.")
	errBadToken      = handler.ErrUnauthorized.WithMessage("Given token not valid for any token type")
	errRoleDenied    = handler.ErrForbidden.WithMessage("Unauthorized")
)

// authError renders RequireAuth and RequireRole rejections through the
// JSON error handler.
func (m *Module) authError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, jwt.ErrMissingToken):
		err = errNoCredentials
	case errors.Is(err, auth.ErrForbiddenRole):
		err = errRoleDenied
	case errors.Is(err, auth.ErrInvalidSession):
		err = errBadToken
	}
	m.errorHandler(handler.NewContext(w, r), err)
}
