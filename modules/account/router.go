package account

import (
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/toolgate/binder"
	"github.com/dmitrymomot/toolgate/handler"
	"github.com/dmitrymomot/toolgate/pkg/validator"
)

// Routes registers the account endpoints on r. Credential endpoints are
// rate limited when WithRateLimit was given.
//
// Example:
//
//	r := chi.NewRouter()
//	account.New(cfg, authSvc, brand, account.WithLogger(log)).Routes(r)
func (m *Module) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		if m.rateLimit != nil {
			r.Use(m.rateLimit)
		}

		r.Post("/register", handler.Wrap(m.register,
			handler.WithBinder[handler.Context, RegisterRequest](binder.JSON()),
			handler.WithDecorators(validator.Decorator[handler.Context, RegisterRequest](m.validate)),
			handler.WithErrorHandler[handler.Context, RegisterRequest](m.errorHandler),
		))

		r.Post("/login", handler.Wrap(m.login,
			handler.WithBinder[handler.Context, LoginRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, LoginRequest](m.errorHandler),
		))

		r.Post("/token/refresh", handler.Wrap(m.refresh,
			handler.WithBinder[handler.Context, RefreshRequest](binder.JSON()),
			handler.WithDecorators(validator.Decorator[handler.Context, RefreshRequest](m.validate)),
			handler.WithErrorHandler[handler.Context, RefreshRequest](m.errorHandler),
		))
	})

	r.Get("/activate/{uid}/{token}", handler.Wrap(m.activate,
		handler.WithBinder[handler.Context, ActivateRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, ActivateRequest](m.errorHandler),
	))
}
