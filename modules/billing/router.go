package billing

import (
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/toolgate/binder"
	"github.com/dmitrymomot/toolgate/handler"
	"github.com/dmitrymomot/toolgate/pkg/auth"
)

// Routes registers the billing endpoints on r.
func (m *Module) Routes(r chi.Router) {
	r.Get("/tools", handler.Wrap(m.listTools,
		handler.WithErrorHandler[handler.Context, struct{}](m.errorHandler),
	))

	// Signature is the only trust boundary here.
	r.Post("/stripe/webhook", handler.Wrap(m.webhook,
		handler.WithErrorHandler[handler.Context, struct{}](m.errorHandler),
	))

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(m.auth, m.authError))

		r.Post("/stripe/create-checkout", handler.Wrap(m.createCheckout,
			handler.WithBinder[handler.Context, CheckoutRequest](binder.JSON()),
			handler.WithErrorHandler[handler.Context, CheckoutRequest](m.errorHandler),
		))

		r.Get("/auth/check-subscription", handler.Wrap(m.checkSubscription,
			handler.WithErrorHandler[handler.Context, struct{}](m.errorHandler),
		))

		r.With(auth.RequireRole(auth.HasRole(auth.RoleAgent), m.authError)).
			Get("/agent/gateway", handler.Wrap(m.agentGateway,
				handler.WithErrorHandler[handler.Context, struct{}](m.errorHandler),
			))

		notImplemented := handler.Wrap(m.notImplemented,
			handler.WithErrorHandler[handler.Context, struct{}](m.errorHandler),
		)
		r.Post("/cancel-subscription", notImplemented)
		r.Get("/my-subscriptions", notImplemented)
	})
}
