package subscription

import (
	"context"
	"time"
)

// BillingProvider defines the minimal interface for payment provider integrations.
// The provider handles all payment complexity through hosted checkouts, so
// no card data ever reaches this service.
type BillingProvider interface {
	// CreateCheckoutLink creates a hosted checkout session
	CreateCheckoutLink(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error)

	// ParseWebhook validates and parses incoming webhook data.
	// Must validate signature to prevent webhook spoofing attacks.
	ParseWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error)
}

// CheckoutRequest contains data needed to create a checkout session.
type CheckoutRequest struct {
	PriceID string // Provider's price identifier
	ToolID  int64  // Echoed back in the completed-checkout event
	Email   string // Customer email; identifies the user in the webhook
}

// CheckoutLink represents a hosted checkout session.
type CheckoutLink struct {
	URL       string    // Hosted checkout URL
	SessionID string    // Provider's session identifier
	ExpiresAt time.Time // Link expiration
}

// WebhookEvent represents a normalized webhook event from the billing provider.
type WebhookEvent struct {
	ID            string    // Provider event id, used for deduplication
	Type          EventType // Normalized event type
	ProviderEvent string    // Original provider event name
	SessionID     string    // Checkout session id
	CustomerEmail string
	ToolID        string // Raw tool id from the session metadata
}
