package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// StripeConfig holds configuration for the Stripe billing provider.
type StripeConfig struct {
	SecretKey     string `env:"STRIPE_SECRET_KEY,required"`
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET,required"`

	// SuccessURL may carry Stripe's {CHECKOUT_SESSION_ID} placeholder.
	SuccessURL string `env:"CHECKOUT_SUCCESS_URL" envDefault:"http://localhost:8080/dashboard?status=success&session_id={CHECKOUT_SESSION_ID}"`
	CancelURL  string `env:"CHECKOUT_CANCEL_URL" envDefault:"http://localhost:8080/cancel"`
	TrialDays  int64  `env:"CHECKOUT_TRIAL_DAYS" envDefault:"7"`

	WebhookTolerance time.Duration `env:"STRIPE_WEBHOOK_TOLERANCE" envDefault:"5m"`
}

// CheckoutSessionCreator is the part of the Stripe API client used to open
// checkout sessions. *session.Client from stripe-go satisfies it.
type CheckoutSessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeProvider implements BillingProvider for Stripe Checkout.
type StripeProvider struct {
	sessions CheckoutSessionCreator
	config   StripeConfig
}

// StripeOption configures a StripeProvider.
type StripeOption func(*StripeProvider)

// WithCheckoutSessions replaces the API client used to create sessions.
func WithCheckoutSessions(c CheckoutSessionCreator) StripeOption {
	return func(p *StripeProvider) {
		if c != nil {
			p.sessions = c
		}
	}
}

// NewStripeProvider creates a Stripe billing provider with its own API
// client instance. The process-wide stripe.Key is never touched.
func NewStripeProvider(config StripeConfig, opts ...StripeOption) (*StripeProvider, error) {
	if config.SecretKey == "" {
		return nil, ErrMissingAPIKey
	}
	if config.WebhookSecret == "" {
		return nil, ErrMissingWebhookSecret
	}
	if config.SuccessURL == "" || config.CancelURL == "" {
		return nil, ErrMissingCheckoutURLs
	}
	if config.TrialDays < 0 {
		return nil, fmt.Errorf("invalid trial period: %d days", config.TrialDays)
	}
	if config.WebhookTolerance <= 0 {
		config.WebhookTolerance = webhook.DefaultTolerance
	}

	p := &StripeProvider{config: config}
	for _, opt := range opts {
		opt(p)
	}
	if p.sessions == nil {
		p.sessions = client.New(config.SecretKey, nil).CheckoutSessions
	}

	return p, nil
}

// CreateCheckoutLink creates a hosted subscription checkout in Stripe.
func (p *StripeProvider) CreateCheckoutLink(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error) {
	if req.PriceID == "" {
		return nil, ErrMissingPriceID
	}
	if req.Email == "" {
		return nil, ErrMissingEmail
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail:      stripe.String(req.Email),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.config.SuccessURL),
		CancelURL:  stripe.String(p.config.CancelURL),
		Metadata:   map[string]string{"tool_id": strconv.FormatInt(req.ToolID, 10)},
	}
	if p.config.TrialDays > 0 {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(p.config.TrialDays),
		}
	}
	params.Context = ctx

	sess, err := p.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe checkout session: %w", err)
	}
	if sess.URL == "" {
		return nil, ErrNoCheckoutURL
	}

	link := &CheckoutLink{
		URL:       sess.URL,
		SessionID: sess.ID,
	}
	if sess.ExpiresAt > 0 {
		link.ExpiresAt = time.Unix(sess.ExpiresAt, 0).UTC()
	}
	return link, nil
}

// ParseWebhook verifies the Stripe-Signature header and normalizes the event.
func (p *StripeProvider) ParseWebhook(ctx context.Context, payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.config.WebhookSecret,
		webhook.ConstructEventOptions{
			Tolerance:                p.config.WebhookTolerance,
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		if isSignatureError(err) {
			return nil, errors.Join(ErrWebhookVerificationFailed, err)
		}
		return nil, errors.Join(ErrInvalidWebhookPayload, err)
	}

	out := &WebhookEvent{
		ID:            event.ID,
		Type:          EventType(event.Type),
		ProviderEvent: string(event.Type),
	}
	if event.ID == "" || event.Type == "" {
		return nil, fmt.Errorf("%w: missing event id or type", ErrInvalidWebhookPayload)
	}

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		return out, nil
	}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, fmt.Errorf("%w: missing checkout session", ErrInvalidWebhookPayload)
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, errors.Join(ErrInvalidWebhookPayload, err)
	}

	out.Type = EventCheckoutCompleted
	out.SessionID = sess.ID
	out.CustomerEmail = sess.CustomerEmail
	if out.CustomerEmail == "" && sess.CustomerDetails != nil {
		out.CustomerEmail = sess.CustomerDetails.Email
	}
	out.ToolID = strings.TrimSpace(sess.Metadata["tool_id"])

	return out, nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}
