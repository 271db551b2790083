package subscription_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/dmitrymomot/toolgate/pkg/subscription"
)

const testWebhookSecret = "whsec_test"

func stripeConfig() subscription.StripeConfig {
	return subscription.StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: testWebhookSecret,
		SuccessURL:    "https://app.example.com/dashboard?status=success&session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     "https://app.example.com/cancel",
		TrialDays:     7,
	}
}

func sign(payload string, ts time.Time) string {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testWebhookSecret,
		Timestamp: ts,
	})
	return signed.Header
}

func TestNewStripeProvider(t *testing.T) {
	t.Parallel()

	cfg := stripeConfig()
	cfg.SecretKey = ""
	_, err := subscription.NewStripeProvider(cfg)
	assert.ErrorIs(t, err, subscription.ErrMissingAPIKey)

	cfg = stripeConfig()
	cfg.WebhookSecret = ""
	_, err = subscription.NewStripeProvider(cfg)
	assert.ErrorIs(t, err, subscription.ErrMissingWebhookSecret)

	cfg = stripeConfig()
	cfg.CancelURL = ""
	_, err = subscription.NewStripeProvider(cfg)
	assert.ErrorIs(t, err, subscription.ErrMissingCheckoutURLs)

	_, err = subscription.NewStripeProvider(stripeConfig())
	assert.NoError(t, err)
}

func TestStripeProvider_CreateCheckoutLink(t *testing.T) {
	t.Parallel()

	t.Run("builds subscription session", func(t *testing.T) {
		t.Parallel()
		sessions := new(mockSessions)
		var got *stripe.CheckoutSessionParams
		sessions.On("New", mock.Anything).Run(func(args mock.Arguments) {
			got = args.Get(0).(*stripe.CheckoutSessionParams)
		}).Return(&stripe.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/pay/cs_1", ExpiresAt: 1700000000}, nil)

		p, err := subscription.NewStripeProvider(stripeConfig(), subscription.WithCheckoutSessions(sessions))
		require.NoError(t, err)

		ctx := context.Background()
		link, err := p.CreateCheckoutLink(ctx, subscription.CheckoutRequest{PriceID: "price_123", ToolID: 3, Email: "ada@example.com"})
		require.NoError(t, err)

		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_1", link.URL)
		assert.Equal(t, "cs_1", link.SessionID)
		assert.Equal(t, time.Unix(1700000000, 0).UTC(), link.ExpiresAt)

		require.NotNil(t, got)
		assert.Equal(t, string(stripe.CheckoutSessionModeSubscription), *got.Mode)
		assert.Equal(t, "ada@example.com", *got.CustomerEmail)
		require.Len(t, got.PaymentMethodTypes, 1)
		assert.Equal(t, "card", *got.PaymentMethodTypes[0])
		require.Len(t, got.LineItems, 1)
		assert.Equal(t, "price_123", *got.LineItems[0].Price)
		assert.Equal(t, int64(1), *got.LineItems[0].Quantity)
		assert.Equal(t, int64(7), *got.SubscriptionData.TrialPeriodDays)
		assert.Contains(t, *got.SuccessURL, "{CHECKOUT_SESSION_ID}")
		assert.Equal(t, "https://app.example.com/cancel", *got.CancelURL)
		assert.Equal(t, "3", got.Metadata["tool_id"])
		assert.Equal(t, ctx, got.Context)
	})

	t.Run("api error", func(t *testing.T) {
		t.Parallel()
		sessions := new(mockSessions)
		sessions.On("New", mock.Anything).Return(nil, errors.New("No such price"))

		p, err := subscription.NewStripeProvider(stripeConfig(), subscription.WithCheckoutSessions(sessions))
		require.NoError(t, err)

		_, err = p.CreateCheckoutLink(context.Background(), subscription.CheckoutRequest{PriceID: "price_x", ToolID: 1, Email: "a@b.co"})
		assert.Error(t, err)
	})

	t.Run("missing url", func(t *testing.T) {
		t.Parallel()
		sessions := new(mockSessions)
		sessions.On("New", mock.Anything).Return(&stripe.CheckoutSession{ID: "cs_2"}, nil)

		p, err := subscription.NewStripeProvider(stripeConfig(), subscription.WithCheckoutSessions(sessions))
		require.NoError(t, err)

		_, err = p.CreateCheckoutLink(context.Background(), subscription.CheckoutRequest{PriceID: "price_x", ToolID: 1, Email: "a@b.co"})
		assert.ErrorIs(t, err, subscription.ErrNoCheckoutURL)
	})

	t.Run("validates request", func(t *testing.T) {
		t.Parallel()
		sessions := new(mockSessions)
		p, err := subscription.NewStripeProvider(stripeConfig(), subscription.WithCheckoutSessions(sessions))
		require.NoError(t, err)

		_, err = p.CreateCheckoutLink(context.Background(), subscription.CheckoutRequest{ToolID: 1, Email: "a@b.co"})
		assert.ErrorIs(t, err, subscription.ErrMissingPriceID)

		_, err = p.CreateCheckoutLink(context.Background(), subscription.CheckoutRequest{PriceID: "price_x", ToolID: 1})
		assert.ErrorIs(t, err, subscription.ErrMissingEmail)

		sessions.AssertNotCalled(t, "New", mock.Anything)
	})
}

func TestStripeProvider_ParseWebhook(t *testing.T) {
	t.Parallel()

	p, err := subscription.NewStripeProvider(stripeConfig(), subscription.WithCheckoutSessions(new(mockSessions)))
	require.NoError(t, err)

	completed := `{
		"id": "evt_1",
		"object": "event",
		"api_version": "2020-08-27",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_1",
			"object": "checkout.session",
			"customer_email": "ada@example.com",
			"metadata": {"tool_id": "3"}
		}}
	}`

	t.Run("checkout completed", func(t *testing.T) {
		t.Parallel()
		ev, err := p.ParseWebhook(context.Background(), []byte(completed), sign(completed, time.Now()))
		require.NoError(t, err)

		assert.Equal(t, &subscription.WebhookEvent{
			ID:            "evt_1",
			Type:          subscription.EventCheckoutCompleted,
			ProviderEvent: "checkout.session.completed",
			SessionID:     "cs_1",
			CustomerEmail: "ada@example.com",
			ToolID:        "3",
		}, ev)
	})

	t.Run("email from customer details", func(t *testing.T) {
		t.Parallel()
		payload := `{"id":"evt_3","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_3","object":"checkout.session","customer_details":{"email":"bob@example.com"},"metadata":{"tool_id":"4"}}}}`

		ev, err := p.ParseWebhook(context.Background(), []byte(payload), sign(payload, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", ev.CustomerEmail)
	})

	t.Run("other event type", func(t *testing.T) {
		t.Parallel()
		payload := `{"id":"evt_2","object":"event","type":"invoice.paid","data":{"object":{"id":"in_1","object":"invoice"}}}`

		ev, err := p.ParseWebhook(context.Background(), []byte(payload), sign(payload, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, subscription.EventType("invoice.paid"), ev.Type)
		assert.Empty(t, ev.CustomerEmail)
	})

	t.Run("tampered payload", func(t *testing.T) {
		t.Parallel()
		header := sign(completed, time.Now())
		tampered := []byte(completed[:len(completed)-1] + ` `)

		_, err := p.ParseWebhook(context.Background(), tampered, header)
		assert.ErrorIs(t, err, subscription.ErrWebhookVerificationFailed)
	})

	t.Run("missing signature", func(t *testing.T) {
		t.Parallel()
		_, err := p.ParseWebhook(context.Background(), []byte(completed), "")
		assert.ErrorIs(t, err, subscription.ErrWebhookVerificationFailed)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		t.Parallel()
		_, err := p.ParseWebhook(context.Background(), []byte(completed), sign(completed, time.Now().Add(-time.Hour)))
		assert.ErrorIs(t, err, subscription.ErrWebhookVerificationFailed)
	})

	t.Run("signed garbage", func(t *testing.T) {
		t.Parallel()
		_, err := p.ParseWebhook(context.Background(), []byte("not json"), sign("not json", time.Now()))
		assert.ErrorIs(t, err, subscription.ErrInvalidWebhookPayload)
		assert.True(t, subscription.IsWebhookRejection(err))
	})
}
