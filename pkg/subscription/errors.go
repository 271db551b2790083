package subscription

import "errors"

var (
	ErrSubscriptionAlreadyExists = errors.New("subscription already exists")
	ErrProviderError             = errors.New("subscription provider error")

	// Webhook errors. All of them mean the delivery is rejected with 400.
	ErrWebhookVerificationFailed = errors.New("webhook signature verification failed")
	ErrInvalidWebhookPayload     = errors.New("invalid webhook payload")
	ErrUnknownCustomer           = errors.New("webhook customer does not match a user")
	ErrUnknownTool               = errors.New("webhook tool does not match a tool")

	// Provider-specific errors
	ErrMissingAPIKey        = errors.New("billing provider API key is required")
	ErrMissingWebhookSecret = errors.New("billing provider webhook secret is required")
	ErrMissingCheckoutURLs  = errors.New("checkout success and cancel URLs are required")
	ErrNoCheckoutURL        = errors.New("no checkout URL returned from provider")
	ErrMissingPriceID       = errors.New("price ID is required")
	ErrMissingEmail         = errors.New("customer email is required")
)

// IsWebhookRejection reports whether err means the webhook delivery itself
// is unacceptable, as opposed to a failure on this side.
func IsWebhookRejection(err error) bool {
	return errors.Is(err, ErrWebhookVerificationFailed) ||
		errors.Is(err, ErrInvalidWebhookPayload) ||
		errors.Is(err, ErrUnknownCustomer) ||
		errors.Is(err, ErrUnknownTool)
}
