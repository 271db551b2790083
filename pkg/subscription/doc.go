// Package subscription gates tools behind per-tool subscriptions paid through
// a hosted checkout.
//
// The flow has three parts:
//
//   - CreateCheckout refuses a tool the user already holds an active
//     subscription for and otherwise asks the BillingProvider for a hosted
//     checkout URL. The tool id travels in the session metadata and the user
//     is identified by email.
//   - HandleWebhook verifies the provider signature and, on a completed
//     checkout, records an active Subscription. The Store writes the row and
//     the provider event id in one transaction, so replays and concurrent
//     deliveries create at most one active row per user and tool.
//   - Access lists the tools a user may use.
//
// StripeProvider is the production BillingProvider. It owns its API client
// instance; tests swap the session client with WithCheckoutSessions.
//
//	provider, err := subscription.NewStripeProvider(cfg)
//	if err != nil {
//		return err
//	}
//	svc := subscription.NewService(provider, store, store, subscription.WithLogger(log))
//
// Webhook errors that mean the delivery itself is bad (signature, payload,
// unknown customer or tool) are matched by IsWebhookRejection and answered
// with 400; anything else is a server-side failure.
package subscription
