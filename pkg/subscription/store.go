package subscription

import "context"

// Store defines the interface for subscription persistence.
type Store interface {
	// HasActiveSubscription reports whether an active row exists for the pair.
	HasActiveSubscription(ctx context.Context, userID, toolID int64) (bool, error)

	// ListActiveToolIDs returns the ids of tools with an active subscription,
	// ascending.
	ListActiveToolIDs(ctx context.Context, userID int64) ([]int64, error)

	// RecordCheckoutCompleted stores sub and marks eventID processed in one
	// transaction. It returns false without writing when the event was
	// already processed or the pair already has an active subscription.
	RecordCheckoutCompleted(ctx context.Context, eventID string, sub *Subscription) (bool, error)
}

// Directory resolves the user and tool a completed checkout refers to.
type Directory interface {
	// UserIDByEmail returns ErrUnknownCustomer when no user has email.
	UserIDByEmail(ctx context.Context, email string) (int64, error)
	ToolExists(ctx context.Context, toolID int64) (bool, error)
}
