package subscription

import "time"

// Subscription links a user to a tool. Rows are only created from a
// completed checkout; Email is the customer email at that moment.
type Subscription struct {
	ID        int64
	UserID    int64
	ToolID    int64
	Status    SubscriptionStatus
	Email     string
	CreatedAt time.Time
}

// IsActive returns true if the subscription grants access to its tool.
func (s *Subscription) IsActive() bool {
	return s.Status == StatusActive
}
