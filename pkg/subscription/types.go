package subscription

// SubscriptionStatus is stored as free text; only StatusActive grants access.
type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusCancelled SubscriptionStatus = "cancelled"
)

// EventType is a normalized billing event type. Events the service does not
// act on keep the provider's own name.
type EventType string

const (
	EventCheckoutCompleted EventType = "checkout_completed"
)

// Access describes which tools a user may use.
type Access struct {
	HasAccess bool    `json:"has_access"`
	Tools     []int64 `json:"tools"`
}

// CheckoutParams identifies who is buying which tool.
type CheckoutParams struct {
	UserID  int64
	Email   string
	ToolID  int64
	PriceID string
}
