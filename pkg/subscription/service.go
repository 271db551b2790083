package subscription

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/toolgate/pkg/logger"
	"github.com/dmitrymomot/toolgate/pkg/sanitizer"
)

// Service gates tools behind active subscriptions and drives the checkout
// and webhook flow.
type Service struct {
	provider  BillingProvider
	store     Store
	directory Directory
	logger    *slog.Logger
}

// ServiceOption configures optional Service settings.
type ServiceOption func(*Service)

// WithLogger sets a custom logger for the service
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a new Service with the given dependencies.
// Panics if a dependency is nil to fail fast during initialization.
func NewService(provider BillingProvider, store Store, directory Directory, opts ...ServiceOption) *Service {
	if provider == nil {
		panic("subscription: BillingProvider is required")
	}
	if store == nil {
		panic("subscription: Store is required")
	}
	if directory == nil {
		panic("subscription: Directory is required")
	}

	s := &Service{
		provider:  provider,
		store:     store,
		directory: directory,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Access returns the tools the user holds an active subscription for.
func (s *Service) Access(ctx context.Context, userID int64) (Access, error) {
	ids, err := s.store.ListActiveToolIDs(ctx, userID)
	if err != nil {
		return Access{}, fmt.Errorf("failed to list active subscriptions: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return Access{HasAccess: len(ids) > 0, Tools: ids}, nil
}

// CreateCheckout opens a hosted checkout for the tool unless the user
// already holds an active subscription to it, in which case the provider is
// never called and ErrSubscriptionAlreadyExists is returned.
func (s *Service) CreateCheckout(ctx context.Context, params CheckoutParams) (*CheckoutLink, error) {
	if params.PriceID == "" {
		return nil, ErrMissingPriceID
	}

	exists, err := s.store.HasActiveSubscription(ctx, params.UserID, params.ToolID)
	if err != nil {
		return nil, fmt.Errorf("failed to check subscription: %w", err)
	}
	if exists {
		return nil, ErrSubscriptionAlreadyExists
	}

	link, err := s.provider.CreateCheckoutLink(ctx, CheckoutRequest{
		PriceID: params.PriceID,
		ToolID:  params.ToolID,
		Email:   params.Email,
	})
	if err != nil {
		return nil, errors.Join(ErrProviderError, err)
	}

	s.logger.InfoContext(ctx, "checkout session created",
		logger.UserID(params.UserID),
		logger.ToolID(params.ToolID),
		logger.SessionID(link.SessionID),
		logger.Component("subscription"),
	)

	return link, nil
}

// HandleWebhook verifies and applies a provider webhook. Only completed
// checkouts change state; other events are acknowledged and ignored.
//
// A replayed event, or a completed checkout for a user and tool that already
// have an active subscription, leaves the ledger unchanged and returns nil,
// so the endpoint answers 200 and the processor stops retrying. Only an
// unverifiable payload, an unknown customer or tool, or a store failure
// returns an error.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.provider.ParseWebhook(ctx, payload, signature)
	if err != nil {
		return err
	}

	if event.Type != EventCheckoutCompleted {
		s.logger.DebugContext(ctx, "webhook event ignored",
			logger.EventID(event.ID),
			logger.EventType(event.ProviderEvent),
			logger.Component("subscription"),
		)
		return nil
	}

	email := sanitizer.NormalizeEmail(event.CustomerEmail)
	if email == "" {
		return fmt.Errorf("%w: empty customer email", ErrUnknownCustomer)
	}
	toolID, err := strconv.ParseInt(event.ToolID, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: tool id %q", ErrUnknownTool, event.ToolID)
	}

	userID, err := s.directory.UserIDByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUnknownCustomer) {
			return err
		}
		return fmt.Errorf("failed to resolve customer: %w", err)
	}

	ok, err := s.directory.ToolExists(ctx, toolID)
	if err != nil {
		return fmt.Errorf("failed to resolve tool: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: tool id %d", ErrUnknownTool, toolID)
	}

	sub := &Subscription{
		UserID: userID,
		ToolID: toolID,
		Status: StatusActive,
		Email:  email,
	}
	created, err := s.store.RecordCheckoutCompleted(ctx, event.ID, sub)
	if err != nil {
		return fmt.Errorf("failed to record subscription: %w", err)
	}

	if !created {
		s.logger.InfoContext(ctx, "checkout already recorded",
			logger.EventID(event.ID),
			logger.UserID(userID),
			logger.ToolID(toolID),
			logger.Component("subscription"),
		)
		return nil
	}

	s.logger.InfoContext(ctx, "subscription activated",
		logger.EventID(event.ID),
		logger.UserID(userID),
		logger.ToolID(toolID),
		logger.Component("subscription"),
	)
	return nil
}
