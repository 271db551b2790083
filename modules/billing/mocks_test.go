package billing_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v79"

	"github.com/dmitrymomot/toolgate/pkg/auth"
	"github.com/dmitrymomot/toolgate/pkg/catalog"
	"github.com/dmitrymomot/toolgate/pkg/subscription"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) CreateUser(ctx context.Context, user *auth.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUsers) GetUserByID(ctx context.Context, id int64) (*auth.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *mockUsers) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *mockUsers) ActivateUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type nopNotifier struct{}

func (nopNotifier) SendActivation(context.Context, *auth.User, auth.ActivationLink) error {
	return nil
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ListTools(ctx context.Context) ([]catalog.Tool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Tool), args.Error(1)
}

func (m *mockCatalog) GetToolByID(ctx context.Context, id int64) (*catalog.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Tool), args.Error(1)
}

func (m *mockCatalog) GetToolByName(ctx context.Context, name string) (*catalog.Tool, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Tool), args.Error(1)
}

func (m *mockCatalog) UpsertTool(ctx context.Context, tool *catalog.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}

type mockSubscriptions struct {
	mock.Mock
}

func (m *mockSubscriptions) HasActiveSubscription(ctx context.Context, userID, toolID int64) (bool, error) {
	args := m.Called(ctx, userID, toolID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubscriptions) ListActiveToolIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *mockSubscriptions) RecordCheckoutCompleted(ctx context.Context, eventID string, sub *subscription.Subscription) (bool, error) {
	args := m.Called(ctx, eventID, sub)
	return args.Bool(0), args.Error(1)
}

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) UserIDByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDirectory) ToolExists(ctx context.Context, toolID int64) (bool, error) {
	args := m.Called(ctx, toolID)
	return args.Bool(0), args.Error(1)
}

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}
