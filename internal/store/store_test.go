package store_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolgate/internal/db"
	"github.com/dmitrymomot/toolgate/internal/store"
	"github.com/dmitrymomot/toolgate/pkg/auth"
	"github.com/dmitrymomot/toolgate/pkg/catalog"
	"github.com/dmitrymomot/toolgate/pkg/pg"
	"github.com/dmitrymomot/toolgate/pkg/subscription"
)

// newTestStore connects to TEST_PG_CONN_URL, applies migrations and empties
// every table. Tests are skipped without a database.
func newTestStore(t *testing.T) (*store.Store, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_PG_CONN_URL")
	if dsn == "" {
		t.Skip("TEST_PG_CONN_URL is not set")
	}

	ctx := context.Background()
	cfg := pg.Config{
		ConnectionString:  dsn,
		MaxOpenConns:      4,
		MaxIdleConns:      1,
		HealthCheckPeriod: time.Minute,
		MaxConnIdleTime:   time.Minute,
		MaxConnLifetime:   time.Hour,
		RetryAttempts:     1,
		MigrationsPath:    "migrations",
		MigrationsTable:   "schema_migrations",
	}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.Migrate(ctx, pool, cfg, db.Migrations, slog.New(slog.DiscardHandler)))
	_, err = pool.Exec(ctx, `TRUNCATE stripe_events, subscriptions, tools, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return store.New(pool), pool
}

func TestStore(t *testing.T) {
	s, pool := newTestStore(t)
	ctx := context.Background()

	user := &auth.User{
		Email:        "ada@example.com",
		PasswordHash: []byte("$2a$04$hash"),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Role:         auth.RoleUser,
	}

	t.Run("users", func(t *testing.T) {
		require.NoError(t, s.CreateUser(ctx, user))
		assert.NotZero(t, user.ID)
		assert.False(t, user.CreatedAt.IsZero())

		dup := *user
		assert.ErrorIs(t, s.CreateUser(ctx, &dup), auth.ErrEmailAlreadyExists)

		got, err := s.GetUserByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)
		assert.False(t, got.IsActive)
		assert.Equal(t, auth.RoleUser, got.Role)

		require.NoError(t, s.ActivateUser(ctx, user.ID))
		require.NoError(t, s.ActivateUser(ctx, user.ID))
		got, err = s.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, got.IsActive)

		_, err = s.GetUserByID(ctx, 999999)
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
		assert.ErrorIs(t, s.ActivateUser(ctx, 999999), auth.ErrUserNotFound)

		id, err := s.UserIDByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, id)
		_, err = s.UserIDByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, subscription.ErrUnknownCustomer)
	})

	helper := &catalog.Tool{Name: "GPT Helper", Description: "Writes things", PriceID: "price_1", IsActive: true}
	other := &catalog.Tool{Name: "Image Tool", PriceID: "price_2", IsActive: true}

	t.Run("tools", func(t *testing.T) {
		require.NoError(t, s.UpsertTool(ctx, helper))
		require.NoError(t, s.UpsertTool(ctx, other))

		renamed := &catalog.Tool{Name: "gpt helper", Description: "Updated", PriceID: "price_1b", IsActive: true}
		require.NoError(t, s.UpsertTool(ctx, renamed))
		assert.Equal(t, helper.ID, renamed.ID)

		got, err := s.GetToolByName(ctx, "GPT HELPER")
		require.NoError(t, err)
		assert.Equal(t, "price_1b", got.PriceID)

		_, err = s.GetToolByID(ctx, 999999)
		assert.ErrorIs(t, err, catalog.ErrToolNotFound)

		tools, err := s.ListTools(ctx)
		require.NoError(t, err)
		require.Len(t, tools, 2)
		assert.Equal(t, helper.ID, tools[0].ID)

		ok, err := s.ToolExists(ctx, other.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("subscriptions", func(t *testing.T) {
		sub := &subscription.Subscription{UserID: user.ID, ToolID: helper.ID, Status: subscription.StatusActive, Email: user.Email}

		created, err := s.RecordCheckoutCompleted(ctx, "evt_1", sub)
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotZero(t, sub.ID)

		created, err = s.RecordCheckoutCompleted(ctx, "evt_1", &subscription.Subscription{UserID: user.ID, ToolID: helper.ID, Status: subscription.StatusActive, Email: user.Email})
		require.NoError(t, err)
		assert.False(t, created, "replayed event")

		created, err = s.RecordCheckoutCompleted(ctx, "evt_2", &subscription.Subscription{UserID: user.ID, ToolID: helper.ID, Status: subscription.StatusActive, Email: user.Email})
		require.NoError(t, err)
		assert.False(t, created, "second active row for the same pair")

		_, err = pool.Exec(ctx, `INSERT INTO subscriptions (user_id, tool_id, status, email) VALUES ($1, $2, 'cancelled', $3)`, user.ID, other.ID, user.Email)
		require.NoError(t, err)

		has, err := s.HasActiveSubscription(ctx, user.ID, helper.ID)
		require.NoError(t, err)
		assert.True(t, has)
		has, err = s.HasActiveSubscription(ctx, user.ID, other.ID)
		require.NoError(t, err)
		assert.False(t, has)

		ids, err := s.ListActiveToolIDs(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{helper.ID}, ids)

		var count int
		require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions WHERE status = 'active'`).Scan(&count))
		assert.Equal(t, 1, count)
	})
}
