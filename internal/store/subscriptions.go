package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/toolgate/pkg/pg"
	"github.com/dmitrymomot/toolgate/pkg/subscription"
)

// HasActiveSubscription implements subscription.Store.
func (s *Store) HasActiveSubscription(ctx context.Context, userID, toolID int64) (bool, error) {
	var ok bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM subscriptions
			WHERE user_id = $1 AND tool_id = $2 AND status = $3
		)`, userID, toolID, string(subscription.StatusActive),
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check active subscription: %w", err)
	}
	return ok, nil
}

// ListActiveToolIDs implements subscription.Store.
func (s *Store) ListActiveToolIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT tool_id FROM subscriptions
		WHERE user_id = $1 AND status = $2
		ORDER BY tool_id`, userID, string(subscription.StatusActive),
	)
	if err != nil {
		return nil, fmt.Errorf("list active tools: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("list active tools: %w", err)
	}
	return ids, nil
}

// RecordCheckoutCompleted implements subscription.Store. The event id is
// claimed first; a replayed event or an existing active row for the pair
// leaves the ledger unchanged and reports false.
func (s *Store) RecordCheckoutCompleted(ctx context.Context, eventID string, sub *subscription.Subscription) (bool, error) {
	created := false
	err := pg.WithTx(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`INSERT INTO stripe_events (event_id) VALUES ($1) ON CONFLICT (event_id) DO NOTHING`,
			eventID,
		)
		if err != nil {
			return fmt.Errorf("claim event: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO subscriptions (user_id, tool_id, status, email)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, tool_id) WHERE status = 'active' DO NOTHING
			RETURNING id, created_at`,
			sub.UserID, sub.ToolID, string(sub.Status), sub.Email,
		).Scan(&sub.ID, &sub.CreatedAt)
		if pg.IsNotFoundError(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("insert subscription: %w", err)
		}

		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}
