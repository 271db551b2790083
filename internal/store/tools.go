package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/toolgate/pkg/catalog"
	"github.com/dmitrymomot/toolgate/pkg/pg"
)

const toolColumns = `id, name, description, price_id, is_active`

func scanTool(row pgx.CollectableRow) (catalog.Tool, error) {
	var t catalog.Tool
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.PriceID, &t.IsActive)
	return t, err
}

func (s *Store) getTool(ctx context.Context, where string, arg any) (*catalog.Tool, error) {
	rows, err := s.db.Query(ctx, `SELECT `+toolColumns+` FROM tools WHERE `+where, arg)
	if err != nil {
		return nil, err
	}
	t, err := pgx.CollectExactlyOneRow(rows, scanTool)
	if pg.IsNotFoundError(err) {
		return nil, catalog.ErrToolNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTools implements catalog.Store.
func (s *Store) ListTools(ctx context.Context) ([]catalog.Tool, error) {
	rows, err := s.db.Query(ctx, `SELECT `+toolColumns+` FROM tools ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	tools, err := pgx.CollectRows(rows, scanTool)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return tools, nil
}

// GetToolByID implements catalog.Store.
func (s *Store) GetToolByID(ctx context.Context, id int64) (*catalog.Tool, error) {
	return s.getTool(ctx, `id = $1`, id)
}

// GetToolByName implements catalog.Store. The match ignores case.
func (s *Store) GetToolByName(ctx context.Context, name string) (*catalog.Tool, error) {
	return s.getTool(ctx, `LOWER(name) = LOWER($1)`, name)
}

// UpsertTool implements catalog.Store.
func (s *Store) UpsertTool(ctx context.Context, tool *catalog.Tool) error {
	err := s.db.QueryRow(ctx, `
		INSERT INTO tools (name, description, price_id, is_active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ((LOWER(name))) DO UPDATE
		SET name = EXCLUDED.name,
			description = EXCLUDED.description,
			price_id = EXCLUDED.price_id,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
		RETURNING id`,
		tool.Name, tool.Description, tool.PriceID, tool.IsActive,
	).Scan(&tool.ID)
	if err != nil {
		return fmt.Errorf("upsert tool %q: %w", tool.Name, err)
	}
	return nil
}

// ToolExists implements subscription.Directory.
func (s *Store) ToolExists(ctx context.Context, toolID int64) (bool, error) {
	var ok bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tools WHERE id = $1)`, toolID).Scan(&ok); err != nil {
		return false, fmt.Errorf("check tool %d: %w", toolID, err)
	}
	return ok, nil
}
