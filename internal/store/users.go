package store

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/toolgate/pkg/auth"
	"github.com/dmitrymomot/toolgate/pkg/pg"
	"github.com/dmitrymomot/toolgate/pkg/subscription"
)

const userColumns = `id, email, password_hash, first_name, last_name, phone, role, is_active, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*auth.User, error) {
	var (
		u    auth.User
		hash string
	)
	if err := row.Scan(&u.ID, &u.Email, &hash, &u.FirstName, &u.LastName, &u.Phone, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.PasswordHash = []byte(hash)
	return &u, nil
}

// CreateUser implements auth.Storage.
func (s *Store) CreateUser(ctx context.Context, user *auth.User) error {
	err := s.db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name, phone, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		user.Email, string(user.PasswordHash), user.FirstName, user.LastName, user.Phone, user.Role, user.IsActive,
	).Scan(&user.ID, &user.CreatedAt)
	if pg.IsDuplicateKeyError(err) {
		return auth.ErrEmailAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByID implements auth.Storage.
func (s *Store) GetUserByID(ctx context.Context, id int64) (*auth.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if pg.IsNotFoundError(err) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// GetUserByEmail implements auth.Storage.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if pg.IsNotFoundError(err) {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// ActivateUser implements auth.Storage.
func (s *Store) ActivateUser(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `UPDATE users SET is_active = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("activate user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

// UserIDByEmail implements subscription.Directory.
func (s *Store) UserIDByEmail(ctx context.Context, email string) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	if pg.IsNotFoundError(err) {
		return 0, subscription.ErrUnknownCustomer
	}
	if err != nil {
		return 0, fmt.Errorf("get user id by email: %w", err)
	}
	return id, nil
}
