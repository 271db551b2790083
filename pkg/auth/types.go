package auth

import (
	"context"
	"time"
)

// Roles known to the API. Role is free text; only RoleAgent gates a route.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

// User represents an account. Email is the unique login identifier.
type User struct {
	ID           int64
	Email        string
	PasswordHash []byte
	FirstName    string
	LastName     string
	Phone        string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

// Storage defines the persistence operations the account service needs.
// Lookups return ErrUserNotFound when no row matches.
type Storage interface {
	// CreateUser inserts the user and sets its ID and CreatedAt.
	// Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// ActivateUser sets is_active. Activating an active user is not an error.
	ActivateUser(ctx context.Context, id int64) error
}

// ActivationNotifier delivers the activation link to a new user.
type ActivationNotifier interface {
	SendActivation(ctx context.Context, user *User, link ActivationLink) error
}

// RegisterParams holds the registration form.
type RegisterParams struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}
