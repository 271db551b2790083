package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordRequired   = errors.New("password is required")
)

// Activation link errors
var (
	ErrInvalidActivationLink = errors.New("invalid activation link")
	ErrExpiredActivationLink = errors.New("invalid or expired activation link")
)

// Session token errors
var (
	ErrInvalidSession = errors.New("invalid or expired session token")
	ErrForbiddenRole  = errors.New("role is not allowed")
)
