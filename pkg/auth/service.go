package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/toolgate/pkg/jwt"
	"github.com/dmitrymomot/toolgate/pkg/logger"
	"github.com/dmitrymomot/toolgate/pkg/sanitizer"
)

// Service implements registration, activation and password login.
type Service struct {
	cfg      Config
	storage  Storage
	tokens   *jwt.Service
	notifier ActivationNotifier
	logger   *slog.Logger
	now      func() time.Time

	// dummyHash is compared against when the email is unknown so that
	// lookups and password checks take similar time.
	dummyHash []byte
}

type Option func(*Service)

// WithLogger sets a custom logger for the service
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now for activation links.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates the account service.
func NewService(cfg Config, storage Storage, tokens *jwt.Service, notifier ActivationNotifier, opts ...Option) (*Service, error) {
	if cfg.ActivationSecret == "" {
		return nil, fmt.Errorf("auth: activation secret is required")
	}
	if cfg.ActivationTTL <= 0 {
		return nil, fmt.Errorf("auth: activation ttl must be positive")
	}
	if storage == nil || tokens == nil || notifier == nil {
		return nil, fmt.Errorf("auth: storage, token service and notifier are required")
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	s := &Service{
		cfg:      cfg,
		storage:  storage,
		tokens:   tokens,
		notifier: notifier,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}
	s.dummyHash = dummy

	return s, nil
}

// Register creates an inactive user and sends the activation link. A failed
// delivery is logged and does not fail the registration.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	if params.Password == "" {
		return nil, ErrPasswordRequired
	}

	email := sanitizer.NormalizeEmail(params.Email)
	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    sanitizer.Apply(params.FirstName, sanitizer.StripControl, sanitizer.NormalizeWhitespace),
		LastName:     sanitizer.Apply(params.LastName, sanitizer.StripControl, sanitizer.NormalizeWhitespace),
		Phone:        sanitizer.NormalizeWhitespace(params.Phone),
		Role:         RoleUser,
		IsActive:     false,
	}
	if err := s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	link, err := s.activationLink(user)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to generate activation link",
			logger.UserID(user.ID),
			logger.Error(err),
			logger.Component("auth"),
		)
		return user, nil
	}

	if err := s.notifier.SendActivation(ctx, user, link); err != nil {
		s.logger.ErrorContext(ctx, "failed to send activation email",
			logger.UserID(user.ID),
			logger.Error(err),
			logger.Component("auth"),
		)
	}

	return user, nil
}

// Activate verifies an activation link and marks the user active. Reusing a
// valid link succeeds again.
func (s *Service) Activate(ctx context.Context, uid, tok string) (*User, error) {
	id, err := DecodeUID(uid)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.GetUserByID(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidActivationLink
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.checkActivationToken(user, tok); err != nil {
		return nil, err
	}

	if !user.IsActive {
		if err := s.storage.ActivateUser(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to activate user: %w", err)
		}
		user.IsActive = true
		s.logger.InfoContext(ctx, "user activated",
			logger.UserID(user.ID),
			logger.Component("auth"),
		)
	}

	return user, nil
}

// Authenticate verifies email and password. Unknown emails, wrong passwords
// and inactive accounts all return ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)
	if email == "" || password == "" {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates the user and issues an access/refresh token pair.
func (s *Service) Login(ctx context.Context, email, password string) (*User, jwt.Pair, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, jwt.Pair{}, err
	}

	pair, err := s.tokens.GeneratePair(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return nil, jwt.Pair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return user, pair, nil
}

// Refresh exchanges a refresh token for a new access token. The user must
// still exist and be active.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Parse(refreshToken, jwt.RefreshToken)
	if err != nil {
		return "", errors.Join(ErrInvalidSession, err)
	}

	user, err := s.UserFromClaims(ctx, claims)
	if err != nil {
		return "", err
	}

	access, err := s.tokens.Generate(strconv.FormatInt(user.ID, 10), jwt.AccessToken)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}
	return access, nil
}

// UserFromClaims loads the active user a verified token was issued for.
func (s *Service) UserFromClaims(ctx context.Context, claims *jwt.Claims) (*User, error) {
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidSession
	}

	user, err := s.storage.GetUserByID(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidSession
	}
	return user, nil
}
