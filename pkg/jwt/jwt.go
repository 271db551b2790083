package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes access tokens from refresh tokens. It is stored in
// the "typ" claim and checked on every parse, so neither kind can stand in
// for the other.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims are the claims carried by every token. Subject holds the user id.
type Claims struct {
	jwtlib.RegisteredClaims
	Type TokenType `json:"typ"`
}

// Pair is the token pair returned on login.
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Service issues and verifies HS256 tokens.
type Service struct {
	signingKey []byte
	issuer     string
	ttl        map[TokenType]time.Duration
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func New(cfg Config, opts ...Option) (*Service, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSigningKey
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, ErrInvalidTTL
	}

	s := &Service{
		signingKey: []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		ttl: map[TokenType]time.Duration{
			AccessToken:  cfg.AccessTTL,
			RefreshToken: cfg.RefreshTTL,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate signs a token of the given type for subject.
func (s *Service) Generate(subject string, typ TokenType) (string, error) {
	if subject == "" {
		return "", ErrMissingSubject
	}
	ttl, ok := s.ttl[typ]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrWrongTokenType, typ)
	}

	now := s.now()
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
		Type: typ,
	}

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", typ, err)
	}
	return token, nil
}

// GeneratePair issues an access and a refresh token for subject.
func (s *Service) GeneratePair(subject string) (Pair, error) {
	access, err := s.Generate(subject, AccessToken)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := s.Generate(subject, RefreshToken)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

// Parse verifies the signature, expiry, issuer and type of a token.
func (s *Service) Parse(tokenString string, want TokenType) (*Claims, error) {
	opts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
		jwtlib.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	_, err := jwtlib.ParseWithClaims(tokenString, claims, func(*jwtlib.Token) (any, error) {
		return s.signingKey, nil
	}, opts...)
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return nil, errors.Join(ErrExpiredToken, err)
	case err != nil:
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if claims.Type != want {
		return nil, ErrWrongTokenType
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}
