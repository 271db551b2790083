package jwt

import "errors"

var (
	ErrInvalidToken      = errors.New("jwt: invalid token")
	ErrExpiredToken      = errors.New("jwt: token is expired")
	ErrWrongTokenType    = errors.New("jwt: wrong token type")
	ErrMissingSigningKey = errors.New("jwt: missing signing key")
	ErrMissingSubject    = errors.New("jwt: missing subject")
	ErrInvalidTTL        = errors.New("jwt: token ttl must be positive")
	ErrMissingToken      = errors.New("jwt: missing bearer token")
)
