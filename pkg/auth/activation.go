package auth

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/toolgate/pkg/token"
)

// ActivationLink holds the two path segments of /activate/{uid}/{token}.
type ActivationLink struct {
	UID       string
	Token     string
	ExpiresAt time.Time
}

// Path returns the link path relative to the site root.
func (l ActivationLink) Path() string {
	return "/activate/" + l.UID + "/" + l.Token
}

type activationPayload struct {
	UID int64 `json:"uid"`
	Exp int64 `json:"exp"`
}

// EncodeUID encodes a user id for use in an activation link.
func EncodeUID(id int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// DecodeUID reverses EncodeUID. Padded input is accepted.
func DecodeUID(uid string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(uid, "="))
	if err != nil {
		return 0, ErrInvalidActivationLink
	}
	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidActivationLink
	}
	return id, nil
}

// activationSecret binds tokens to the current password hash, so changing
// the password invalidates every outstanding link.
func (s *Service) activationSecret(user *User) string {
	return s.cfg.ActivationSecret + ":" + string(user.PasswordHash)
}

func (s *Service) activationLink(user *User) (ActivationLink, error) {
	expiresAt := s.now().Add(s.cfg.ActivationTTL)
	tok, err := token.GenerateToken(activationPayload{UID: user.ID, Exp: expiresAt.Unix()}, s.activationSecret(user))
	if err != nil {
		return ActivationLink{}, err
	}
	return ActivationLink{UID: EncodeUID(user.ID), Token: tok, ExpiresAt: expiresAt}, nil
}

func (s *Service) checkActivationToken(user *User, tok string) error {
	payload, err := token.ParseToken[activationPayload](tok, s.activationSecret(user))
	if err != nil {
		return ErrExpiredActivationLink
	}
	if payload.UID != user.ID || s.now().Unix() > payload.Exp {
		return ErrExpiredActivationLink
	}
	return nil
}
