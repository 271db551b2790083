package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toolgate/pkg/token"
)

type testPayload struct {
	UID int64 `json:"uid"`
	Exp int64 `json:"exp"`
}

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	tok, err := token.GenerateToken(testPayload{UID: 42, Exp: 1700000000}, "secret")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(tok, "."))
	assert.NotContains(t, tok, "=")

	got, err := token.ParseToken[testPayload](tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, testPayload{UID: 42, Exp: 1700000000}, got)
}

func TestParseToken_Errors(t *testing.T) {
	t.Parallel()

	tok, err := token.GenerateToken(testPayload{UID: 1}, "secret")
	require.NoError(t, err)
	payloadPart, sigPart, _ := strings.Cut(tok, ".")

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{name: "wrong secret", token: tok, secret: "other", wantErr: token.ErrSignatureInvalid},
		{name: "no separator", token: payloadPart, secret: "secret", wantErr: token.ErrInvalidToken},
		{name: "too many parts", token: tok + ".x", secret: "secret", wantErr: token.ErrInvalidToken},
		{name: "bad base64", token: "!!!." + sigPart, secret: "secret", wantErr: token.ErrInvalidToken},
		{name: "tampered payload", token: "eyJ1aWQiOjJ9." + sigPart, secret: "secret", wantErr: token.ErrSignatureInvalid},
		{name: "empty secret", token: tok, secret: "", wantErr: token.ErrEmptySecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := token.ParseToken[testPayload](tt.token, tt.secret)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := token.GenerateToken(testPayload{}, "")
	assert.ErrorIs(t, err, token.ErrEmptySecret)
}
