// Package token provides compact HMAC-signed tokens carrying a JSON payload.
//
// Tokens are URL safe and suited for links sent by email. The payload is
// readable by anyone holding the token; only its integrity is protected.
// Expiry, if needed, is a field of the payload checked by the caller.
//
//	tok, err := token.GenerateToken(activationPayload{UID: 42, Exp: exp}, secret)
//	payload, err := token.ParseToken[activationPayload](tok, secret)
package token
