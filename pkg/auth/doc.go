// Package auth implements password accounts: registration with email
// activation, credential checks and JWT session issuance.
//
// # Registration and activation
//
// Register stores a new user as inactive and hands an ActivationLink to the
// configured ActivationNotifier. The link is /activate/{uid}/{token}, where
// uid is the base64url-encoded user id and token is an HMAC-signed payload
// (pkg/token) holding the user id and expiry. The signing key combines
// ACTIVATION_SECRET with the user's current password hash, so a password
// change invalidates every outstanding link.
//
// Activate decodes the uid, verifies the token and marks the user active.
// Using the same valid link twice succeeds both times.
//
// # Login
//
// Authenticate returns ErrInvalidCredentials for an unknown email, a wrong
// password and an inactive account alike. Login additionally issues an
// access/refresh pair through pkg/jwt; Refresh trades a refresh token for a
// new access token.
//
// # Storage
//
// The package defines the Storage interface only. The Postgres
// implementation lives in internal/store.
package auth
