// Package jwt issues and verifies the HS256 access and refresh tokens used
// by the API, built on github.com/golang-jwt/jwt/v5.
//
// Every token carries a "typ" claim. Parse checks it against the expected
// TokenType, so a refresh token is rejected where an access token is
// required and vice versa.
//
//	svc, err := jwt.New(cfg)
//	pair, err := svc.GeneratePair(strconv.FormatInt(user.ID, 10))
//	claims, err := svc.Parse(pair.Refresh, jwt.RefreshToken)
//
// Middleware extracts a bearer token, verifies it as an access token and
// stores the claims in the request context (GetClaims).
package jwt
