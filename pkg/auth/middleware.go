package auth

import (
	"errors"
	"net/http"
	"slices"

	"github.com/dmitrymomot/toolgate/pkg/jwt"
)

// ErrorResponder writes the rejection for a request that failed an auth check.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, err error)

func defaultResponder(status int) ErrorResponder {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		http.Error(w, http.StatusText(status), status)
	}
}

// RequireAuth verifies the bearer access token and stores the active user
// it was issued for in the request context. Token and user failures are
// passed to onError wrapped with ErrInvalidSession; a nil onError writes a
// plain 401.
func RequireAuth(svc *Service, onError ErrorResponder) func(http.Handler) http.Handler {
	if onError == nil {
		onError = defaultResponder(http.StatusUnauthorized)
	}

	verify := jwt.MiddlewareWithConfig(jwt.MiddlewareConfig{
		Service: svc.tokens,
		OnError: func(w http.ResponseWriter, r *http.Request, err error) {
			onError(w, r, errors.Join(ErrInvalidSession, err))
		},
	})

	return func(next http.Handler) http.Handler {
		return verify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := jwt.GetClaims(r.Context())
			if !ok {
				onError(w, r, ErrInvalidSession)
				return
			}

			user, err := svc.UserFromClaims(r.Context(), claims)
			if err != nil {
				onError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(r.Context(), user)))
		}))
	}
}

// RequireRole rejects requests whose user role does not satisfy allow.
// It must run after RequireAuth. A nil onError writes a plain 403.
func RequireRole(allow func(role string) bool, onError ErrorResponder) func(http.Handler) http.Handler {
	if onError == nil {
		onError = defaultResponder(http.StatusForbidden)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUserFromContext(r.Context())
			if user == nil {
				onError(w, r, ErrInvalidSession)
				return
			}
			if !allow(user.Role) {
				onError(w, r, ErrForbiddenRole)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HasRole returns a predicate for RequireRole matching any of roles exactly.
func HasRole(roles ...string) func(string) bool {
	return func(role string) bool {
		return slices.Contains(roles, role)
	}
}
