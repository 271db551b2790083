package auth

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/toolgate/pkg/logger"
)

type userContextKey struct{}

// SetUserToContext stores the authenticated user for downstream handlers.
func SetUserToContext(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUserFromContext returns the user set by RequireAuth, or nil.
func GetUserFromContext(ctx context.Context) *User {
	user, _ := ctx.Value(userContextKey{}).(*User)
	return user
}

// LoggerExtractor adds user_id to records logged behind RequireAuth.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if user := GetUserFromContext(ctx); user != nil {
			return logger.UserID(user.ID), true
		}
		return slog.Attr{}, false
	}
}
