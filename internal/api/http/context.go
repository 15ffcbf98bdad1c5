package http

import (
	"context"

	"velvetden-backend/internal/domain"
)

type contextKey string

const userContextKey contextKey = "authenticated_user"

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// userFrom returns the authenticated user placed on the context by the auth
// middleware, or nil on unauthenticated routes.
func userFrom(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}
