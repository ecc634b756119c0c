package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/apperr"
)

type contextKey string

const userIDKey contextKey = "user_id"

// ErrUserIDNotFound is returned when the request context carries no signed-in user.
var ErrUserIDNotFound = apperr.Unauthorized("authentication required")

// UserIDFromCtx returns the signed-in user's id. Every wardrobe entity is owned
// by this id; handlers pass it explicitly to the application services.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrUserIDNotFound
	}
	return id, nil
}

// WithUserID returns a copy of ctx carrying the user id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}
