package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const UserIDKey contextKey = "user_id"

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userID, ok := userIDVal.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}

func SetUserContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}
