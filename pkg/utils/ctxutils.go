package utils

import (
	"context"

	"github.com/google/uuid"

	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
)

// GetUserIDFromCtx extracts the authenticated profile id stored by the auth
// middleware.
func GetUserIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}
