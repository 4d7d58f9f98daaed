package usecase

import (
	"context"

	"hospital-records-api/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

// userIDFromContext returns the caller's user id when the request was
// authenticated, nil otherwise. Several endpoints never enforce
// authentication, so audit entries may carry no actor.
func userIDFromContext(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
