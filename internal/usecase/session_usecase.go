// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for session lifecycle operations.
// Sessions move between exactly two states: anonymous and authenticated.
// Issue transitions to authenticated; Destroy, expiry, and stale-user
// detection during Resolve transition back to anonymous.
type SessionUsecase interface {
	// Issue creates a new durable session for userID and returns the opaque
	// token to be set as the client cookie.
	Issue(ctx context.Context, userID uuid.UUID) (string, error)

	// Resolve maps a session token back to its user id. It re-reads durable
	// state on every call and fails when the session is missing, expired, or
	// references a user that no longer exists.
	Resolve(ctx context.Context, token string) (uuid.UUID, error)

	// Destroy deletes the session behind the token. Idempotent.
	Destroy(ctx context.Context, token string) error

	// CleanupExpired purges expired session records and reports how many were
	// removed.
	CleanupExpired(ctx context.Context) (int64, error)
}
