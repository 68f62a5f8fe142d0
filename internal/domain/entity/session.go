// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a durable, server-issued credential binding a client
// to a resolved user identity for a bounded time window.
type Session struct {
	ID        uuid.UUID // The unique ID for this specific session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw cookie token. The raw token never touches the database.
	ExpiresAt time.Time // The exact time when this session expires and becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was issued.
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
