// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
type User struct {
	ID             uuid.UUID      // The unique identifier for the user, generated at creation.
	Name           string         // The user's display name. Defaulted for external accounts without a name claim.
	Email          string         // The user's email, unique across all users, used as the login identifier.
	PasswordHash   string         // Encoded argon2id hash. Empty for accounts created purely via an external identity.
	ExternalID     string         // Subject identifier from the external identity provider. Empty when never linked.
	IdentitySource IdentitySource // How the account authenticates: local password or external provider.
	CreatedAt      time.Time      // Timestamp of when this account was created. Immutable.
	UpdatedAt      time.Time      // Timestamp of the last modification to this account.
}

// HasPassword reports whether the account has a local password set.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
