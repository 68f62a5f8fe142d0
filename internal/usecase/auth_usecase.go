// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"agenda/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new local account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ExternalAuthInput carries an externally-issued identity token.
type ExternalAuthInput struct {
	IDToken string `json:"token" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user and the opaque session token to be
// set as the client cookie.
type AuthOutput struct {
	User         *entity.User
	SessionToken string
}

// AuthUsecase defines the interface for identity and authentication operations.
// This is the contract that the delivery layer (API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new local account and issues a session for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies an email/password pair and issues a session. Failures are
	// uniform: the caller cannot tell whether the email or the password was wrong.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// ExchangeExternalToken verifies an external identity token, reconciles the
	// verified identity with a local account, and issues a session.
	ExchangeExternalToken(ctx context.Context, input *ExternalAuthInput) (*AuthOutput, error)

	// Logout destroys the session behind the given token. Idempotent.
	Logout(ctx context.Context, sessionToken string) error

	// CurrentUser loads the user behind an already-resolved session.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
