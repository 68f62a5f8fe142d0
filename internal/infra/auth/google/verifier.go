// Package google verifies Google-issued ID tokens against Google's published signing keys.
package google

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"

	"agenda/config"
	"agenda/internal/domain/service"
)

// validateFunc matches idtoken.Validate; swapped in tests.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// verifier is a concrete implementation of the IdentityTokenVerifier interface.
// It delegates signature verification to the idtoken package, which fetches and
// caches Google's certificates.
type verifier struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewVerifier is the constructor for the Google ID token verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.IdentityTokenVerifier {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &verifier{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken validates the token's signature against Google's published
// keys along with the expected audience and expiry, and returns the verified
// identity claims.
func (v *verifier) VerifyIDToken(ctx context.Context, token string) (*service.ExternalIdentity, error) {
	if token == "" {
		return nil, errors.New("empty id token")
	}

	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to validate id token")
	}

	identity, err := identityFromPayload(payload)
	if err != nil {
		v.logger.Warn("Google ID token claims rejected", slog.Any("error", err))

		return nil, err
	}

	v.logger.Debug("Google ID token verified",
		slog.String("subjectID", identity.SubjectID),
		slog.String("email", identity.Email))

	return identity, nil
}

// identityFromPayload extracts the identity claims this service relies on.
// The email must be present and verified by the provider.
func identityFromPayload(payload *idtoken.Payload) (*service.ExternalIdentity, error) {
	if payload.Subject == "" {
		return nil, errors.New("id token has no subject claim")
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("id token has no email claim")
	}

	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return nil, errors.New("id token email is not verified")
	}

	name, _ := payload.Claims["name"].(string)

	return &service.ExternalIdentity{
		SubjectID: payload.Subject,
		Email:     email,
		Name:      name,
	}, nil
}
