package service

import "context"

// ExternalIdentity represents the verified claims of an external identity assertion.
type ExternalIdentity struct {
	SubjectID string // The provider's stable subject identifier (Google's 'sub' claim).
	Email     string // The verified email address asserted by the provider.
	Name      string // The display name claim. May be empty.
}

// IdentityTokenVerifier defines the interface for verifying externally-issued
// identity tokens against the trusted provider's published signing keys.
type IdentityTokenVerifier interface {
	// VerifyIDToken validates the token's signature, audience, and expiry and
	// returns the verified identity claims on success.
	VerifyIDToken(ctx context.Context, idToken string) (*ExternalIdentity, error)
}
