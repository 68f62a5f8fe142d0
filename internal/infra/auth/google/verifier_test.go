package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"agenda/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestVerifier(validate validateFunc) *verifier {
	return &verifier{
		clientID: "client-id",
		validate: validate,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func validPayload() *idtoken.Payload {
	return &idtoken.Payload{
		Subject: "google-sub-123",
		Claims: map[string]any{
			"email":          "alice@example.com",
			"email_verified": true,
			"name":           "Alice",
		},
	}
}

func TestVerifier_Success(t *testing.T) {
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-token", token)
		assert.Equal(t, "client-id", audience)

		return validPayload(), nil
	})

	identity, err := v.VerifyIDToken(context.Background(), "raw-token")

	require.NoError(t, err)
	assert.Equal(t, "google-sub-123", identity.SubjectID)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "Alice", identity.Name)
}

func TestVerifier_EmptyToken(t *testing.T) {
	v := newTestVerifier(nil)

	_, err := v.VerifyIDToken(context.Background(), "")

	require.Error(t, err)
}

func TestVerifier_ValidationFailure(t *testing.T) {
	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: signature mismatch")
	})

	_, err := v.VerifyIDToken(context.Background(), "tampered-token")

	require.Error(t, err)
}

func TestVerifier_MissingEmailClaim(t *testing.T) {
	payload := validPayload()
	delete(payload.Claims, "email")

	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return payload, nil
	})

	_, err := v.VerifyIDToken(context.Background(), "raw-token")

	require.Error(t, err)
}

func TestVerifier_UnverifiedEmailRejected(t *testing.T) {
	payload := validPayload()
	payload.Claims["email_verified"] = false

	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return payload, nil
	})

	_, err := v.VerifyIDToken(context.Background(), "raw-token")

	require.Error(t, err)
}

func TestVerifier_MissingNameClaimAllowed(t *testing.T) {
	payload := validPayload()
	delete(payload.Claims, "name")

	v := newTestVerifier(func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return payload, nil
	})

	identity, err := v.VerifyIDToken(context.Background(), "raw-token")

	require.NoError(t, err)
	assert.Empty(t, identity.Name)
}

func TestNewVerifier_ReadsClientID(t *testing.T) {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "configured-client"}}

	v := NewVerifier(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Equal(t, "configured-client", v.(*verifier).clientID)
}
