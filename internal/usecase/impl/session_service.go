// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"log/slog"
	"time"

	"agenda/config"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sessionTokenBytes = 32

// sessionService implements the SessionUsecase interface on top of durable
// session storage. Only the SHA-256 hash of a token is ever persisted.
type sessionService struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	ttl         time.Duration
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	UserRepo    repository.UserRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	ttl := 24 * time.Hour
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.TTL > 0 {
		ttl = params.Config.Session.TTL
	}

	return &sessionService{
		sessionRepo: params.SessionRepo,
		userRepo:    params.UserRepo,
		ttl:         ttl,
		logger:      params.Logger,
	}
}

// Issue creates a new durable session for userID and returns the raw token.
func (srv *sessionService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	token := base64.RawURLEncoding.EncodeToString(raw)

	session := &entity.Session{
		UserID:    userID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Now().Add(srv.ttl),
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.logger.Error("Failed to store session", slog.Any("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to store session")
	}

	srv.logger.Debug("Session issued", slog.Any("userID", userID), slog.Time("expiresAt", session.ExpiresAt))

	return token, nil
}

// Resolve maps a token back to its user id. It re-reads durable state on every
// call so a logout from another tab is seen immediately.
func (srv *sessionService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	tokenHash := hashToken(token)

	session, err := srv.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionExpired) {
			// Expired rows are removed opportunistically; the cleanup ticker
			// handles the rest.
			if delErr := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); delErr != nil {
				srv.logger.Warn("Failed to delete expired session", slog.Any("error", delErr))
			}

			return uuid.Nil, domainerrors.ErrUnauthorized
		}
		if errors.Is(err, repository.ErrSessionNotFound) {
			return uuid.Nil, domainerrors.ErrUnauthorized
		}

		return uuid.Nil, errors.Wrap(err, "failed to load session")
	}

	// A session whose user is gone is stale: invalidate it instead of
	// propagating a dangling reference.
	if _, err := srv.userRepo.FindByID(ctx, session.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Info("Invalidating stale session", slog.Any("userID", session.UserID))
			if delErr := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); delErr != nil {
				srv.logger.Warn("Failed to delete stale session", slog.Any("error", delErr))
			}

			return uuid.Nil, domainerrors.ErrUnauthorized
		}

		return uuid.Nil, errors.Wrap(err, "failed to load session user")
	}

	return session.UserID, nil
}

// Destroy deletes the session behind the token. Destroying an already-gone
// session is not an error.
func (srv *sessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, hashToken(token)); err != nil {
		srv.logger.Error("Failed to destroy session", slog.Any("error", err))

		return errors.Wrap(err, "failed to destroy session")
	}

	return nil
}

// CleanupExpired purges expired session records.
func (srv *sessionService) CleanupExpired(ctx context.Context) (int64, error) {
	removed, err := srv.sessionRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to cleanup expired sessions")
	}

	if removed > 0 {
		srv.logger.Info("Expired sessions removed", slog.Int64("count", removed))
	}

	return removed, nil
}

// hashToken derives the storage key for a raw session token.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
