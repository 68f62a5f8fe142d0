// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/service"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// externalNamePlaceholder is the display name for externally-authenticated
// accounts whose token carries no name claim.
const externalNamePlaceholder = "Agenda user"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	verifier  service.IdentityTokenVerifier
	sessions  usecase.SessionUsecase
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Verifier  service.IdentityTokenVerifier
	Sessions  usecase.SessionUsecase
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		verifier:  params.Verifier,
		sessions:  params.Sessions,
		logger:    params.Logger,
	}
}

// Register creates a new local account and issues a session for it.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting registration", slog.String("email", input.Email))

	// Hash outside the transaction (argon2 is CPU- and memory-bound).
	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:           strings.TrimSpace(input.Name),
		Email:          input.Email,
		PasswordHash:   hashed,
		IdentitySource: entity.IdentitySourceLocal,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing email")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			// The unique index catches a concurrent registration that slipped
			// past the lookup above.
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.sessions.Issue(ctx, newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session after registration")
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{User: newUser, SessionToken: token}, nil
}

// Login verifies an email/password pair and issues a session. Every failure
// mode collapses into the same invalid-credentials error so the response never
// reveals whether the email exists.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// External-only accounts have no local password and cannot log in this way.
	if !user.HasPassword() {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	ok, err := srv.hasher.Check(input.Password, user.PasswordHash)
	if err != nil {
		if errors.Is(err, service.ErrMalformedHash) {
			srv.logger.Error("Stored password hash is malformed", slog.Any("userID", user.ID))

			return nil, domainerrors.ErrMalformedHash.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to verify password")
	}
	if !ok {
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session after login")
	}

	srv.logger.Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, SessionToken: token}, nil
}

// ExchangeExternalToken verifies an external identity token, reconciles the
// verified identity with a local account, and issues a session.
func (srv *authService) ExchangeExternalToken(ctx context.Context, input *usecase.ExternalAuthInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Handling external identity exchange")

	identity, err := srv.verifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.logger.Warn("External token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidToken.WrapMessage("external token verification failed")
	}

	user, err := srv.linkOrCreateExternal(ctx, identity)
	if err != nil {
		return nil, err
	}

	token, err := srv.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session after external exchange")
	}

	return &usecase.AuthOutput{User: user, SessionToken: token}, nil
}

// linkOrCreateExternal reconciles a verified external identity with a local
// account inside one transaction. Calling it twice with the same
// (email, subjectID) yields the same user and never duplicates a row.
func (srv *authService) linkOrCreateExternal(ctx context.Context, identity *service.ExternalIdentity) (*entity.User, error) {
	var resolved *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Already linked: nothing to reconcile.
		existing, err := userRepo.FindByExternalID(ctx, identity.SubjectID)
		if err == nil {
			resolved = existing

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up external identity")
		}

		// Same email as a local account: attach the external identity without
		// touching its password.
		byEmail, err := userRepo.FindByEmail(ctx, identity.Email)
		if err == nil {
			byEmail.ExternalID = identity.SubjectID
			byEmail.IdentitySource = entity.IdentitySourceExternal

			if err := userRepo.Update(ctx, byEmail); err != nil {
				return errors.Wrap(err, "failed to link external identity")
			}

			srv.logger.Info("Linked external identity to existing account", slog.Any("userID", byEmail.ID))
			resolved = byEmail

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up email for external identity")
		}

		// Brand new account.
		name := strings.TrimSpace(identity.Name)
		if name == "" {
			name = externalNamePlaceholder
		}

		newUser := &entity.User{
			Name:           name,
			Email:          identity.Email,
			ExternalID:     identity.SubjectID,
			IdentitySource: entity.IdentitySourceExternal,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user for external identity")
		}

		srv.logger.Info("Created account from external identity", slog.Any("userID", newUser.ID))
		resolved = newUser

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to execute external identity transaction", slog.Any("error", err))

		return nil, err
	}

	return resolved, nil
}

// Logout destroys the session behind the given token. Idempotent.
func (srv *authService) Logout(ctx context.Context, sessionToken string) error {
	srv.logger.Debug("Logging out")

	return srv.sessions.Destroy(ctx, sessionToken)
}

// CurrentUser loads the user behind an already-resolved session.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("session user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}
