package impl

import (
	"context"
	"testing"

	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	"agenda/internal/domain/repository"
	"agenda/internal/domain/service"
	mockRepo "agenda/internal/mocks/repository"
	mockSvc "agenda/internal/mocks/service"
	mockUC "agenda/internal/mocks/usecase"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	verifier  *mockSvc.MockIdentityTokenVerifier
	sessions  *mockUC.MockSessionUsecase
}

func newAuthService(t *testing.T) (*authService, authServiceMocks) {
	m := authServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		verifier:  mockSvc.NewMockIdentityTokenVerifier(t),
		sessions:  mockUC.NewMockSessionUsecase(t),
	}

	svc := NewAuthService(AuthServiceParams{
		TxManager: m.txManager,
		UserRepo:  m.userRepo,
		Hasher:    m.hasher,
		Verifier:  m.verifier,
		Sessions:  m.sessions,
		Logger:    newDiscardLogger(),
	})

	return svc.(*authService), m
}

// txFactory wires a user repository into the transaction manager mock so the
// transactional closure actually runs.
func txFactory(t *testing.T, userRepo *mockRepo.MockUserRepository) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(userRepo).Maybe()

	return factory
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"}

	m.hasher.On("Hash", input.Password).Return("$argon2id$encoded", nil)
	m.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	m.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = uuid.New()
		}).
		Return(nil)
	m.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txFactory(t, m.userRepo))
	m.sessions.On("Issue", ctx, mock.AnythingOfType("uuid.UUID")).Return("session-token", nil)

	output, err := svc.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.SessionToken)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "$argon2id$encoded", output.User.PasswordHash)
	assert.Equal(t, entity.IdentitySourceLocal, output.User.IdentitySource)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	existing := &entity.User{ID: uuid.New(), Email: "alice@example.com"}

	m.hasher.On("Hash", "secret123").Return("$argon2id$encoded", nil)
	m.userRepo.On("FindByEmail", ctx, existing.Email).Return(existing, nil)
	m.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txFactory(t, m.userRepo))

	_, err := svc.Register(ctx, &usecase.RegisterInput{Name: "Alice", Email: existing.Email, Password: "secret123"})

	require.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAuthService_Register_DuplicateRaceOnCreate(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	m.hasher.On("Hash", "secret123").Return("$argon2id$encoded", nil)
	m.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	m.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)
	m.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txFactory(t, m.userRepo))

	_, err := svc.Register(ctx, &usecase.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"})

	require.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "$argon2id$encoded",
	}

	m.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	m.hasher.On("Check", "secret123", user.PasswordHash).Return(true, nil)
	m.sessions.On("Issue", ctx, user.ID).Return("session-token", nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "session-token", output.SessionToken)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	m.userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "$argon2id$encoded"}

	m.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	m.hasher.On("Check", "wrong", user.PasswordHash).Return(false, nil)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_ExternalOnlyAccount(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	// No local password: the account was created via an external identity.
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", ExternalID: "google-sub"}

	m.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "anything"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_MalformedStoredHash(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "not-a-hash"}

	m.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	m.hasher.On("Check", "secret123", user.PasswordHash).Return(false, service.ErrMalformedHash)

	_, err := svc.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret123"})

	require.ErrorIs(t, err, domainerrors.ErrMalformedHash)
}

func TestAuthService_ExchangeExternalToken_InvalidToken(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	m.verifier.On("VerifyIDToken", ctx, "bad-token").Return(nil, errors.New("signature mismatch"))

	_, err := svc.ExchangeExternalToken(ctx, &usecase.ExternalAuthInput{IDToken: "bad-token"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_ExchangeExternalToken_AlreadyLinked(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	identity := &service.ExternalIdentity{SubjectID: "google-sub", Email: "alice@example.com", Name: "Alice"}
	linked := &entity.User{ID: uuid.New(), Email: identity.Email, ExternalID: identity.SubjectID}

	m.verifier.On("VerifyIDToken", ctx, "good-token").Return(identity, nil)
	m.userRepo.On("FindByExternalID", ctx, identity.SubjectID).Return(linked, nil)
	m.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txFactory(t, m.userRepo))
	m.sessions.On("Issue", ctx, linked.ID).Return("session-token", nil)

	output, err := svc.ExchangeExternalToken(ctx, &usecase.ExternalAuthInput{IDToken: "good-token"})

	require.NoError(t, err)
	assert.Equal(t, linked, output.User)
}

func TestAuthService_ExchangeExternalToken_LinksExistingEmail(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	identity := &service.ExternalIdentity{SubjectID: "google-sub", Email: "alice@example.com"}
	local := &entity.User{
		ID:           uuid.New(),
		Email:        identity.Email,
		PasswordHash: "$argon2id$encoded",
	}

	m.verifier.On("VerifyIDToken", ctx, "good-token").Return(identity, nil)
	m.userRepo.On("FindByExternalID", ctx, identity.SubjectID).Return(nil, repository.ErrUserNotFound)
	m.userRepo.On("FindByEmail", ctx, identity.Email).Return(local, nil)
	m.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	m.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txFactory(t, m.userRepo))
	m.sessions.On("Issue", ctx, local.ID).Return("session-token", nil)

	output, err := svc.ExchangeExternalToken(ctx, &usecase.ExternalAuthInput{IDToken: "good-token"})

	require.NoError(t, err)
	assert.Equal(t, identity.SubjectID, output.User.ExternalID)
	// Linking never touches the local password.
	assert.Equal(t, "$argon2id$encoded", output.User.PasswordHash)
}

func TestAuthService_ExchangeExternalToken_CreatesNewAccount(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	// No name claim: the account gets a placeholder display name.
	identity := &service.ExternalIdentity{SubjectID: "google-sub", Email: "new@example.com"}

	m.verifier.On("VerifyIDToken", ctx, "good-token").Return(identity, nil)
	m.userRepo.On("FindByExternalID", ctx, identity.SubjectID).Return(nil, repository.ErrUserNotFound)
	m.userRepo.On("FindByEmail", ctx, identity.Email).Return(nil, repository.ErrUserNotFound)
	m.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = uuid.New()
		}).
		Return(nil)
	m.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txFactory(t, m.userRepo))
	m.sessions.On("Issue", ctx, mock.AnythingOfType("uuid.UUID")).Return("session-token", nil)

	output, err := svc.ExchangeExternalToken(ctx, &usecase.ExternalAuthInput{IDToken: "good-token"})

	require.NoError(t, err)
	assert.Equal(t, externalNamePlaceholder, output.User.Name)
	assert.Equal(t, entity.IdentitySourceExternal, output.User.IdentitySource)
	assert.Empty(t, output.User.PasswordHash)
}

func TestAuthService_Logout_DelegatesToSessions(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()

	m.sessions.On("Destroy", ctx, "session-token").Return(nil)

	require.NoError(t, svc.Logout(ctx, "session-token"))
}

func TestAuthService_CurrentUser_StaleSessionUser(t *testing.T) {
	svc, m := newAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := svc.CurrentUser(ctx, userID)

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
