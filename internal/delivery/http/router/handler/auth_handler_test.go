package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agenda/config"
	httpmiddleware "agenda/internal/delivery/http/middleware"
	"agenda/internal/delivery/http/validator"
	"agenda/internal/domain/entity"
	domainerrors "agenda/internal/domain/errors"
	mockUC "agenda/internal/mocks/usecase"
	"agenda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Session: &config.SessionConfig{
			TTL:        24 * time.Hour,
			CookieName: "agenda_session",
		},
	}
	cfg.Env.Env = "development"

	return cfg
}

func newAuthTestServer(t *testing.T) (*echo.Echo, *mockUC.MockAuthUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(authUC, newTestConfig(), logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	e.POST("/api/register", h.Register)
	e.POST("/api/login", h.Login)
	e.POST("/api/auth/external", h.ExternalAuth)
	e.POST("/api/logout", h.Logout)

	return e, authUC
}

func postJSON(e *echo.Echo, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	user := &entity.User{
		ID:             uuid.New(),
		Name:           "Alice",
		Email:          "alice@example.com",
		PasswordHash:   "$argon2id$encoded",
		IdentitySource: entity.IdentitySourceLocal,
	}

	authUC.On("Register", mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.AuthOutput{User: user, SessionToken: "raw-session-token"}, nil)

	rec := postJSON(e, "/api/register", `{"name":"Alice","email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	// The stored hash never leaves the server.
	assert.NotContains(t, rec.Body.String(), "argon2id")

	cookie := sessionCookie(rec, "agenda_session")
	require.NotNil(t, cookie)
	assert.Equal(t, "raw-session-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e, _ := newAuthTestServer(t)

	rec := postJSON(e, "/api/register", `{"name":"Alice"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	authUC.On("Register", mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrDuplicateEmail.WrapMessage("email already registered"))

	rec := postJSON(e, "/api/register", `{"name":"Alice","email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_EMAIL")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	user := &entity.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	authUC.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.AuthOutput{User: user, SessionToken: "raw-session-token"}, nil)

	rec := postJSON(e, "/api/login", `{"email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sessionCookie(rec, "agenda_session"))
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	authUC.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed"))

	rec := postJSON(e, "/api/login", `{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Nil(t, sessionCookie(rec, "agenda_session"))
}

func TestAuthHandler_ExternalAuth_Success(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	user := &entity.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", IdentitySource: entity.IdentitySourceExternal}

	authUC.On("ExchangeExternalToken", mock.Anything, mock.AnythingOfType("*usecase.ExternalAuthInput")).
		Return(&usecase.AuthOutput{User: user, SessionToken: "raw-session-token"}, nil)

	rec := postJSON(e, "/api/auth/external", `{"token":"google-id-token"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sessionCookie(rec, "agenda_session"))
}

func TestAuthHandler_ExternalAuth_InvalidToken(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	authUC.On("ExchangeExternalToken", mock.Anything, mock.AnythingOfType("*usecase.ExternalAuthInput")).
		Return(nil, domainerrors.ErrInvalidToken.WrapMessage("external token verification failed"))

	rec := postJSON(e, "/api/auth/external", `{"token":"tampered"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthHandler_Logout_WithSession(t *testing.T) {
	e, authUC := newAuthTestServer(t)

	authUC.On("Logout", mock.Anything, "raw-session-token").Return(nil)

	rec := postJSON(e, "/api/logout", `{}`, &http.Cookie{Name: "agenda_session", Value: "raw-session-token"})

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(rec, "agenda_session")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	e, _ := newAuthTestServer(t)

	rec := postJSON(e, "/api/logout", `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_CurrentUser_Success(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(authUC, newTestConfig(), logger)

	user := &entity.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	authUC.On("CurrentUser", mock.Anything, user.ID).Return(user, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", user.ID)

	require.NoError(t, h.CurrentUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
}
