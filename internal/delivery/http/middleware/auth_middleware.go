package middleware

import (
	"agenda/config"
	"agenda/internal/delivery/http/response"
	"agenda/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates protected routes behind a valid session cookie.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, cfg: cfg}
}

// Authenticate resolves the session cookie against durable state on every
// request. A missing, expired, or orphaned session is rejected uniformly.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}

		userID, err := m.sessions.Resolve(c.Request().Context(), cookie.Value)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
		}

		// Set user info on the context for handlers to use
		c.Set("userID", userID)
		c.Set("sessionToken", cookie.Value)

		return next(c)
	}
}
