package middleware

import (
	"strings"

	"passport/internal/delivery/http/response"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for session-based authentication.
type AuthMiddleware struct {
	sessionUsecase usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUsecase usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessionUsecase: sessionUsecase}
}

// Authenticate validates the bearer session ID and loads the owning account
// onto the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_SESSION", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return response.Unauthorized(c, "INVALID_SESSION", "Invalid token format, must be Bearer token")
		}

		sessionID, err := uuid.Parse(token)
		if err != nil {
			return response.Unauthorized(c, "INVALID_SESSION", "Invalid session ID format")
		}

		session, err := m.sessionUsecase.AuthenticateSession(c.Request().Context(), sessionID)
		if err != nil {
			return response.Unauthorized(c, "INVALID_SESSION", "Invalid or expired session")
		}

		// Set account info on the context for handlers to use
		c.Set("accountID", session.AccountID)
		c.Set("sessionID", session.ID)

		return next(c)
	}
}
