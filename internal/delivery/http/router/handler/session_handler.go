package handler

import (
	"log/slog"
	"net/http"

	"passport/internal/delivery/http/response"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListSessions returns the caller's active sessions.
func (h *SessionHandler) ListSessions(c echo.Context) error {
	accountID, ok := c.Get("accountID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Invalid account ID in session")
	}

	outputs, err := h.uc.ListActiveSessions(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "Sessions retrieved successfully")
}

// RevokeSession ends one of the caller's sessions.
func (h *SessionHandler) RevokeSession(c echo.Context) error {
	accountID, ok := c.Get("accountID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Invalid account ID in session")
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	if err := h.uc.RevokeSession(c.Request().Context(), accountID, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session revoked"}, "Session revoked successfully")
}

// RevokeAllSessions ends every session of the caller, including the current one.
func (h *SessionHandler) RevokeAllSessions(c echo.Context) error {
	accountID, ok := c.Get("accountID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Invalid account ID in session")
	}

	if err := h.uc.RevokeAllSessions(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "All sessions revoked"}, "Sessions revoked successfully")
}
