// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionOutput is the outward-facing representation of a session.
type SessionOutput struct {
	ID         uuid.UUID `json:"id"`
	AccountID  uuid.UUID `json:"account_id"`
	ExpiresAt  time.Time `json:"expires_at"`
	Active     bool      `json:"active"`
	InsertedAt time.Time `json:"inserted_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToSessionOutput builds the public representation from a session entity.
func ToSessionOutput(session *entity.Session) *SessionOutput {
	if session == nil {
		return nil
	}

	return &SessionOutput{
		ID:         session.ID,
		AccountID:  session.AccountID,
		ExpiresAt:  session.ExpiresAt,
		Active:     session.Active,
		InsertedAt: session.CreatedAt,
		UpdatedAt:  session.UpdatedAt,
	}
}

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// AuthenticateSession resolves a presented session ID to a usable session.
	// A missing, revoked, or expired session fails with invalid credentials so
	// the response does not reveal which of the three it was.
	AuthenticateSession(ctx context.Context, sessionID uuid.UUID) (*SessionOutput, error)

	// ListActiveSessions returns all active, unexpired sessions for an account.
	ListActiveSessions(ctx context.Context, accountID uuid.UUID) ([]*SessionOutput, error)

	// RevokeSession ends a single session owned by the account.
	RevokeSession(ctx context.Context, accountID, sessionID uuid.UUID) error

	// RevokeAllSessions ends every session for the account.
	RevokeAllSessions(ctx context.Context, accountID uuid.UUID) error

	// CleanupExpiredSessions prunes sessions past their expiry.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
