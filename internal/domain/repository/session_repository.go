// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session exists but is past its expiry.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository defines the interface for session persistence. A session
// row is issued on every successful login; multiple concurrent sessions per
// account are permitted.
type SessionRepository interface {
	// Create persists a new session. The generated ID and timestamps are
	// written back to the entity on success.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindActiveByAccountID retrieves all active, unexpired sessions for an
	// account, newest first.
	FindActiveByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error)

	// Deactivate clears the active flag on a session, ending it before expiry.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// DeactivateByAccountID ends every session belonging to an account.
	DeactivateByAccountID(ctx context.Context, accountID uuid.UUID) error

	// DeleteExpired removes sessions past their expiry and reports how many
	// rows were pruned. Called periodically by the sweeper.
	DeleteExpired(ctx context.Context) (int64, error)
}
