// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		txManager: txManager,
		logger:    logger,
	}
}

// AuthenticateSession resolves a presented session ID to a usable session.
func (srv *sessionService) AuthenticateSession(ctx context.Context, sessionID uuid.UUID) (*usecase.SessionOutput, error) {
	var output *usecase.SessionOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, err := repoFactory.NewSessionRepository().FindByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				// Unknown session IDs read exactly like revoked ones.
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "session authentication failed")
			}

			return errors.Wrap(err, "failed to find session")
		}

		if !session.IsUsable(time.Now()) {
			return errors.Wrap(domainerrors.ErrSessionExpired, "session authentication failed")
		}
		output = usecase.ToSessionOutput(session)

		return nil
	})
	if err != nil {
		srv.logger.Debug("Session authentication failed", "sessionID", sessionID, "error", err.Error())

		return nil, err
	}

	return output, nil
}

// ListActiveSessions retrieves all active sessions for an account.
func (srv *sessionService) ListActiveSessions(ctx context.Context, accountID uuid.UUID) ([]*usecase.SessionOutput, error) {
	srv.logger.Debug("Listing active sessions", "accountID", accountID)

	var outputs []*usecase.SessionOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessions, err := repoFactory.NewSessionRepository().FindActiveByAccountID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to find sessions")
		}

		outputs = make([]*usecase.SessionOutput, 0, len(sessions))
		for _, session := range sessions {
			outputs = append(outputs, usecase.ToSessionOutput(session))
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to list active sessions", "error", err, "accountID", accountID)

		return nil, errors.Wrap(err, "failed to list active sessions")
	}

	return outputs, nil
}

// RevokeSession ends a single session after verifying ownership.
func (srv *sessionService) RevokeSession(ctx context.Context, accountID, sessionID uuid.UUID) error {
	srv.logger.Info("Revoking session", "accountID", accountID, "sessionID", sessionID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		session, err := sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}

		if session.AccountID != accountID {
			return errors.Wrap(domainerrors.ErrForbidden, "session does not belong to account")
		}

		if err := sessionRepo.Deactivate(ctx, sessionID); err != nil {
			return errors.Wrap(err, "failed to deactivate session")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to revoke session", "error", err, "accountID", accountID, "sessionID", sessionID)

		return errors.Wrap(err, "failed to revoke session")
	}

	srv.logger.Info("Successfully revoked session", "accountID", accountID, "sessionID", sessionID)

	return nil
}

// RevokeAllSessions ends every session for the account.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, accountID uuid.UUID) error {
	srv.logger.Info("Revoking all sessions", "accountID", accountID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewSessionRepository().DeactivateByAccountID(ctx, accountID); err != nil {
			return errors.Wrap(err, "failed to deactivate sessions")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to revoke all sessions", "error", err, "accountID", accountID)

		return errors.Wrap(err, "failed to revoke all sessions")
	}

	return nil
}

// CleanupExpiredSessions removes all expired sessions from the database.
func (srv *sessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	var deleted int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.NewSessionRepository().DeleteExpired(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete expired sessions")
		}
		deleted = count

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to cleanup expired sessions", "error", err)

		return 0, errors.Wrap(err, "failed to cleanup expired sessions")
	}

	if deleted > 0 {
		srv.logger.Info("Pruned expired sessions", "deleted", deleted)
	}

	return deleted, nil
}
