// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"passport/config"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager  repository.TransactionManager
	hasher     service.PasswordHasher
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager:  txManager,
		hasher:     hasher,
		sessionTTL: cfg.Auth.SessionTTL,
		logger:     logger,
	}
}

// CreateAccount orchestrates the complete signup process: hash the password,
// then persist the account. The hash runs before and outside the transaction
// so the expensive derivation never holds a database connection.
func (srv *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*usecase.AccountOutput, error) {
	srv.logger.Info("Starting account creation", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", "error", err)

		// A hashing failure is a system fault, never a credential problem.
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during signup")
	}

	newAccount := &entity.Account{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		// The unique constraint on email is the source of truth for
		// duplicates; the repository surfaces it as ErrEmailTaken.
		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Failed to execute account creation transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute account creation transaction")
	}

	srv.logger.Debug("Account created successfully", "accountID", newAccount.ID)

	return usecase.ToAccountOutput(newAccount), nil
}

// Login orchestrates the login process: look up the account, verify the
// password, and issue a session. No session is created unless verification
// succeeded.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", "email", input.Email)

	var loggedInAccount *entity.Account
	var session *entity.Session

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		sessionRepo := repoFactory.NewSessionRepository()

		// 1. Find the account. An unknown email reads as invalid credentials,
		// not as not-found, so responses cannot enumerate registered emails.
		account, err := accountRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(err, "failed to find account by email")
		}

		// 2. Verify the password against the stored hash.
		if err := srv.hasher.Verify(ctx, input.Password, account.PasswordHash); err != nil {
			switch {
			case errors.Is(err, service.ErrPasswordMismatch):
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			case errors.Is(err, service.ErrMalformedHash):
				// A hash we wrote but cannot parse is a system fault. Keep the
				// detail in the log, never in the response.
				srv.logger.Error("Stored password hash is malformed", "accountID", account.ID)

				return errors.Wrap(domainerrors.ErrCredentialCorrupted, "login failed")
			default:
				return errors.Wrap(err, "failed to verify password")
			}
		}

		// 3. Issue the session.
		session = &entity.Session{
			AccountID: account.ID,
			ExpiresAt: time.Now().Add(srv.sessionTTL),
		}
		if err := sessionRepo.Create(ctx, session); err != nil {
			return errors.WithStack(err)
		}
		loggedInAccount = account

		return nil
	})
	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.logger.Debug("Login successful", "accountID", loggedInAccount.ID, "sessionID", session.ID)

	return &usecase.LoginOutput{
		Account:   usecase.ToAccountOutput(loggedInAccount),
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// FindByEmail returns the public representation of an account. Unlike during
// login, a miss here propagates as not-found: this accessor serves
// authenticated callers, not the credential flow.
func (srv *accountService) FindByEmail(ctx context.Context, email string) (*usecase.AccountOutput, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewAccountRepository().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account lookup failed")
			}

			return errors.Wrap(err, "failed to find account by email")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.ToAccountOutput(account), nil
}

// GetAccount returns the public representation of an account by ID.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*usecase.AccountOutput, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewAccountRepository().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account lookup failed")
			}

			return errors.Wrap(err, "failed to find account by id")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.ToAccountOutput(account), nil
}
