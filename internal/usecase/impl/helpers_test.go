package impl

import (
	"io"
	"log/slog"
	"time"

	"passport/config"
	mockRepo "passport/internal/mocks/repository"
	mockSvc "passport/internal/mocks/service"
	"passport/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(sessionTTL time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{SessionTTL: sessionTTL}

	return cfg
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestAccountService(sessionTTL time.Duration) accountServiceFixtures {
	accountRepo := new(mockRepo.MockAccountRepository)
	sessionRepo := new(mockRepo.MockSessionRepository)
	hasher := new(mockSvc.MockPasswordHasher)

	txManager := &mockRepo.PassthroughTransactionManager{
		Factory: &mockRepo.StaticRepositoryFactory{
			AccountRepo: accountRepo,
			SessionRepo: sessionRepo,
		},
	}

	service := NewAccountService(txManager, hasher, newTestConfig(sessionTTL), newDiscardLogger())

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
	}
}

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service     usecase.SessionUsecase
	sessionRepo *mockRepo.MockSessionRepository
}

func createTestSessionService() sessionServiceFixtures {
	sessionRepo := new(mockRepo.MockSessionRepository)

	txManager := &mockRepo.PassthroughTransactionManager{
		Factory: &mockRepo.StaticRepositoryFactory{
			SessionRepo: sessionRepo,
		},
	}

	return sessionServiceFixtures{
		service:     NewSessionService(txManager, newDiscardLogger()),
		sessionRepo: sessionRepo,
	}
}
