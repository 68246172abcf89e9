// Package usecase provides testify mocks for the application usecase interfaces.
package usecase

import (
	"context"

	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a mock implementation of usecase.AccountUsecase.
type MockAccountUsecase struct {
	mock.Mock
}

func (m *MockAccountUsecase) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*usecase.AccountOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AccountOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) FindByEmail(ctx context.Context, email string) (*usecase.AccountOutput, error) {
	args := m.Called(ctx, email)
	if output, ok := args.Get(0).(*usecase.AccountOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountUsecase) GetAccount(ctx context.Context, id uuid.UUID) (*usecase.AccountOutput, error) {
	args := m.Called(ctx, id)
	if output, ok := args.Get(0).(*usecase.AccountOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockSessionUsecase is a mock implementation of usecase.SessionUsecase.
type MockSessionUsecase struct {
	mock.Mock
}

func (m *MockSessionUsecase) AuthenticateSession(ctx context.Context, sessionID uuid.UUID) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, sessionID)
	if output, ok := args.Get(0).(*usecase.SessionOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSessionUsecase) ListActiveSessions(ctx context.Context, accountID uuid.UUID) ([]*usecase.SessionOutput, error) {
	args := m.Called(ctx, accountID)
	if outputs, ok := args.Get(0).([]*usecase.SessionOutput); ok {
		return outputs, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSessionUsecase) RevokeSession(ctx context.Context, accountID, sessionID uuid.UUID) error {
	args := m.Called(ctx, accountID, sessionID)

	return args.Error(0)
}

func (m *MockSessionUsecase) RevokeAllSessions(ctx context.Context, accountID uuid.UUID) error {
	args := m.Called(ctx, accountID)

	return args.Error(0)
}

func (m *MockSessionUsecase) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
