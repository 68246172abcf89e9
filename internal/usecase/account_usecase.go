// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to register a new account.
type CreateAccountInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AccountOutput is the outward-facing representation of an account. It
// deliberately has no field for the password hash, so the hash cannot leak
// through serialization.
type AccountOutput struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	InsertedAt time.Time `json:"inserted_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LoginOutput returns the account joined with the newly issued session.
type LoginOutput struct {
	Account   *AccountOutput `json:"account"`
	SessionID uuid.UUID      `json:"session_id"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// ToAccountOutput builds the public representation from an account entity.
func ToAccountOutput(account *entity.Account) *AccountOutput {
	if account == nil {
		return nil
	}

	return &AccountOutput{
		ID:         account.ID,
		Name:       account.Name,
		Email:      account.Email,
		InsertedAt: account.CreatedAt,
		UpdatedAt:  account.UpdatedAt,
	}
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// CreateAccount registers a new account with a hashed credential.
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*AccountOutput, error)

	// Login verifies credentials and on success issues a session. Unknown
	// email and wrong password both fail with invalid credentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// FindByEmail returns the public representation of an account.
	FindByEmail(ctx context.Context, email string) (*AccountOutput, error)

	// GetAccount returns the public representation of an account by ID.
	GetAccount(ctx context.Context, id uuid.UUID) (*AccountOutput, error)
}
