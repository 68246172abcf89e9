package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_CreateAccount_Success(t *testing.T) {
	fixtures := createTestAccountService(time.Hour)
	ctx := context.Background()

	input := &usecase.CreateAccountInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "secret1",
	}

	fixtures.hasher.On("Hash", ctx, "secret1").Return("$argon2id$encoded", nil)
	fixtures.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = uuid.New()
			account.CreatedAt = time.Now()
			account.UpdatedAt = account.CreatedAt
		}).
		Return(nil)

	output, err := fixtures.service.CreateAccount(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, output.ID)
	assert.Equal(t, "Ada", output.Name)
	assert.Equal(t, "ada@x.com", output.Email)
	fixtures.accountRepo.AssertExpectations(t)
	fixtures.hasher.AssertExpectations(t)
}

func TestAccountService_CreateAccount_OutputNeverCarriesHash(t *testing.T) {
	fixtures := createTestAccountService(time.Hour)
	ctx := context.Background()

	fixtures.hasher.On("Hash", ctx, "secret1").Return("$argon2id$encoded", nil)
	fixtures.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Account).ID = uuid.New()
		}).
		Return(nil)

	output, err := fixtures.service.CreateAccount(ctx, &usecase.CreateAccountInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	// The serialized representation is what leaves the service; neither the
	// plaintext nor the hash may appear in it.
	body, err := json.Marshal(output)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "secret1")
	assert.NotContains(t, string(body), "argon2id")
	assert.NotContains(t, string(body), "password")
}

func TestAccountService_CreateAccount_EmailTaken(t *testing.T) {
	fixtures := createTestAccountService(time.Hour)
	ctx := context.Background()

	fixtures.hasher.On("Hash", ctx, "secret1").Return("$argon2id$encoded", nil)
	fixtures.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrEmailTaken.WrapMessage("email already exists"))

	output, err := fixtures.service.CreateAccount(ctx, &usecase.CreateAccountInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "secret1",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAccountService_CreateAccount_HasherFailureIsNotCredentialError(t *testing.T) {
	fixtures := createTestAccountService(time.Hour)
	ctx := context.Background()

	fixtures.hasher.On("Hash", ctx, "secret1").Return("", errors.New("out of memory"))

	output, err := fixtures.service.CreateAccount(ctx, &usecase.CreateAccountInput{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "secret1",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	// No account row may be written when hashing failed.
	fixtures.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Login_Success(t *testing.T) {
	fixtures := createTestAccountService(2 * time.Hour)
	ctx := context.Background()

	accountID := uuid.New()
	storedAccount := &entity.Account{
		ID:           accountID,
		Email:        "ada@x.com",
		Name:         "Ada",
		PasswordHash: "$argon2id$encoded",
		CreatedAt:    time.Now().Add(-time.Hour),
		UpdatedAt:    time.Now().Add(-time.Hour),
	}

	fixtures.accountRepo.On("FindByEmail", ctx, "ada@x.com").Return(storedAccount, nil)
	fixtures.hasher.On("Verify", ctx, "secret1", "$argon2id$encoded").Return(nil)
	fixtures.sessionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(args mock.Arguments) {
			session := args.Get(1).(*entity.Session)
			session.ID = uuid.New()
			session.Active = true
		}).
		Return(nil)

	before := time.Now()
	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Email: "ada@x.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, accountID, output.Account.ID)
	assert.NotEqual(t, uuid.Nil, output.SessionID)
	// Expiry is creation time plus the configured TTL, not the creation time
	// itself.
	assert.True(t, output.ExpiresAt.After(before.Add(2*time.Hour-time.Minute)))
	fixtures.sessionRepo.AssertExpectations(t)
}

func TestAccountService_Login_RepeatedLoginsIssueDistinctSessions(t *testing.T) {
	fixtures := createTestAccountService(time.Hour)
	ctx := context.Background()

	storedAccount := &entity.Account{
		ID:           uuid.New(),
		Email:        "ada@x.com",
		PasswordHash: "$argon2id$encoded",
	}

	fixtures.accountRepo.On("FindByEmail", ctx, "ada@x.com").Return(storedAccount, nil)
	fixtures.hasher.On("Verify", ctx, "secret1", "$argon2id$encoded").Return(nil)
	fixtures.sessionRepo.On("Create", ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Session).ID = uuid.New()
		}).
		Return(nil)

	first, err := fixtures.service.Login(ctx, &usecase.LoginInput{Email: "ada@x.com", Password: "secret1"})
	require.NoError(t, err)
	second, err := fixtures.service.Login(ctx, &usecase.LoginInput{Email: "ada@x.com", Password: "secret1"})
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestAccountService(time.Hour)
	ctx := context.Background()

	storedAccount := &entity.Account{
		ID:           uuid.New(),
		Email:        "ada@x.com",
		PasswordHash: "$argon2id$encoded",
	}

	fixtures.accountRepo.On("FindByEmail", ctx, "ada@x.com").Return(storedAccount, nil)
	fixtures.hasher.On("Verify", ctx, "wrong", "$argon2id$encoded").Return(service.ErrPasswordMismatch)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Email: "ada@x.com", Password: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	// No session is issued for a failed verification.
	fixtures.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Login_UnknownEmailIsIndistinguishable(t *testing.T) {
	fixtures := createTestAccountService(time.Hour)
	ctx := context.Background()

	storedAccount := &entity.Account{
		ID:           uuid.New(),
		Email:        "ada@x.com",
		PasswordHash: "$argon2id$encoded",
	}

	fixtures.accountRepo.On("FindByEmail", ctx, "ada@x.com").Return(storedAccount, nil)
	fixtures.accountRepo.On("FindByEmail", ctx, "nobody@x.com").Return(nil, repository.ErrAccountNotFound)
	fixtures.hasher.On("Verify", ctx, "wrong", "$argon2id$encoded").Return(service.ErrPasswordMismatch)

	_, wrongPasswordErr := fixtures.service.Login(ctx, &usecase.LoginInput{Email: "ada@x.com", Password: "wrong"})
	_, unknownEmailErr := fixtures.service.Login(ctx, &usecase.LoginInput{Email: "nobody@x.com", Password: "anything"})

	// Both failures resolve to the same error kind so responses cannot be
	// used to probe which emails are registered.
	assert.True(t, errors.Is(wrongPasswordErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownEmailErr, domainerrors.ErrInvalidCredentials))
	assert.False(t, errors.Is(unknownEmailErr, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Login_MalformedHashIsSystemFault(t *testing.T) {
	fixtures := createTestAccountService(time.Hour)
	ctx := context.Background()

	storedAccount := &entity.Account{
		ID:           uuid.New(),
		Email:        "ada@x.com",
		PasswordHash: "garbage",
	}

	fixtures.accountRepo.On("FindByEmail", ctx, "ada@x.com").Return(storedAccount, nil)
	fixtures.hasher.On("Verify", ctx, "secret1", "garbage").Return(service.ErrMalformedHash)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Email: "ada@x.com", Password: "secret1"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialCorrupted))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fixtures.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_FindByEmail_NotFoundPropagates(t *testing.T) {
	fixtures := createTestAccountService(time.Hour)
	ctx := context.Background()

	fixtures.accountRepo.On("FindByEmail", ctx, "nobody@x.com").Return(nil, repository.ErrAccountNotFound)

	output, err := fixtures.service.FindByEmail(ctx, "nobody@x.com")

	assert.Nil(t, output)
	// Outside the login flow, a miss is a plain not-found.
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_GetAccount_Success(t *testing.T) {
	fixtures := createTestAccountService(time.Hour)
	ctx := context.Background()

	accountID := uuid.New()
	fixtures.accountRepo.On("FindByID", ctx, accountID).Return(&entity.Account{
		ID:           accountID,
		Email:        "ada@x.com",
		Name:         "Ada",
		PasswordHash: "$argon2id$encoded",
	}, nil)

	output, err := fixtures.service.GetAccount(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, accountID, output.ID)
	assert.Equal(t, "ada@x.com", output.Email)
}
