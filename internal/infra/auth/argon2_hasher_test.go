package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"passport/config"
	"passport/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHasher uses minimal argon2 cost so the suite stays fast.
func newTestHasher() service.PasswordHasher {
	return NewArgon2Hasher(&config.Config{
		Auth: &config.AuthConfig{
			Argon2Time:    1,
			Argon2Memory:  8 * 1024,
			Argon2Threads: 1,
			HasherWorkers: 2,
		},
	})
}

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	hash, err := hasher.Hash(ctx, "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.NoError(t, hasher.Verify(ctx, "secret1", hash))
}

func TestArgon2Hasher_HashIsSalted(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "secret1")
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, "secret1")
	require.NoError(t, err)

	// Same password, fresh random salt, different encoding.
	assert.NotEqual(t, first, second)
	assert.NoError(t, hasher.Verify(ctx, "secret1", first))
	assert.NoError(t, hasher.Verify(ctx, "secret1", second))
}

func TestArgon2Hasher_VerifyMismatch(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	hash, err := hasher.Hash(ctx, "secret1")
	require.NoError(t, err)

	err = hasher.Verify(ctx, "wrong", hash)
	assert.True(t, errors.Is(err, service.ErrPasswordMismatch))

	err = hasher.Verify(ctx, "", hash)
	assert.True(t, errors.Is(err, service.ErrPasswordMismatch))
}

func TestArgon2Hasher_VerifyMalformedHash(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	malformed := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=8192,t=1,p=1$salt",                       // missing segment
		"$bcrypt$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA",                // wrong algorithm
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$aGFzaA",              // wrong version
		"$argon2id$v=19$m=8192,t=1,p=999$c2FsdA$aGFzaA",            // parallelism out of range
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA",                 // bad salt encoding
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$!!!",                 // bad key encoding
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA$x",                   // wrong segment count
	}

	for _, hash := range malformed {
		err := hasher.Verify(ctx, "secret1", hash)
		assert.True(t, errors.Is(err, service.ErrMalformedHash), "expected malformed hash error for %q, got %v", hash, err)
		assert.False(t, errors.Is(err, service.ErrPasswordMismatch), "malformed hash must not read as a credential failure: %q", hash)
	}
}

func TestArgon2Hasher_EmptyPassword(t *testing.T) {
	hasher := newTestHasher()

	_, err := hasher.Hash(context.Background(), "")
	assert.Error(t, err)
}

func TestArgon2Hasher_VerifyHonorsEmbeddedParams(t *testing.T) {
	ctx := context.Background()

	// Hash with one parameter set, verify with a hasher configured differently.
	// The parameters travel inside the encoded hash.
	hash, err := newTestHasher().Hash(ctx, "secret1")
	require.NoError(t, err)

	other := NewArgon2Hasher(&config.Config{
		Auth: &config.AuthConfig{
			Argon2Time:    2,
			Argon2Memory:  16 * 1024,
			Argon2Threads: 2,
			HasherWorkers: 1,
		},
	})
	assert.NoError(t, other.Verify(ctx, "secret1", hash))
}

func TestArgon2Hasher_CancelledContext(t *testing.T) {
	hasher := newTestHasher()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hasher.Hash(ctx, "secret1")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestArgon2Hasher_ConcurrentUse(t *testing.T) {
	hasher := newTestHasher()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const workers = 8
	done := make(chan error, workers)
	for range workers {
		go func() {
			hash, err := hasher.Hash(ctx, "secret1")
			if err != nil {
				done <- err

				return
			}
			done <- hasher.Verify(ctx, "secret1", hash)
		}()
	}

	for range workers {
		assert.NoError(t, <-done)
	}
}
