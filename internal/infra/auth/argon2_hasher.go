// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"runtime"
	"strings"

	"passport/config"
	"passport/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

// Default argon2id parameters, following the OWASP recommendation.
const (
	defaultArgon2Time    = 1         // iterations
	defaultArgon2Memory  = 64 * 1024 // 64 MB
	defaultArgon2Threads = 4         // parallelism
	argon2SaltLen        = 16        // salt length in bytes
	argon2KeyLen         = 32        // output length in bytes
)

// argon2Hasher implements service.PasswordHasher using argon2id. Key
// derivation is deliberately memory- and CPU-expensive, so every derivation
// is handed off to a goroutine gated by a semaphore; the calling goroutine
// awaits the result and can give up on ctx cancellation without tying up a
// pool slot beyond the in-flight derivation.
type argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8

	sem chan struct{}
}

// NewArgon2Hasher is the constructor for argon2Hasher. Zero-valued cost
// parameters in the config fall back to the package defaults; a zero worker
// count sizes the pool to the number of CPUs.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	h := &argon2Hasher{
		time:    defaultArgon2Time,
		memory:  defaultArgon2Memory,
		threads: defaultArgon2Threads,
	}

	workers := 0
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.Argon2Time > 0 {
			h.time = cfg.Auth.Argon2Time
		}
		if cfg.Auth.Argon2Memory > 0 {
			h.memory = cfg.Auth.Argon2Memory
		}
		if cfg.Auth.Argon2Threads > 0 {
			h.threads = cfg.Auth.Argon2Threads
		}
		workers = cfg.Auth.HasherWorkers
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	h.sem = make(chan struct{}, workers)

	return h
}

// Hash generates a salted argon2id hash from a plaintext password, encoded in
// PHC string format: $argon2id$v=19$m=..,t=..,p=..$<salt>$<hash>.
func (h *argon2Hasher) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	return h.run(ctx, func() (string, error) {
		salt := make([]byte, argon2SaltLen)
		if _, err := rand.Read(salt); err != nil {
			return "", errors.Wrap(err, "failed to generate salt")
		}

		key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, argon2KeyLen)

		encoded := fmt.Sprintf(
			"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
			argon2.Version,
			h.memory,
			h.time,
			h.threads,
			base64.RawStdEncoding.EncodeToString(salt),
			base64.RawStdEncoding.EncodeToString(key),
		)

		return encoded, nil
	})
}

// Verify re-derives the key using the parameters embedded in encodedHash and
// compares in constant time.
func (h *argon2Hasher) Verify(ctx context.Context, password, encodedHash string) error {
	params, salt, expected, err := decodeHash(encodedHash)
	if err != nil {
		return err
	}

	_, err = h.run(ctx, func() (string, error) {
		computed := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, params.keyLen)
		if subtle.ConstantTimeCompare(computed, expected) != 1 {
			return "", service.ErrPasswordMismatch
		}

		return "", nil
	})

	return err
}

// run executes fn on the bounded pool and awaits its result. Slot acquisition
// and the wait for the result both respect ctx.
func (h *argon2Hasher) run(ctx context.Context, fn func() (string, error)) (string, error) {
	select {
	case h.sem <- struct{}{}:
	case <-ctx.Done():
		return "", errors.WithStack(ctx.Err())
	}

	type result struct {
		value string
		err   error
	}
	done := make(chan result, 1)

	go func() {
		defer func() { <-h.sem }()
		value, err := fn()
		done <- result{value: value, err: err}
	}()

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		// The derivation keeps running to completion in the background; the
		// abandoned result is dropped through the buffered channel.
		return "", errors.WithStack(ctx.Err())
	}
}

type argon2Params struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// decodeHash parses a PHC-encoded argon2id string. Any structural problem is
// reported as service.ErrMalformedHash so callers can distinguish a corrupt
// stored hash from a wrong password.
func decodeHash(encodedHash string) (argon2Params, []byte, []byte, error) {
	var params argon2Params

	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return params, nil, nil, errors.Wrap(service.ErrMalformedHash, "invalid hash format")
	}
	if parts[1] != "argon2id" {
		return params, nil, nil, errors.Wrapf(service.ErrMalformedHash, "unsupported algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, errors.Wrap(service.ErrMalformedHash, "invalid version segment")
	}
	if version != argon2.Version {
		return params, nil, nil, errors.Wrapf(service.ErrMalformedHash, "incompatible argon2 version %d", version)
	}

	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &threads); err != nil {
		return params, nil, nil, errors.Wrap(service.ErrMalformedHash, "invalid parameter segment")
	}
	if threads == 0 || threads > 255 {
		return params, nil, nil, errors.Wrapf(service.ErrMalformedHash, "parallelism %d out of range", threads)
	}
	params.threads = uint8(threads)

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, errors.Wrap(service.ErrMalformedHash, "invalid salt encoding")
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, errors.Wrap(service.ErrMalformedHash, "invalid key encoding")
	}
	if len(expected) == 0 || len(expected) > 1<<10 {
		return params, nil, nil, errors.Wrapf(service.ErrMalformedHash, "invalid key length %d", len(expected))
	}
	params.keyLen = uint32(len(expected))

	return params, salt, expected, nil
}
