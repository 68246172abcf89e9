// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
	"errors"
)

// Sentinel errors for password verification. Callers must treat the two
// differently: a mismatch is a user-facing credential failure, a malformed
// hash is a system fault and must never surface as "wrong password".
var (
	// ErrPasswordMismatch is returned when the password does not match the hash.
	ErrPasswordMismatch = errors.New("password does not match")
	// ErrMalformedHash is returned when the stored hash cannot be parsed.
	ErrMalformedHash = errors.New("malformed password hash")
)

// PasswordHasher defines the interface for password hashing and verification.
// Both operations are deliberately expensive; implementations run the
// derivation off the request-serving goroutine and honor ctx cancellation
// while the caller awaits the result.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The returned
	// string encodes the algorithm parameters and salt alongside the digest.
	Hash(ctx context.Context, password string) (string, error)

	// Verify re-derives the hash using the parameters embedded in encodedHash
	// and compares in constant time. Returns nil on match,
	// ErrPasswordMismatch on mismatch, ErrMalformedHash when encodedHash
	// cannot be parsed.
	Verify(ctx context.Context, password, encodedHash string) error
}
