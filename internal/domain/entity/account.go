// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity of the system, representing one registered person.
// PasswordHash is the argon2id-encoded credential and must never leave the
// service layer; outward representations are built from the remaining fields.
type Account struct {
	ID           uuid.UUID // The unique identifier for this account.
	Email        string    // The login identifier. Unique across all accounts.
	Name         string    // The account's display name.
	PasswordHash string    // PHC-encoded argon2id hash. Internal use only.
	CreatedAt    time.Time // Timestamp of when the account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to the account.
}
