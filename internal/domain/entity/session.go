// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one authenticated login for an account. A session is
// usable while Active is set and ExpiresAt lies in the future; multiple
// concurrent sessions per account are permitted.
type Session struct {
	ID        uuid.UUID // The unique identifier for this session.
	AccountID uuid.UUID // Links the session to the Account it belongs to.
	ExpiresAt time.Time // The exact time when this session becomes invalid.
	Active    bool      // Cleared when the session is revoked before expiry.
	CreatedAt time.Time // Timestamp of when the session was issued.
	UpdatedAt time.Time // Timestamp of the last modification to the session.
}

// IsUsable reports whether the session authenticates requests at the given time.
func (s *Session) IsUsable(now time.Time) bool {
	return s.Active && s.ExpiresAt.After(now)
}
