package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'account_sessions' table. AccountID references
// accounts.id; the active flag distinguishes revoked sessions from expired
// ones.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time `gorm:"not null"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"column:inserted_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "account_sessions"
}
