package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. Only the SHA-256 of a token is stored.
type SessionModel struct {
	TokenHash string    `gorm:"type:char(64);primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	IssuedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
