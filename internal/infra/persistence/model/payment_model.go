package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentTransactionModel mirrors the 'payment_transactions' table.
type PaymentTransactionModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key"`
	SessionID     string            `gorm:"type:varchar(255);not null;uniqueIndex"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	OrderID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	Amount        float64           `gorm:"type:numeric(12,2);not null"`
	Currency      string            `gorm:"type:varchar(3);not null"`
	Status        string            `gorm:"type:varchar(30);not null"`
	PaymentStatus string            `gorm:"type:varchar(30);not null"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentTransactionModel) TableName() string {
	return "payment_transactions"
}
