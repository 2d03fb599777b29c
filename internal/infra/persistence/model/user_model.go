package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key"`
	Email             *string    `gorm:"type:varchar(255);uniqueIndex"`
	Phone             *string    `gorm:"type:varchar(32);uniqueIndex"`
	Name              string     `gorm:"type:varchar(100);not null"`
	City              string     `gorm:"type:varchar(100);not null"`
	PasswordHash      string     `gorm:"type:varchar(255);not null"`
	IsAdmin           bool       `gorm:"not null"`
	IsRestaurantOwner bool       `gorm:"not null"`
	RestaurantID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
