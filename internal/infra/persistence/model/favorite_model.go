package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table.
type FavoriteModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_restaurant"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_restaurant"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
