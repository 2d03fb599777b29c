package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CartLine is the JSONB element of carts.items.
type CartLine struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	ImageURL   string    `json:"image_url"`
	Quantity   int       `json:"quantity"`
}

// CartModel mirrors the 'carts' table. There is at most one row per user.
type CartModel struct {
	UserID         uuid.UUID                     `gorm:"type:uuid;primary_key"`
	RestaurantID   *uuid.UUID                    `gorm:"type:uuid"`
	RestaurantName *string                       `gorm:"type:varchar(200)"`
	Items          datatypes.JSONSlice[CartLine] `gorm:"type:jsonb;not null"`
	Total          float64                       `gorm:"type:numeric(12,2);not null"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}
