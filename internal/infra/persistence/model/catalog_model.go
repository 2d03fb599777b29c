package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel mirrors the 'restaurants' table.
type RestaurantModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name         string     `gorm:"type:varchar(200);not null"`
	Description  string     `gorm:"type:text"`
	CuisineType  string     `gorm:"type:varchar(100);index"`
	Address      string     `gorm:"type:varchar(255)"`
	City         string     `gorm:"type:varchar(100);index"`
	ImageURL     string     `gorm:"type:text"`
	Rating       float64    `gorm:"type:numeric(3,2);not null"`
	DeliveryTime string     `gorm:"type:varchar(50)"`
	MinOrder     float64    `gorm:"type:numeric(12,2);not null"`
	DeliveryFee  float64    `gorm:"type:numeric(12,2);not null"`
	IsActive     bool       `gorm:"not null;index"`
	OwnerID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// MenuItemModel mirrors the 'menu_items' table.
type MenuItemModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"type:numeric(12,2);not null"`
	Category     string    `gorm:"type:varchar(100);index"`
	ImageURL     string    `gorm:"type:text"`
	IsAvailable  bool      `gorm:"not null"`
	IsVegetarian bool      `gorm:"not null"`
	IsSpicy      bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}
