package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderLine is the JSONB element of orders.items.
type OrderLine struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID                      `gorm:"type:uuid;primary_key"`
	UserID           uuid.UUID                      `gorm:"type:uuid;not null;index"`
	RestaurantID     uuid.UUID                      `gorm:"type:uuid;not null;index"`
	RestaurantName   string                         `gorm:"type:varchar(200);not null"`
	Items            datatypes.JSONSlice[OrderLine] `gorm:"type:jsonb;not null"`
	Subtotal         float64                        `gorm:"type:numeric(12,2);not null"`
	DeliveryFee      float64                        `gorm:"type:numeric(12,2);not null"`
	Total            float64                        `gorm:"type:numeric(12,2);not null"`
	Status           string                         `gorm:"type:varchar(20);not null;index"`
	DeliveryAddress  string                         `gorm:"type:text;not null"`
	Phone            string                         `gorm:"type:varchar(32);not null"`
	Comment          *string                        `gorm:"type:text"`
	PaymentMethod    string                         `gorm:"type:varchar(10);not null"`
	PaymentStatus    string                         `gorm:"type:varchar(20);not null"`
	PaymentSessionID *string                        `gorm:"type:varchar(255)"`
	City             string                         `gorm:"type:varchar(100)"`
	CreatedAt        time.Time                      `gorm:"index"`
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
