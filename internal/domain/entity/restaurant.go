package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant defaults applied when a field is omitted on creation.
const (
	DefaultRating       = 4.5
	DefaultDeliveryTime = "30-45 мин"
	DefaultMinOrder     = 50.0
	DefaultDeliveryFee  = 15.0
)

// Cities lists the cities the service delivers to.
var Cities = []string{"Душанбе", "Худжанд", "Курган-Тюбе", "Куляб"}

// Restaurant is a catalog entry that owns a menu.
type Restaurant struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	CuisineType  string     `json:"cuisine_type"`
	Address      string     `json:"address"`
	City         string     `json:"city"`
	ImageURL     string     `json:"image_url"`
	Rating       float64    `json:"rating"`
	DeliveryTime string     `json:"delivery_time"` // Human readable estimate, e.g. "30-45 мин".
	MinOrder     float64    `json:"min_order"`
	DeliveryFee  float64    `json:"delivery_fee"` // Charged per order, read fresh at checkout.
	IsActive     bool       `json:"is_active"`    // Inactive restaurants are hidden from listings.
	OwnerID      *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MenuItem is a dish offered by exactly one restaurant.
type MenuItem struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	ImageURL     string    `json:"image_url"`
	IsAvailable  bool      `json:"is_available"`
	IsVegetarian bool      `json:"is_vegetarian"`
	IsSpicy      bool      `json:"is_spicy"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RestaurantFilter narrows restaurant listings. Empty fields do not filter.
type RestaurantFilter struct {
	City    string
	Cuisine string
	Search  string // Case-insensitive substring of name or description.
	Limit   int
}
