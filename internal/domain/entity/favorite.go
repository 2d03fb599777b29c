package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a restaurant as favorited by a user. The pair is unique.
type Favorite struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}
