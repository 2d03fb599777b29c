package repository

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDuplicateFavorite is returned when the (user, restaurant) pair already exists.
var ErrDuplicateFavorite = errors.New("favorite already exists")

// FavoriteRepository defines favorite persistence.
type FavoriteRepository interface {
	Exists(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error)
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the pair; a missing pair is not an error.
	Delete(ctx context.Context, userID, restaurantID uuid.UUID) error

	ListRestaurantIDs(ctx context.Context, userID uuid.UUID, limit int) ([]uuid.UUID, error)
}
