package usecase

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase manages favorited restaurants.
type FavoriteUsecase interface {
	// AddFavorite reports false when the restaurant was already a favorite.
	AddFavorite(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error)
	RemoveFavorite(ctx context.Context, userID, restaurantID uuid.UUID) error
	IsFavorite(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Restaurant, error)
}
