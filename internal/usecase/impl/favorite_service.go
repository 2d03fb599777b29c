package impl

import (
	"context"
	"time"

	"eats/internal/domain/entity"
	"eats/internal/domain/repository"
	"eats/internal/errors"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const favoriteListLimit = 100

type favoriteService struct {
	favoriteRepo   repository.FavoriteRepository
	restaurantRepo repository.RestaurantRepository
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo   repository.FavoriteRepository
	RestaurantRepo repository.RestaurantRepository
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo:   params.FavoriteRepo,
		restaurantRepo: params.RestaurantRepo,
	}
}

// AddFavorite is idempotent; a concurrent duplicate insert counts as already present.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error) {
	exists, err := srv.favoriteRepo.Exists(ctx, userID, restaurantID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}
	if exists {
		return false, nil
	}

	favorite := &entity.Favorite{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: restaurantID,
		CreatedAt:    time.Now(),
	}
	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to add favorite")
	}

	return true, nil
}

func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, restaurantID uuid.UUID) error {
	if err := srv.favoriteRepo.Delete(ctx, userID, restaurantID); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

func (srv *favoriteService) IsFavorite(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error) {
	exists, err := srv.favoriteRepo.Exists(ctx, userID, restaurantID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return exists, nil
}

func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Restaurant, error) {
	ids, err := srv.favoriteRepo.ListRestaurantIDs(ctx, userID, favoriteListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}
	if len(ids) == 0 {
		return []*entity.Restaurant{}, nil
	}

	restaurants, err := srv.restaurantRepo.FindByIDs(ctx, ids, favoriteListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorite restaurants")
	}

	return restaurants, nil
}
