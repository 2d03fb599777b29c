package postgres

import (
	"context"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (repo *favoriteRepository) Exists(ctx context.Context, userID, restaurantID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return count > 0, nil
}

// Create inserts the pair; a concurrent duplicate maps to ErrDuplicateFavorite.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	favoriteM := &model.FavoriteModel{
		ID:           favorite.ID,
		UserID:       favorite.UserID,
		RestaurantID: favorite.RestaurantID,
	}

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

func (repo *favoriteRepository) Delete(ctx context.Context, userID, restaurantID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete favorite")
	}

	return nil
}

func (repo *favoriteRepository) ListRestaurantIDs(ctx context.Context, userID uuid.UUID, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	query := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Pluck("restaurant_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return ids, nil
}
