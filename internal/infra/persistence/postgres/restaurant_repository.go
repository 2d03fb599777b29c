package postgres

import (
	"context"
	"strings"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	if restaurant.ID == uuid.Nil {
		restaurant.ID = uuid.New()
	}
	restaurantM := fromRestaurantDomain(restaurant)

	if err := repo.db.WithContext(ctx).Create(restaurantM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.CreatedAt = restaurantM.CreatedAt
	restaurant.UpdatedAt = restaurantM.UpdatedAt

	return nil
}

func (repo *restaurantRepository) CreateBatch(ctx context.Context, restaurants []*entity.Restaurant) error {
	if len(restaurants) == 0 {
		return nil
	}

	models := make([]*model.RestaurantModel, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if restaurant.ID == uuid.Nil {
			restaurant.ID = uuid.New()
		}
		models = append(models, fromRestaurantDomain(restaurant))
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurants")
	}

	return nil
}

// Update replaces the descriptive fields of a restaurant. Owner and creation time are kept.
func (repo *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", restaurant.ID).
		Updates(map[string]any{
			"name":          restaurant.Name,
			"description":   restaurant.Description,
			"cuisine_type":  restaurant.CuisineType,
			"address":       restaurant.Address,
			"city":          restaurant.City,
			"image_url":     restaurant.ImageURL,
			"rating":        restaurant.Rating,
			"delivery_time": restaurant.DeliveryTime,
			"min_order":     restaurant.MinOrder,
			"delivery_fee":  restaurant.DeliveryFee,
			"is_active":     restaurant.IsActive,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&restaurantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

func (repo *restaurantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID, limit int) ([]*entity.Restaurant, error) {
	if len(ids) == 0 {
		return []*entity.Restaurant{}, nil
	}

	var restaurantModels []*model.RestaurantModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Limit(limit).
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find restaurants by IDs")
	}

	return toRestaurantDomains(restaurantModels), nil
}

// ListActive returns active restaurants in storage order.
func (repo *restaurantRepository) ListActive(ctx context.Context, filter entity.RestaurantFilter) ([]*entity.Restaurant, error) {
	query := repo.db.WithContext(ctx).Where("is_active = ?", true)

	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Cuisine != "" {
		query = query.Where("cuisine_type = ?", filter.Cuisine)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var restaurantModels []*model.RestaurantModel
	if err := query.Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return toRestaurantDomains(restaurantModels), nil
}

func (repo *restaurantRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).Model(&model.RestaurantModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count restaurants")
	}

	return count, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toRestaurantDomains(models []*model.RestaurantModel) []*entity.Restaurant {
	restaurants := make([]*entity.Restaurant, 0, len(models))
	for _, restaurantM := range models {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants
}

func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		CuisineType:  data.CuisineType,
		Address:      data.Address,
		City:         data.City,
		ImageURL:     data.ImageURL,
		Rating:       data.Rating,
		DeliveryTime: data.DeliveryTime,
		MinOrder:     data.MinOrder,
		DeliveryFee:  data.DeliveryFee,
		IsActive:     data.IsActive,
		OwnerID:      data.OwnerID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:           data.ID,
		Name:         data.Name,
		Description:  data.Description,
		CuisineType:  data.CuisineType,
		Address:      data.Address,
		City:         data.City,
		ImageURL:     data.ImageURL,
		Rating:       data.Rating,
		DeliveryTime: data.DeliveryTime,
		MinOrder:     data.MinOrder,
		DeliveryFee:  data.DeliveryFee,
		IsActive:     data.IsActive,
		OwnerID:      data.OwnerID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
