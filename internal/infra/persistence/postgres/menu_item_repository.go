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

// menuItemRepository implements the repository.MenuItemRepository interface.
type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository is the constructor for menuItemRepository.
func NewMenuItemRepository(db *gorm.DB) repository.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (repo *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRestaurantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *menuItemRepository) CreateBatch(ctx context.Context, items []*entity.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]*model.MenuItemModel, 0, len(items))
	for _, item := range items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		models = append(models, fromMenuItemDomain(item))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(&models, 100).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu items")
	}

	return nil
}

// Update replaces the descriptive fields of a menu item. The restaurant is kept.
func (repo *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"name":          item.Name,
			"description":   item.Description,
			"price":         item.Price,
			"category":      item.Category,
			"image_url":     item.ImageURL,
			"is_available":  item.IsAvailable,
			"is_vegetarian": item.IsVegetarian,
			"is_spicy":      item.IsSpicy,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update menu item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

func (repo *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MenuItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete menu item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMenuItemNotFound
	}

	return nil
}

func (repo *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item by ID")
	}

	return toMenuItemDomain(&itemM), nil
}

func (repo *menuItemRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, category string, limit int) ([]*entity.MenuItem, error) {
	query := repo.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var itemModels []*model.MenuItemModel
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items, nil
}

// Categories returns distinct categories in first-seen order among at most limit rows.
func (repo *menuItemRepository) Categories(ctx context.Context, restaurantID uuid.UUID, limit int) ([]string, error) {
	var raw []string

	query := repo.db.WithContext(ctx).
		Model(&model.MenuItemModel{}).
		Where("restaurant_id = ?", restaurantID)
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Pluck("category", &raw).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu categories")
	}

	return distinctNonEmpty(raw), nil
}

func distinctNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// --- Mapper Functions ---

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		Category:     data.Category,
		ImageURL:     data.ImageURL,
		IsAvailable:  data.IsAvailable,
		IsVegetarian: data.IsVegetarian,
		IsSpicy:      data.IsSpicy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Name:         data.Name,
		Description:  data.Description,
		Price:        data.Price,
		Category:     data.Category,
		ImageURL:     data.ImageURL,
		IsAvailable:  data.IsAvailable,
		IsVegetarian: data.IsVegetarian,
		IsSpicy:      data.IsSpicy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
