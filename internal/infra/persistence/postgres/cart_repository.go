package postgres

import (
	"context"
	"time"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

// Save upserts the cart row of cart.UserID.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()
	cartM := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"restaurant_id", "restaurant_name", "items", "total", "updated_at"}),
		}).
		Create(cartM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for _, line := range data.Items {
		items = append(items, entity.CartItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			ImageURL:   line.ImageURL,
			Quantity:   line.Quantity,
		})
	}

	return &entity.Cart{
		UserID:         data.UserID,
		RestaurantID:   data.RestaurantID,
		RestaurantName: data.RestaurantName,
		Items:          items,
		Total:          data.Total,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	lines := make([]model.CartLine, 0, len(data.Items))
	for _, item := range data.Items {
		lines = append(lines, model.CartLine{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			ImageURL:   item.ImageURL,
			Quantity:   item.Quantity,
		})
	}

	return &model.CartModel{
		UserID:         data.UserID,
		RestaurantID:   data.RestaurantID,
		RestaurantName: data.RestaurantName,
		Items:          datatypes.JSONSlice[model.CartLine](lines),
		Total:          data.Total,
		UpdatedAt:      data.UpdatedAt,
	}
}
