package repository

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrMenuItemNotFound is returned when a menu item is not found.
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// RestaurantRepository defines restaurant persistence.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	CreateBatch(ctx context.Context, restaurants []*entity.Restaurant) error
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// FindByIDs returns the restaurants among ids that exist, at most limit rows.
	FindByIDs(ctx context.Context, ids []uuid.UUID, limit int) ([]*entity.Restaurant, error)

	// ListActive returns active restaurants matching the filter.
	ListActive(ctx context.Context, filter entity.RestaurantFilter) ([]*entity.Restaurant, error)

	Count(ctx context.Context) (int64, error)
}

// MenuItemRepository defines menu item persistence.
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	CreateBatch(ctx context.Context, items []*entity.MenuItem) error
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// ListByRestaurant returns a restaurant's items; an empty category does not filter.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, category string, limit int) ([]*entity.MenuItem, error)

	// Categories returns the distinct categories of a restaurant's items.
	Categories(ctx context.Context, restaurantID uuid.UUID, limit int) ([]string, error)
}
