package usecase

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

// RestaurantInput carries the descriptive fields of a restaurant.
// Nil optional fields fall back to the restaurant defaults.
type RestaurantInput struct {
	Name         string
	Description  string
	CuisineType  string
	Address      string
	City         string
	ImageURL     string
	Rating       *float64
	DeliveryTime *string
	MinOrder     *float64
	DeliveryFee  *float64
	IsActive     *bool
}

// MenuItemInput carries the fields of a menu item.
type MenuItemInput struct {
	RestaurantID uuid.UUID // Ignored on update.
	Name         string
	Description  string
	Price        float64
	Category     string
	ImageURL     string
	IsAvailable  *bool
	IsVegetarian bool
	IsSpicy      bool
}

// CatalogUsecase defines restaurant and menu management.
type CatalogUsecase interface {
	ListCities() []string
	ListRestaurants(ctx context.Context, filter entity.RestaurantFilter) ([]*entity.Restaurant, error)
	GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	CreateRestaurant(ctx context.Context, actor *entity.User, input *RestaurantInput) (*entity.Restaurant, error)
	UpdateRestaurant(ctx context.Context, actor *entity.User, id uuid.UUID, input *RestaurantInput) (*entity.Restaurant, error)

	GetMenu(ctx context.Context, restaurantID uuid.UUID, category string) ([]*entity.MenuItem, error)
	ListMenuCategories(ctx context.Context, restaurantID uuid.UUID) ([]string, error)
	CreateMenuItem(ctx context.Context, actor *entity.User, input *MenuItemInput) (*entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, actor *entity.User, id uuid.UUID, input *MenuItemInput) (*entity.MenuItem, error)
	DeleteMenuItem(ctx context.Context, actor *entity.User, id uuid.UUID) error

	// RestaurantQR renders a PNG QR code linking to the restaurant.
	RestaurantQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
