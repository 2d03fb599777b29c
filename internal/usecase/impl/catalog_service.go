package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"
	"eats/internal/errors"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Result caps for catalog listings.
const (
	restaurantListLimit = 100
	menuListLimit       = 200
)

type catalogService struct {
	txManager      repository.TransactionManager
	restaurantRepo repository.RestaurantRepository
	menuItemRepo   repository.MenuItemRepository
	qrCodes        service.QRCodeService
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RestaurantRepo repository.RestaurantRepository
	MenuItemRepo   repository.MenuItemRepository
	QRCodes        service.QRCodeService
	Logger         *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:      params.TxManager,
		restaurantRepo: params.RestaurantRepo,
		menuItemRepo:   params.MenuItemRepo,
		qrCodes:        params.QRCodes,
		logger:         params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListCities() []string {
	return slices.Clone(entity.Cities)
}

func (srv *catalogService) ListRestaurants(ctx context.Context, filter entity.RestaurantFilter) ([]*entity.Restaurant, error) {
	filter.Limit = restaurantListLimit

	restaurants, err := srv.restaurantRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return restaurants, nil
}

func (srv *catalogService) GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return restaurant, nil
}

// CreateRestaurant stores the restaurant and links it to its creator in one transaction.
func (srv *catalogService) CreateRestaurant(ctx context.Context, actor *entity.User, input *usecase.RestaurantInput) (*entity.Restaurant, error) {
	if !actor.IsAdmin && !actor.IsRestaurantOwner {
		return nil, domainerrors.ErrForbidden
	}

	now := time.Now()
	ownerID := actor.ID
	restaurant := &entity.Restaurant{
		ID:        uuid.New(),
		OwnerID:   &ownerID,
		CreatedAt: now,
	}
	applyRestaurantInput(restaurant, input, now)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RestaurantRepo().Create(ctx, restaurant); err != nil {
			return errors.Wrap(err, "failed to create restaurant")
		}

		if err := repoFactory.UserRepo().SetRestaurant(ctx, actor.ID, restaurant.ID); err != nil {
			return errors.Wrap(err, "failed to link restaurant to owner")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	restaurantID := restaurant.ID
	actor.RestaurantID = &restaurantID

	srv.log(ctx).Info("Restaurant created",
		slog.String("restaurant_id", restaurant.ID.String()),
		slog.String("owner_id", actor.ID.String()),
	)

	return restaurant, nil
}

// UpdateRestaurant replaces the descriptive fields; omitted optional fields reset to defaults.
func (srv *catalogService) UpdateRestaurant(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.RestaurantInput) (*entity.Restaurant, error) {
	restaurant, err := srv.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanManage(restaurant.OwnerID) {
		return nil, domainerrors.ErrForbidden
	}

	applyRestaurantInput(restaurant, input, time.Now())

	if err := srv.restaurantRepo.Update(ctx, restaurant); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to update restaurant")
	}

	return restaurant, nil
}

func (srv *catalogService) GetMenu(ctx context.Context, restaurantID uuid.UUID, category string) ([]*entity.MenuItem, error) {
	items, err := srv.menuItemRepo.ListByRestaurant(ctx, restaurantID, category, menuListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}

	return items, nil
}

func (srv *catalogService) ListMenuCategories(ctx context.Context, restaurantID uuid.UUID) ([]string, error) {
	categories, err := srv.menuItemRepo.Categories(ctx, restaurantID, menuListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu categories")
	}

	return categories, nil
}

func (srv *catalogService) CreateMenuItem(ctx context.Context, actor *entity.User, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	restaurant, err := srv.GetRestaurant(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}

	if !actor.CanManage(restaurant.OwnerID) {
		return nil, domainerrors.ErrForbidden
	}

	now := time.Now()
	item := &entity.MenuItem{
		ID:           uuid.New(),
		RestaurantID: restaurant.ID,
		CreatedAt:    now,
	}
	applyMenuItemInput(item, input, now)

	if err := srv.menuItemRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create menu item")
	}

	return item, nil
}

func (srv *catalogService) UpdateMenuItem(ctx context.Context, actor *entity.User, id uuid.UUID, input *usecase.MenuItemInput) (*entity.MenuItem, error) {
	item, err := srv.authorizeMenuItem(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	applyMenuItemInput(item, input, time.Now())

	if err := srv.menuItemRepo.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to update menu item")
	}

	return item, nil
}

func (srv *catalogService) DeleteMenuItem(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	if _, err := srv.authorizeMenuItem(ctx, actor, id); err != nil {
		return err
	}

	if err := srv.menuItemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return errors.Wrap(err, "failed to delete menu item")
	}

	return nil
}

// authorizeMenuItem loads an item and checks the actor manages its restaurant.
// An item whose restaurant is gone is only manageable by admins.
func (srv *catalogService) authorizeMenuItem(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := srv.menuItemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	var ownerID *uuid.UUID
	restaurant, err := srv.restaurantRepo.FindByID(ctx, item.RestaurantID)
	switch {
	case err == nil:
		ownerID = restaurant.OwnerID
	case errors.Is(err, repository.ErrRestaurantNotFound):
	default:
		return nil, errors.Wrap(err, "failed to find restaurant of menu item")
	}

	if !actor.CanManage(ownerID) {
		return nil, domainerrors.ErrForbidden
	}

	return item, nil
}

func (srv *catalogService) RestaurantQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.GetRestaurant(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateRestaurantQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate restaurant QR code")
	}

	return png, nil
}

func applyRestaurantInput(restaurant *entity.Restaurant, input *usecase.RestaurantInput, now time.Time) {
	restaurant.Name = input.Name
	restaurant.Description = input.Description
	restaurant.CuisineType = input.CuisineType
	restaurant.Address = input.Address
	restaurant.City = input.City
	restaurant.ImageURL = input.ImageURL
	restaurant.Rating = valueOr(input.Rating, entity.DefaultRating)
	restaurant.DeliveryTime = valueOr(input.DeliveryTime, entity.DefaultDeliveryTime)
	restaurant.MinOrder = valueOr(input.MinOrder, entity.DefaultMinOrder)
	restaurant.DeliveryFee = valueOr(input.DeliveryFee, entity.DefaultDeliveryFee)
	restaurant.IsActive = valueOr(input.IsActive, true)
	restaurant.UpdatedAt = now
}

func applyMenuItemInput(item *entity.MenuItem, input *usecase.MenuItemInput, now time.Time) {
	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	item.Category = input.Category
	item.ImageURL = input.ImageURL
	item.IsAvailable = valueOr(input.IsAvailable, true)
	item.IsVegetarian = input.IsVegetarian
	item.IsSpicy = input.IsSpicy
	item.UpdatedAt = now
}

func valueOr[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}

	return *value
}
