package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/errors"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo       repository.CartRepository
	menuItemRepo   repository.MenuItemRepository
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo       repository.CartRepository
	MenuItemRepo   repository.MenuItemRepository
	RestaurantRepo repository.RestaurantRepository
	Logger         *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:       params.CartRepo,
		menuItemRepo:   params.MenuItemRepo,
		restaurantRepo: params.RestaurantRepo,
		logger:         params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return entity.NewCart(userID), nil
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

func (srv *cartService) AddItem(ctx context.Context, userID, menuItemID uuid.UUID, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	item, err := srv.menuItemRepo.FindByID(ctx, menuItemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	restaurant, err := srv.restaurantRepo.FindByID(ctx, item.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	cart, err := srv.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if switched := cart.AddItem(restaurant, item, quantity); switched {
		srv.log(ctx).Info("Cart switched restaurant",
			slog.String("user_id", userID.String()),
			slog.String("restaurant_id", restaurant.ID.String()),
		)
	}

	return srv.save(ctx, cart)
}

func (srv *cartService) UpdateItem(ctx context.Context, userID, menuItemID uuid.UUID, quantity int) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart.SetQuantity(menuItemID, quantity)

	return srv.save(ctx, cart)
}

func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return srv.save(ctx, entity.NewCart(userID))
}

func (srv *cartService) save(ctx context.Context, cart *entity.Cart) (*entity.Cart, error) {
	cart.UpdatedAt = time.Now()

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cart, nil
}
