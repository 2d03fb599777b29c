package impl

import (
	"context"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/errors"
	"eats/internal/usecase"
)

// Row caps for admin queries.
const (
	adminOrderListLimit = 100
	analyticsOrderLimit = 1000
)

type adminService struct {
	orderRepo repository.OrderRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService(orderRepo repository.OrderRepository) usecase.AdminUsecase {
	return &adminService{orderRepo: orderRepo}
}

func (srv *adminService) ListOrders(ctx context.Context, actor *entity.User) ([]*entity.Order, error) {
	return srv.scopedOrders(ctx, actor, adminOrderListLimit)
}

// Analytics is recomputed from the most recent orders on every call.
func (srv *adminService) Analytics(ctx context.Context, actor *entity.User) (*entity.OrderStats, error) {
	orders, err := srv.scopedOrders(ctx, actor, analyticsOrderLimit)
	if err != nil {
		return nil, err
	}

	return entity.AggregateOrders(orders), nil
}

// scopedOrders returns every order for admins and the orders of the owned
// restaurant for owners. An owner without a restaurant has no orders.
func (srv *adminService) scopedOrders(ctx context.Context, actor *entity.User, limit int) ([]*entity.Order, error) {
	scope := entity.OrderScope{Limit: limit}

	switch {
	case actor.IsAdmin:
	case actor.IsRestaurantOwner:
		if actor.RestaurantID == nil {
			return []*entity.Order{}, nil
		}
		scope.RestaurantID = actor.RestaurantID
	default:
		return nil, domainerrors.ErrForbidden
	}

	orders, err := srv.orderRepo.List(ctx, scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
