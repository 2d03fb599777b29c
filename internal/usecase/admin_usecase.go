package usecase

import (
	"context"

	"eats/internal/domain/entity"
)

// AdminUsecase exposes order data to admins and restaurant owners.
// Admins see every order, owners only those of their restaurant.
type AdminUsecase interface {
	ListOrders(ctx context.Context, actor *entity.User) ([]*entity.Order, error)
	Analytics(ctx context.Context, actor *entity.User) (*entity.OrderStats, error)
}
