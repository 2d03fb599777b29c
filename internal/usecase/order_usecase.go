package usecase

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput carries the checkout form.
type CreateOrderInput struct {
	DeliveryAddress string
	Phone           string
	Comment         *string
	PaymentMethod   entity.PaymentMethod // Empty means cash.
}

// OrderUsecase defines order placement and fulfilment.
type OrderUsecase interface {
	// CreateOrder turns the customer's cart into an order and empties the cart.
	CreateOrder(ctx context.Context, customer *entity.User, input *CreateOrderInput) (*entity.Order, error)

	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus is allowed to admins and the owner of the order's restaurant.
	UpdateStatus(ctx context.Context, actor *entity.User, orderID uuid.UUID, status string) error
}
