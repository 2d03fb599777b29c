package repository

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUser returns the order only when it belongs to userID.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error)

	// ListByUser returns a user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error)

	// List returns orders within scope, newest first.
	List(ctx context.Context, scope entity.OrderScope) ([]*entity.Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
	SetPaymentSession(ctx context.Context, id uuid.UUID, sessionID string) error

	// MarkPaid sets payment_status=paid and status=confirmed unless the order is
	// already paid. It reports whether this call performed the transition.
	MarkPaid(ctx context.Context, id uuid.UUID) (bool, error)
}
