package repository

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCartNotFound is returned when the user has never stored a cart.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository persists the single cart of each user.
type CartRepository interface {
	// FindByUser returns the stored cart of a user.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Save inserts or replaces the cart of cart.UserID.
	Save(ctx context.Context, cart *entity.Cart) error
}
