package usecase

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages the single cart of a user.
type CartUsecase interface {
	// GetCart returns the stored cart or a new empty one.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem adds a menu item. Items of another restaurant replace the cart contents.
	AddItem(ctx context.Context, userID, menuItemID uuid.UUID, quantity int) (*entity.Cart, error)

	// UpdateItem sets the quantity of a line; zero or less removes it.
	UpdateItem(ctx context.Context, userID, menuItemID uuid.UUID, quantity int) (*entity.Cart, error)

	Clear(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
}
