package handler

import (
	"log/slog"
	"net/http"

	"eats/internal/delivery/api/middleware"
	"eats/internal/delivery/api/response"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the cart of the authenticated user.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest represents the request body for adding a menu item.
// A missing quantity adds one.
type AddToCartRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   *int   `json:"quantity" validate:"omitempty,min=1"`
}

// UpdateCartRequest represents the request body for changing a line.
// Zero or negative quantities remove the line.
type UpdateCartRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity"`
}

// GetCart returns the cart, empty when none is stored.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem adds a menu item to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req AddToCartRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	menuItemID, err := uuid.Parse(req.MenuItemID)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrMenuItemNotFound)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), userID, menuItemID, quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateItem sets the quantity of a cart line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req UpdateCartRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	// Unknown ids leave the cart unchanged, so a malformed one maps to uuid.Nil.
	menuItemID, _ := uuid.Parse(req.MenuItemID)

	cart, err := h.cartUC.UpdateItem(c.Request().Context(), userID, menuItemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	cart, err := h.cartUC.Clear(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}
