package handler

import (
	"log/slog"
	"net/http"

	"eats/internal/delivery/api/middleware"
	"eats/internal/delivery/api/response"
	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and order tracking.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the checkout form.
type CreateOrderRequest struct {
	DeliveryAddress string  `json:"delivery_address" validate:"required"`
	Phone           string  `json:"phone" validate:"required,max=32"`
	Comment         *string `json:"comment"`
	PaymentMethod   string  `json:"payment_method" validate:"omitempty,oneof=cash card"`
}

// UpdateStatusRequest carries the new status when it is not given as a query parameter.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrder turns the cart into an order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req CreateOrderRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), user, &usecase.CreateOrderInput{
		DeliveryAddress: req.DeliveryAddress,
		Phone:           req.Phone,
		Comment:         req.Comment,
		PaymentMethod:   entity.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListOrders returns the requester's orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one of the requester's orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	id, err := pathID(c, "id", domainerrors.ErrOrderNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateStatus moves an order to another status. The status is read from the
// query string first, then from the JSON body.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	id, err := pathID(c, "id", domainerrors.ErrOrderNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := c.QueryParam("status")
	if status == "" && c.Request().ContentLength != 0 {
		var req UpdateStatusRequest
		if err := c.Bind(&req); err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
		}
		status = req.Status
	}

	if err := h.orderUC.UpdateStatus(c.Request().Context(), user, id, status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Статус обновлен")
}
