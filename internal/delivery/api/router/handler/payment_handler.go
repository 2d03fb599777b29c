package handler

import (
	"io"
	"log/slog"
	"net/http"

	"eats/internal/delivery/api/middleware"
	"eats/internal/delivery/api/response"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/errors"
	"eats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// headerStripeSignature carries the webhook signature of both payment gateways.
const headerStripeSignature = "Stripe-Signature"

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves online checkout and provider webhooks.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CreateCheckoutRequest represents the request body for starting a card payment.
type CreateCheckoutRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	OriginURL string `json:"origin_url" validate:"required,url"`
}

// CreateCheckout opens a hosted checkout session for an order.
func (h *PaymentHandler) CreateCheckout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req CreateCheckoutRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	orderID, err := parseUUID(req.OrderID, domainerrors.ErrOrderNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.paymentUC.CreateCheckout(c.Request().Context(), userID, orderID, req.OriginURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// GetStatus polls a checkout session.
func (h *PaymentHandler) GetStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	out, err := h.paymentUC.GetStatus(c.Request().Context(), userID, c.Param("sessionId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Webhook receives provider notifications. Any failure answers non-2xx so the
// provider redelivers.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidWebhook.WithDetails("unreadable body"))
	}

	signature := c.Request().Header.Get(headerStripeSignature)
	if err := h.paymentUC.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		h.logger.Error("Payment webhook failed", slog.Any("error", err))

		return response.HandleAppError(c, errors.Wrap(err, "handle payment webhook"))
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
