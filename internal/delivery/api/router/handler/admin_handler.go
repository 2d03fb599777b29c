package handler

import (
	"log/slog"
	"net/http"

	"eats/internal/delivery/api/middleware"
	"eats/internal/delivery/api/response"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves order dashboards for admins and restaurant owners.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ListOrders returns the orders visible to the requester.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	orders, err := h.adminUC.ListOrders(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// Analytics returns aggregated order statistics.
func (h *AdminHandler) Analytics(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	stats, err := h.adminUC.Analytics(c.Request().Context(), user)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
