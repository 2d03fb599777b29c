package handler

import (
	"net/http"

	"eats/internal/delivery/api/response"
	"eats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// apiVersion is reported by the API root.
const apiVersion = "1.0"

// SystemHandlerParams holds dependencies for SystemHandler, injected by Fx.
type SystemHandlerParams struct {
	fx.In

	SeedUC usecase.SeedUsecase
}

// SystemHandler serves the API root, health checks and demo seeding.
type SystemHandler struct {
	seedUC usecase.SeedUsecase
}

// NewSystemHandler creates a new SystemHandler instance.
func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{seedUC: params.SeedUC}
}

// Root describes the API.
func (h *SystemHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Dushanbe Eats API",
		"version": apiVersion,
	})
}

// HealthCheck reports liveness.
func (h *SystemHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Seed loads the demo catalog unless restaurants already exist.
func (h *SystemHandler) Seed(c echo.Context) error {
	out, err := h.seedUC.Seed(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !out.Seeded {
		return response.Message(c, http.StatusOK, "Данные уже загружены")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":     "Данные успешно загружены",
		"restaurants": out.Restaurants,
		"menu_items":  out.MenuItems,
	})
}
