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

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves the favorite restaurants of the authenticated user.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// ListFavorites returns the favorited restaurants.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	restaurants, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants)
}

// AddFavorite marks a restaurant as favorite.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	restaurantID, err := pathID(c, "id", domainerrors.ErrRestaurantNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	added, err := h.favoriteUC.AddFavorite(c.Request().Context(), userID, restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !added {
		return response.Message(c, http.StatusOK, "Уже в избранном")
	}

	return response.Message(c, http.StatusOK, "Добавлено в избранное")
}

// RemoveFavorite unmarks a restaurant. Removing a non-favorite succeeds.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	restaurantID, err := pathID(c, "id", domainerrors.ErrRestaurantNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), userID, restaurantID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Удалено из избранного")
}

// CheckFavorite reports whether a restaurant is a favorite.
func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	restaurantID, err := pathID(c, "id", domainerrors.ErrRestaurantNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	isFavorite, err := h.favoriteUC.IsFavorite(c.Request().Context(), userID, restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_favorite": isFavorite})
}
