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

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves cities, restaurants and menus.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// RestaurantRequest represents the request body for creating or replacing a restaurant.
type RestaurantRequest struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Description  string   `json:"description" validate:"required"`
	CuisineType  string   `json:"cuisine_type" validate:"required,max=100"`
	Address      string   `json:"address" validate:"required"`
	City         string   `json:"city" validate:"required,max=100"`
	ImageURL     string   `json:"image_url" validate:"required"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	DeliveryTime *string  `json:"delivery_time"`
	MinOrder     *float64 `json:"min_order" validate:"omitempty,gte=0"`
	DeliveryFee  *float64 `json:"delivery_fee" validate:"omitempty,gte=0"`
	IsActive     *bool    `json:"is_active"`
}

// MenuItemRequest represents the request body for creating or replacing a menu item.
// RestaurantID is only read on create.
type MenuItemRequest struct {
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name" validate:"required,max=200"`
	Description  string  `json:"description" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	Category     string  `json:"category" validate:"required,max=100"`
	ImageURL     string  `json:"image_url" validate:"required"`
	IsAvailable  *bool   `json:"is_available"`
	IsVegetarian bool    `json:"is_vegetarian"`
	IsSpicy      bool    `json:"is_spicy"`
}

// ListCities returns the served cities.
func (h *CatalogHandler) ListCities(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalogUC.ListCities())
}

// ListRestaurants handles restaurant search.
func (h *CatalogHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.catalogUC.ListRestaurants(c.Request().Context(), entity.RestaurantFilter{
		City:    c.QueryParam("city"),
		Cuisine: c.QueryParam("cuisine"),
		Search:  c.QueryParam("search"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants)
}

// GetRestaurant returns one restaurant.
func (h *CatalogHandler) GetRestaurant(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrRestaurantNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	restaurant, err := h.catalogUC.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant)
}

// CreateRestaurant handles restaurant creation by owners and admins.
func (h *CatalogHandler) CreateRestaurant(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req RestaurantRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	restaurant, err := h.catalogUC.CreateRestaurant(c.Request().Context(), user, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, restaurant)
}

// UpdateRestaurant replaces the descriptive fields of a restaurant.
func (h *CatalogHandler) UpdateRestaurant(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	id, err := pathID(c, "id", domainerrors.ErrRestaurantNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RestaurantRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	restaurant, err := h.catalogUC.UpdateRestaurant(c.Request().Context(), user, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant)
}

// GetMenu returns the menu of a restaurant, optionally narrowed to a category.
func (h *CatalogHandler) GetMenu(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrRestaurantNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items, err := h.catalogUC.GetMenu(c.Request().Context(), id, c.QueryParam("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// ListMenuCategories returns the distinct menu categories of a restaurant.
func (h *CatalogHandler) ListMenuCategories(c echo.Context) error {
	id, err := pathID(c, "restaurantId", domainerrors.ErrRestaurantNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	categories, err := h.catalogUC.ListMenuCategories(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// RestaurantQR renders the restaurant's QR code as PNG.
func (h *CatalogHandler) RestaurantQR(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrRestaurantNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.catalogUC.RestaurantQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateMenuItem adds a dish to a restaurant.
func (h *CatalogHandler) CreateMenuItem(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	var req MenuItemRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	restaurantID, err := parseUUID(req.RestaurantID, domainerrors.ErrRestaurantNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := req.toInput()
	input.RestaurantID = restaurantID

	item, err := h.catalogUC.CreateMenuItem(c.Request().Context(), user, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// UpdateMenuItem replaces the fields of a dish.
func (h *CatalogHandler) UpdateMenuItem(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	id, err := pathID(c, "id", domainerrors.ErrMenuItemNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req MenuItemRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.catalogUC.UpdateMenuItem(c.Request().Context(), user, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// DeleteMenuItem removes a dish.
func (h *CatalogHandler) DeleteMenuItem(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	id, err := pathID(c, "id", domainerrors.ErrMenuItemNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteMenuItem(c.Request().Context(), user, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Блюдо удалено")
}

func (r *RestaurantRequest) toInput() *usecase.RestaurantInput {
	return &usecase.RestaurantInput{
		Name:         r.Name,
		Description:  r.Description,
		CuisineType:  r.CuisineType,
		Address:      r.Address,
		City:         r.City,
		ImageURL:     r.ImageURL,
		Rating:       r.Rating,
		DeliveryTime: r.DeliveryTime,
		MinOrder:     r.MinOrder,
		DeliveryFee:  r.DeliveryFee,
		IsActive:     r.IsActive,
	}
}

func (r *MenuItemRequest) toInput() *usecase.MenuItemInput {
	return &usecase.MenuItemInput{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Category:     r.Category,
		ImageURL:     r.ImageURL,
		IsAvailable:  r.IsAvailable,
		IsVegetarian: r.IsVegetarian,
		IsSpicy:      r.IsSpicy,
	}
}
