// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"eats/config"
	"eats/internal/delivery/api/middleware"
	"eats/internal/delivery/api/router/handler"
	"eats/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SystemHandler   *handler.SystemHandler
	AuthHandler     *handler.AuthHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	FavoriteHandler *handler.FavoriteHandler
	PaymentHandler  *handler.PaymentHandler
	AdminHandler    *handler.AdminHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	systemHandler   *handler.SystemHandler
	authHandler     *handler.AuthHandler
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	favoriteHandler *handler.FavoriteHandler
	paymentHandler  *handler.PaymentHandler
	adminHandler    *handler.AdminHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		systemHandler:   params.SystemHandler,
		authHandler:     params.AuthHandler,
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		favoriteHandler: params.FavoriteHandler,
		paymentHandler:  params.PaymentHandler,
		adminHandler:    params.AdminHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.systemHandler.HealthCheck)

	api := e.Group("/api")
	api.GET("/", r.systemHandler.Root)

	authenticated := r.authMiddleware.Authenticate
	managers := r.authMiddleware.RequireRole(entity.RoleOwner, entity.RoleAdmin)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout) // Idempotent, works without a token.
		authGroup.GET("/me", r.authHandler.Me, authenticated)
	}

	// Public catalog
	api.GET("/cities", r.catalogHandler.ListCities)
	api.GET("/restaurants", r.catalogHandler.ListRestaurants)
	api.GET("/restaurants/:id", r.catalogHandler.GetRestaurant)
	api.GET("/restaurants/:id/menu", r.catalogHandler.GetMenu)
	api.GET("/restaurants/:id/qr", r.catalogHandler.RestaurantQR)
	api.GET("/menu-categories/:restaurantId", r.catalogHandler.ListMenuCategories)

	// Catalog management by owners and admins
	api.POST("/restaurants", r.catalogHandler.CreateRestaurant, authenticated, managers)
	api.PUT("/restaurants/:id", r.catalogHandler.UpdateRestaurant, authenticated, managers)
	menuGroup := api.Group("/menu", authenticated, managers)
	{
		menuGroup.POST("", r.catalogHandler.CreateMenuItem)
		menuGroup.PUT("/:id", r.catalogHandler.UpdateMenuItem)
		menuGroup.DELETE("/:id", r.catalogHandler.DeleteMenuItem)
	}

	cartGroup := api.Group("/cart", authenticated)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/add", r.cartHandler.AddItem)
		cartGroup.POST("/update", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/clear", r.cartHandler.Clear)
	}

	ordersGroup := api.Group("/orders", authenticated)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateStatus, managers)
	}

	favoritesGroup := api.Group("/favorites", authenticated)
	{
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.GET("/check/:id", r.favoriteHandler.CheckFavorite)
		favoritesGroup.POST("/:id", r.favoriteHandler.AddFavorite)
		favoritesGroup.DELETE("/:id", r.favoriteHandler.RemoveFavorite)
	}

	paymentsGroup := api.Group("/payments", authenticated)
	{
		paymentsGroup.POST("/create-checkout", r.paymentHandler.CreateCheckout)
		paymentsGroup.GET("/status/:sessionId", r.paymentHandler.GetStatus)
	}

	// Provider callbacks are authenticated by signature.
	api.POST("/webhook/stripe", r.paymentHandler.Webhook)

	adminGroup := api.Group("/admin", authenticated, managers)
	{
		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.GET("/analytics", r.adminHandler.Analytics)
	}

	devicesGroup := api.Group("/devices", authenticated)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	if r.config.Seed != nil && r.config.Seed.Enabled {
		api.POST("/seed", r.systemHandler.Seed)
	}
}
