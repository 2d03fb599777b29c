package service

import "eats/internal/domain/entity"

// SeedRestaurant is a restaurant of the built-in catalog with its menu.
type SeedRestaurant struct {
	Restaurant *entity.Restaurant
	Menu       []*entity.MenuItem
}

// CatalogSource provides the built-in demo catalog.
type CatalogSource interface {
	Load() ([]SeedRestaurant, error)
}
