package impl

import (
	"context"
	"log/slog"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/entity"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"
	"eats/internal/errors"
	"eats/internal/usecase"

	"go.uber.org/fx"
)

type seedService struct {
	txManager      repository.TransactionManager
	restaurantRepo repository.RestaurantRepository
	catalog        service.CatalogSource
	logger         *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RestaurantRepo repository.RestaurantRepository
	Catalog        service.CatalogSource
	Logger         *slog.Logger
}

// NewSeedService creates a new seed service instance
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		txManager:      params.TxManager,
		restaurantRepo: params.RestaurantRepo,
		catalog:        params.Catalog,
		logger:         params.Logger,
	}
}

// Seed inserts the demo catalog unless any restaurant already exists.
func (srv *seedService) Seed(ctx context.Context) (*usecase.SeedOutput, error) {
	count, err := srv.restaurantRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count restaurants")
	}
	if count > 0 {
		return &usecase.SeedOutput{Seeded: false}, nil
	}

	catalog, err := srv.catalog.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load seed catalog")
	}

	restaurants := make([]*entity.Restaurant, 0, len(catalog))
	var items []*entity.MenuItem
	for _, entry := range catalog {
		restaurants = append(restaurants, entry.Restaurant)
		items = append(items, entry.Menu...)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.RestaurantRepo().CreateBatch(ctx, restaurants); err != nil {
			return errors.Wrap(err, "failed to insert seed restaurants")
		}

		if len(items) == 0 {
			return nil
		}

		if err := repoFactory.MenuItemRepo().CreateBatch(ctx, items); err != nil {
			return errors.Wrap(err, "failed to insert seed menu items")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Demo catalog seeded",
		slog.Int("restaurants", len(restaurants)),
		slog.Int("menu_items", len(items)),
	)

	return &usecase.SeedOutput{Seeded: true, Restaurants: len(restaurants), MenuItems: len(items)}, nil
}
