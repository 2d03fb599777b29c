package impl

import (
	"context"
	"testing"

	"eats/internal/domain/entity"
	"eats/internal/domain/service"
	mockRepo "eats/internal/mocks/repository"
	mockSvc "eats/internal/mocks/service"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedServiceFixtures struct {
	service        usecase.SeedUsecase
	tx             txFixtures
	restaurantRepo *mockRepo.MockRestaurantRepository
	catalog        *mockSvc.MockCatalogSource
}

func createTestSeedService(t *testing.T) seedServiceFixtures {
	tx := newTxFixtures(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	catalog := mockSvc.NewMockCatalogSource(t)

	return seedServiceFixtures{
		service: NewSeedService(SeedServiceParams{
			TxManager:      tx.txManager,
			RestaurantRepo: restaurantRepo,
			Catalog:        catalog,
			Logger:         newDiscardLogger(),
		}),
		tx:             tx,
		restaurantRepo: restaurantRepo,
		catalog:        catalog,
	}
}

func TestSeedService_Seed_EmptyDatabase(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()
	first := &entity.Restaurant{ID: uuid.New(), Name: "Плов Хаус"}
	second := &entity.Restaurant{ID: uuid.New(), Name: "Суши Мастер"}

	fx.restaurantRepo.EXPECT().Count(ctx).Return(0, nil)
	fx.catalog.EXPECT().Load().Return([]service.SeedRestaurant{
		{Restaurant: first, Menu: []*entity.MenuItem{{RestaurantID: first.ID}, {RestaurantID: first.ID}}},
		{Restaurant: second, Menu: []*entity.MenuItem{{RestaurantID: second.ID}}},
	}, nil)
	fx.tx.expectCommit()
	fx.tx.restaurantRepo.EXPECT().CreateBatch(ctx, []*entity.Restaurant{first, second}).Return(nil)
	fx.tx.menuItemRepo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(items []*entity.MenuItem) bool { return len(items) == 3 })).
		Return(nil)

	out, err := fx.service.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, out.Seeded)
	assert.Equal(t, 2, out.Restaurants)
	assert.Equal(t, 3, out.MenuItems)
}

func TestSeedService_Seed_SkipsWhenCatalogExists(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	fx.restaurantRepo.EXPECT().Count(ctx).Return(6, nil)

	out, err := fx.service.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, out.Seeded)
	assert.Zero(t, out.Restaurants)
}

func TestSeedService_Seed_MenuFailureRollsBack(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()
	restaurant := &entity.Restaurant{ID: uuid.New()}

	fx.restaurantRepo.EXPECT().Count(ctx).Return(0, nil)
	fx.catalog.EXPECT().Load().Return([]service.SeedRestaurant{
		{Restaurant: restaurant, Menu: []*entity.MenuItem{{RestaurantID: restaurant.ID}}},
	}, nil)
	fx.tx.expectCommit()
	fx.tx.restaurantRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil)
	fx.tx.menuItemRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(errors.New("constraint violation"))

	_, err := fx.service.Seed(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed menu items")
}

func TestSeedService_Seed_CatalogLoadFailure(t *testing.T) {
	fx := createTestSeedService(t)
	ctx := context.Background()

	fx.restaurantRepo.EXPECT().Count(ctx).Return(0, nil)
	fx.catalog.EXPECT().Load().Return(nil, errors.New("bad yaml"))

	_, err := fx.service.Seed(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad yaml")
}
