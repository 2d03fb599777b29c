package impl

import (
	"context"
	"testing"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	mockRepo "eats/internal/mocks/repository"
	mockSvc "eats/internal/mocks/service"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service        usecase.CatalogUsecase
	tx             txFixtures
	restaurantRepo *mockRepo.MockRestaurantRepository
	menuItemRepo   *mockRepo.MockMenuItemRepository
	qrCodes        *mockSvc.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	tx := newTxFixtures(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	menuItemRepo := mockRepo.NewMockMenuItemRepository(t)
	qrCodes := mockSvc.NewMockQRCodeService(t)

	service := NewCatalogService(CatalogServiceParams{
		TxManager:      tx.txManager,
		RestaurantRepo: restaurantRepo,
		MenuItemRepo:   menuItemRepo,
		QRCodes:        qrCodes,
		Logger:         newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:        service,
		tx:             tx,
		restaurantRepo: restaurantRepo,
		menuItemRepo:   menuItemRepo,
		qrCodes:        qrCodes,
	}
}

func ownedRestaurant(ownerID uuid.UUID) *entity.Restaurant {
	return &entity.Restaurant{ID: uuid.New(), Name: "Плов Хаус", OwnerID: &ownerID, IsActive: true}
}

func TestCatalogService_ListCities_ReturnsCopy(t *testing.T) {
	fx := createTestCatalogService(t)

	cities := fx.service.ListCities()
	require.Equal(t, entity.Cities, cities)

	cities[0] = "changed"
	assert.Equal(t, "Душанбе", entity.Cities[0])
}

func TestCatalogService_ListRestaurants_AppliesLimit(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	expected := entity.RestaurantFilter{City: "Худжанд", Search: "плов", Limit: restaurantListLimit}
	fx.restaurantRepo.EXPECT().ListActive(ctx, expected).Return([]*entity.Restaurant{{Name: "Плов Хаус"}}, nil)

	restaurants, err := fx.service.ListRestaurants(ctx, entity.RestaurantFilter{City: "Худжанд", Search: "плов"})
	require.NoError(t, err)
	assert.Len(t, restaurants, 1)
}

func TestCatalogService_GetRestaurant_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.restaurantRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRestaurantNotFound)

	_, err := fx.service.GetRestaurant(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestCatalogService_CreateRestaurant_LinksOwner(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), IsRestaurantOwner: true}

	fx.tx.expectCommit()
	fx.tx.restaurantRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Restaurant")).Return(nil)
	fx.tx.userRepo.EXPECT().SetRestaurant(ctx, owner.ID, mock.AnythingOfType("uuid.UUID")).Return(nil)

	restaurant, err := fx.service.CreateRestaurant(ctx, owner, &usecase.RestaurantInput{
		Name:        "Новый",
		CuisineType: "Таджикская",
		City:        "Душанбе",
	})
	require.NoError(t, err)

	require.NotNil(t, restaurant.OwnerID)
	assert.Equal(t, owner.ID, *restaurant.OwnerID)
	assert.Equal(t, entity.DefaultRating, restaurant.Rating)
	assert.Equal(t, entity.DefaultDeliveryTime, restaurant.DeliveryTime)
	assert.Equal(t, entity.DefaultMinOrder, restaurant.MinOrder)
	assert.Equal(t, entity.DefaultDeliveryFee, restaurant.DeliveryFee)
	assert.True(t, restaurant.IsActive)
	require.NotNil(t, owner.RestaurantID)
	assert.Equal(t, restaurant.ID, *owner.RestaurantID)
}

func TestCatalogService_CreateRestaurant_CustomerForbidden(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateRestaurant(context.Background(), &entity.User{ID: uuid.New()}, &usecase.RestaurantInput{Name: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_CreateRestaurant_RollsBackOnLinkFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), IsRestaurantOwner: true}

	fx.tx.expectCommit()
	fx.tx.restaurantRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tx.userRepo.EXPECT().SetRestaurant(ctx, owner.ID, mock.Anything).Return(repository.ErrUserNotFound)

	_, err := fx.service.CreateRestaurant(ctx, owner, &usecase.RestaurantInput{Name: "x"})
	require.Error(t, err)
	assert.Nil(t, owner.RestaurantID)
}

func TestCatalogService_UpdateRestaurant(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		actor   *entity.User
		wantErr error
	}{
		{name: "owner", actor: &entity.User{ID: ownerID, IsRestaurantOwner: true}},
		{name: "admin", actor: &entity.User{ID: uuid.New(), IsAdmin: true}},
		{name: "other owner", actor: &entity.User{ID: uuid.New(), IsRestaurantOwner: true}, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()
			restaurant := ownedRestaurant(ownerID)

			fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
			if tt.wantErr == nil {
				fx.restaurantRepo.EXPECT().Update(ctx, restaurant).Return(nil)
			}

			rating := 4.9
			updated, err := fx.service.UpdateRestaurant(ctx, tt.actor, restaurant.ID, &usecase.RestaurantInput{
				Name:   "Плов Хаус 2",
				Rating: &rating,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Плов Хаус 2", updated.Name)
			assert.InDelta(t, 4.9, updated.Rating, 1e-9)
		})
	}
}

func TestCatalogService_GetMenu(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	restaurantID := uuid.New()

	fx.menuItemRepo.EXPECT().
		ListByRestaurant(ctx, restaurantID, "Супы", menuListLimit).
		Return([]*entity.MenuItem{{Name: "Шурпо"}}, nil)

	items, err := fx.service.GetMenu(ctx, restaurantID, "Супы")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Шурпо", items[0].Name)
}

func TestCatalogService_ListMenuCategories(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	restaurantID := uuid.New()

	fx.menuItemRepo.EXPECT().Categories(ctx, restaurantID, menuListLimit).Return([]string{"Основные", "Супы"}, nil)

	categories, err := fx.service.ListMenuCategories(ctx, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Основные", "Супы"}, categories)
}

func TestCatalogService_CreateMenuItem_DefaultsAvailable(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), IsRestaurantOwner: true}
	restaurant := ownedRestaurant(owner.ID)

	fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	fx.menuItemRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.MenuItem")).Return(nil)

	item, err := fx.service.CreateMenuItem(ctx, owner, &usecase.MenuItemInput{
		RestaurantID: restaurant.ID,
		Name:         "Самбуса",
		Price:        8,
		Category:     "Закуски",
	})
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, item.RestaurantID)
	assert.True(t, item.IsAvailable)
}

func TestCatalogService_CreateMenuItem_Forbidden(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	restaurant := ownedRestaurant(uuid.New())

	fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)

	_, err := fx.service.CreateMenuItem(ctx, &entity.User{ID: uuid.New(), IsRestaurantOwner: true}, &usecase.MenuItemInput{
		RestaurantID: restaurant.ID,
		Name:         "Самбуса",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_UpdateMenuItem_KeepsRestaurant(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), IsRestaurantOwner: true}
	restaurant := ownedRestaurant(owner.ID)
	item := &entity.MenuItem{ID: uuid.New(), RestaurantID: restaurant.ID, Name: "Самбуса", IsAvailable: true}

	fx.menuItemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	fx.menuItemRepo.EXPECT().Update(ctx, item).Return(nil)

	available := false
	updated, err := fx.service.UpdateMenuItem(ctx, owner, item.ID, &usecase.MenuItemInput{
		RestaurantID: uuid.New(),
		Name:         "Самбуса с тыквой",
		Price:        9,
		IsAvailable:  &available,
	})
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, updated.RestaurantID)
	assert.Equal(t, "Самбуса с тыквой", updated.Name)
	assert.False(t, updated.IsAvailable)
}

func TestCatalogService_DeleteMenuItem_OrphanedItemAdminOnly(t *testing.T) {
	tests := []struct {
		name    string
		actor   *entity.User
		wantErr error
	}{
		{name: "owner", actor: &entity.User{ID: uuid.New(), IsRestaurantOwner: true}, wantErr: domainerrors.ErrForbidden},
		{name: "admin", actor: &entity.User{ID: uuid.New(), IsAdmin: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()
			item := &entity.MenuItem{ID: uuid.New(), RestaurantID: uuid.New()}

			fx.menuItemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
			fx.restaurantRepo.EXPECT().FindByID(ctx, item.RestaurantID).Return(nil, repository.ErrRestaurantNotFound)
			if tt.wantErr == nil {
				fx.menuItemRepo.EXPECT().Delete(ctx, item.ID).Return(nil)
			}

			err := fx.service.DeleteMenuItem(ctx, tt.actor, item.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCatalogService_DeleteMenuItem_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.menuItemRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMenuItemNotFound)

	err := fx.service.DeleteMenuItem(ctx, &entity.User{ID: uuid.New(), IsAdmin: true}, id)
	assert.ErrorIs(t, err, domainerrors.ErrMenuItemNotFound)
}

func TestCatalogService_RestaurantQR(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	restaurant := ownedRestaurant(uuid.New())

	fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	fx.qrCodes.EXPECT().GenerateRestaurantQR(restaurant.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.RestaurantQR(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestCatalogService_RestaurantQR_EncoderFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	restaurant := ownedRestaurant(uuid.New())

	fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	fx.qrCodes.EXPECT().GenerateRestaurantQR(restaurant.ID).Return(nil, errors.New("encoder failed"))

	_, err := fx.service.RestaurantQR(ctx, restaurant.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoder failed")
}
