package impl

import (
	"context"
	"testing"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	mockRepo "eats/internal/mocks/repository"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service        usecase.CartUsecase
	cartRepo       *mockRepo.MockCartRepository
	menuItemRepo   *mockRepo.MockMenuItemRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	menuItemRepo := mockRepo.NewMockMenuItemRepository(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:       cartRepo,
		MenuItemRepo:   menuItemRepo,
		RestaurantRepo: restaurantRepo,
		Logger:         newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:        service,
		cartRepo:       cartRepo,
		menuItemRepo:   menuItemRepo,
		restaurantRepo: restaurantRepo,
	}
}

func TestCartService_GetCart_EmptyWhenMissing(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrCartNotFound)

	cart, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, cart.UserID)
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.RestaurantID)
	assert.Zero(t, cart.Total)
}

func TestCartService_AddItem_NewCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Плов Хаус"}
	item := &entity.MenuItem{ID: uuid.New(), RestaurantID: restaurant.ID, Name: "Плов", Price: 35}

	fx.menuItemRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrCartNotFound)
	fx.cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	cart, err := fx.service.AddItem(ctx, userID, item.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 70.0, cart.Total, 1e-9)
	require.NotNil(t, cart.RestaurantName)
	assert.Equal(t, "Плов Хаус", *cart.RestaurantName)
	assert.False(t, cart.UpdatedAt.IsZero())
}

func TestCartService_AddItem_SwitchesRestaurant(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	oldRestaurant := &entity.Restaurant{ID: uuid.New(), Name: "Плов Хаус"}
	newRestaurant := &entity.Restaurant{ID: uuid.New(), Name: "Суши Мастер"}
	oldItem := &entity.MenuItem{ID: uuid.New(), RestaurantID: oldRestaurant.ID, Name: "Плов", Price: 35}
	newItem := &entity.MenuItem{ID: uuid.New(), RestaurantID: newRestaurant.ID, Name: "Ролл", Price: 45}

	existing := entity.NewCart(userID)
	existing.AddItem(oldRestaurant, oldItem, 3)

	fx.menuItemRepo.EXPECT().FindByID(ctx, newItem.ID).Return(newItem, nil)
	fx.restaurantRepo.EXPECT().FindByID(ctx, newRestaurant.ID).Return(newRestaurant, nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(existing, nil)
	fx.cartRepo.EXPECT().Save(ctx, existing).Return(nil)

	cart, err := fx.service.AddItem(ctx, userID, newItem.ID, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, newItem.ID, cart.Items[0].MenuItemID)
	assert.Equal(t, newRestaurant.ID, *cart.RestaurantID)
	assert.InDelta(t, 45.0, cart.Total, 1e-9)
}

func TestCartService_AddItem_Errors(t *testing.T) {
	userID := uuid.New()
	itemID := uuid.New()

	tests := []struct {
		name     string
		quantity int
		setup    func(fx cartServiceFixtures)
		wantErr  *domainerrors.BaseError
	}{
		{
			name:     "zero quantity",
			quantity: 0,
			setup:    func(cartServiceFixtures) {},
			wantErr:  domainerrors.ErrValidationFailed,
		},
		{
			name:     "unknown item",
			quantity: 1,
			setup: func(fx cartServiceFixtures) {
				fx.menuItemRepo.EXPECT().FindByID(mock.Anything, itemID).Return(nil, repository.ErrMenuItemNotFound)
			},
			wantErr: domainerrors.ErrMenuItemNotFound,
		},
		{
			name:     "restaurant gone",
			quantity: 1,
			setup: func(fx cartServiceFixtures) {
				restaurantID := uuid.New()
				fx.menuItemRepo.EXPECT().FindByID(mock.Anything, itemID).Return(&entity.MenuItem{ID: itemID, RestaurantID: restaurantID}, nil)
				fx.restaurantRepo.EXPECT().FindByID(mock.Anything, restaurantID).Return(nil, repository.ErrRestaurantNotFound)
			},
			wantErr: domainerrors.ErrRestaurantNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)
			tt.setup(fx)

			_, err := fx.service.AddItem(context.Background(), userID, itemID, tt.quantity)
			assertAppError(t, err, tt.wantErr)
		})
	}
}

func TestCartService_UpdateItem_RemovingLastLineUnbinds(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Плов Хаус"}
	item := &entity.MenuItem{ID: uuid.New(), RestaurantID: restaurant.ID, Name: "Плов", Price: 35}

	existing := entity.NewCart(userID)
	existing.AddItem(restaurant, item, 1)

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(existing, nil)
	fx.cartRepo.EXPECT().Save(ctx, existing).Return(nil)

	cart, err := fx.service.UpdateItem(ctx, userID, item.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Nil(t, cart.RestaurantID)
	assert.Nil(t, cart.RestaurantName)
	assert.Zero(t, cart.Total)
}

func TestCartService_UpdateItem_NoCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(nil, repository.ErrCartNotFound)

	_, err := fx.service.UpdateItem(ctx, userID, uuid.New(), 2)
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestCartService_Clear(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(cart *entity.Cart) bool {
			return cart.UserID == userID && cart.IsEmpty() && cart.RestaurantID == nil
		})).
		Return(nil)

	cart, err := fx.service.Clear(ctx, userID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_Clear_SaveFailure(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().Save(ctx, mock.Anything).Return(errors.New("connection reset"))

	_, err := fx.service.Clear(ctx, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save cart")
}
