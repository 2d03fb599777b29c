package impl

import (
	"context"
	"testing"

	"eats/internal/domain/entity"
	"eats/internal/domain/repository"
	mockRepo "eats/internal/mocks/repository"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service        usecase.FavoriteUsecase
	favoriteRepo   *mockRepo.MockFavoriteRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)

	return favoriteServiceFixtures{
		service: NewFavoriteService(FavoriteServiceParams{
			FavoriteRepo:   favoriteRepo,
			RestaurantRepo: restaurantRepo,
		}),
		favoriteRepo:   favoriteRepo,
		restaurantRepo: restaurantRepo,
	}
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	userID := uuid.New()
	restaurantID := uuid.New()

	tests := []struct {
		name      string
		setup     func(fx favoriteServiceFixtures)
		wantAdded bool
	}{
		{
			name: "new favorite",
			setup: func(fx favoriteServiceFixtures) {
				fx.favoriteRepo.EXPECT().Exists(mock.Anything, userID, restaurantID).Return(false, nil)
				fx.favoriteRepo.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(f *entity.Favorite) bool {
						return f.UserID == userID && f.RestaurantID == restaurantID
					})).
					Return(nil)
			},
			wantAdded: true,
		},
		{
			name: "already favorited",
			setup: func(fx favoriteServiceFixtures) {
				fx.favoriteRepo.EXPECT().Exists(mock.Anything, userID, restaurantID).Return(true, nil)
			},
		},
		{
			name: "lost insert race",
			setup: func(fx favoriteServiceFixtures) {
				fx.favoriteRepo.EXPECT().Exists(mock.Anything, userID, restaurantID).Return(false, nil)
				fx.favoriteRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateFavorite)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFavoriteService(t)
			tt.setup(fx)

			added, err := fx.service.AddFavorite(context.Background(), userID, restaurantID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, added)
		})
	}
}

func TestFavoriteService_RemoveAndCheck(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	fx.favoriteRepo.EXPECT().Delete(ctx, userID, restaurantID).Return(nil)
	fx.favoriteRepo.EXPECT().Exists(ctx, userID, restaurantID).Return(false, nil)

	require.NoError(t, fx.service.RemoveFavorite(ctx, userID, restaurantID))

	favorite, err := fx.service.IsFavorite(ctx, userID, restaurantID)
	require.NoError(t, err)
	assert.False(t, favorite)
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	fx.favoriteRepo.EXPECT().ListRestaurantIDs(ctx, userID, favoriteListLimit).Return(ids, nil)
	fx.restaurantRepo.EXPECT().FindByIDs(ctx, ids, favoriteListLimit).
		Return([]*entity.Restaurant{{ID: ids[0]}, {ID: ids[1]}}, nil)

	restaurants, err := fx.service.ListFavorites(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, restaurants, 2)
}

func TestFavoriteService_ListFavorites_EmptySkipsLookup(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.favoriteRepo.EXPECT().ListRestaurantIDs(ctx, userID, favoriteListLimit).Return(nil, nil)

	restaurants, err := fx.service.ListFavorites(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, restaurants)
	assert.Empty(t, restaurants)
}
