package impl

import (
	"context"
	"testing"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
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

type orderServiceFixtures struct {
	service        usecase.OrderUsecase
	tx             txFixtures
	cartRepo       *mockRepo.MockCartRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	orderRepo      *mockRepo.MockOrderRepository
	publisher      *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	tx := newTxFixtures(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:      tx.txManager,
		CartRepo:       cartRepo,
		RestaurantRepo: restaurantRepo,
		OrderRepo:      orderRepo,
		Publisher:      publisher,
		Logger:         newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:        service,
		tx:             tx,
		cartRepo:       cartRepo,
		restaurantRepo: restaurantRepo,
		orderRepo:      orderRepo,
		publisher:      publisher,
	}
}

func filledCart(userID uuid.UUID, restaurant *entity.Restaurant) *entity.Cart {
	cart := entity.NewCart(userID)
	cart.AddItem(restaurant, &entity.MenuItem{ID: uuid.New(), RestaurantID: restaurant.ID, Name: "Плов", Price: 35}, 2)
	cart.AddItem(restaurant, &entity.MenuItem{ID: uuid.New(), RestaurantID: restaurant.ID, Name: "Самбуса", Price: 8}, 1)

	return cart
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customer := &entity.User{ID: uuid.New(), City: "Худжанд"}
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Плов Хаус", DeliveryFee: 10}
	cart := filledCart(customer.ID, restaurant)

	fx.cartRepo.EXPECT().FindByUser(ctx, customer.ID).Return(cart, nil)
	fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	fx.tx.expectCommit()
	fx.tx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.tx.cartRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(saved *entity.Cart) bool { return saved.IsEmpty() && saved.RestaurantID == nil })).
		Return(nil)

	var published *service.OrderEvent
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(_ context.Context, event *service.OrderEvent) { published = event }).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, customer, &usecase.CreateOrderInput{
		DeliveryAddress: "ул. Рудаки 1",
		Phone:           "+992900000000",
	})
	require.NoError(t, err)

	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 78.0, order.Subtotal, 1e-9)
	assert.InDelta(t, 10.0, order.DeliveryFee, 1e-9)
	assert.InDelta(t, 88.0, order.Total, 1e-9)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, entity.PaymentMethodCash, order.PaymentMethod)
	assert.Equal(t, "Худжанд", order.City)

	require.NotNil(t, published)
	assert.Equal(t, service.EventOrderCreated, published.Type)
	assert.Equal(t, order.ID.String(), published.OrderID)
	assert.Equal(t, restaurant.ID.String(), published.RestaurantID)
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customer := &entity.User{ID: uuid.New()}
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Плов Хаус"}

	fx.cartRepo.EXPECT().FindByUser(ctx, customer.ID).Return(filledCart(customer.ID, restaurant), nil)
	fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	fx.tx.expectCommit()
	fx.tx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tx.cartRepo.EXPECT().Save(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.CreateOrder(ctx, customer, &usecase.CreateOrderInput{
		DeliveryAddress: "ул. Рудаки 1",
		Phone:           "+992900000000",
		PaymentMethod:   entity.PaymentMethodCard,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodCard, order.PaymentMethod)
}

func TestOrderService_CreateOrder_CartResetFailureRollsBack(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customer := &entity.User{ID: uuid.New()}
	restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Плов Хаус"}

	fx.cartRepo.EXPECT().FindByUser(ctx, customer.ID).Return(filledCart(customer.ID, restaurant), nil)
	fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	fx.tx.expectCommit()
	fx.tx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tx.cartRepo.EXPECT().Save(ctx, mock.Anything).Return(errors.New("deadlock"))

	_, err := fx.service.CreateOrder(ctx, customer, &usecase.CreateOrderInput{DeliveryAddress: "a", Phone: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reset cart")
}

func TestOrderService_CreateOrder_Rejections(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name    string
		method  entity.PaymentMethod
		setup   func(fx orderServiceFixtures)
		wantErr *domainerrors.BaseError
	}{
		{
			name:    "unknown payment method",
			method:  "crypto",
			setup:   func(orderServiceFixtures) {},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "no cart",
			setup: func(fx orderServiceFixtures) {
				fx.cartRepo.EXPECT().FindByUser(mock.Anything, customerID).Return(nil, repository.ErrCartNotFound)
			},
			wantErr: domainerrors.ErrCartEmpty,
		},
		{
			name: "empty cart",
			setup: func(fx orderServiceFixtures) {
				fx.cartRepo.EXPECT().FindByUser(mock.Anything, customerID).Return(entity.NewCart(customerID), nil)
			},
			wantErr: domainerrors.ErrCartEmpty,
		},
		{
			name: "restaurant removed",
			setup: func(fx orderServiceFixtures) {
				restaurant := &entity.Restaurant{ID: uuid.New(), Name: "Закрыт"}
				fx.cartRepo.EXPECT().FindByUser(mock.Anything, customerID).Return(filledCart(customerID, restaurant), nil)
				fx.restaurantRepo.EXPECT().FindByID(mock.Anything, restaurant.ID).Return(nil, repository.ErrRestaurantNotFound)
			},
			wantErr: domainerrors.ErrRestaurantNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			tt.setup(fx)

			_, err := fx.service.CreateOrder(context.Background(), &entity.User{ID: customerID}, &usecase.CreateOrderInput{
				DeliveryAddress: "ул. Рудаки 1",
				Phone:           "+992900000000",
				PaymentMethod:   tt.method,
			})
			assertAppError(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_GetOrder_OtherUsersOrderIsNotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, orderID, userID).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, userID, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().ListByUser(ctx, userID, orderListLimit).Return([]*entity.Order{{ID: uuid.New()}}, nil)

	orders, err := fx.service.ListOrders(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_UpdateStatus_OwnerPublishes(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), IsRestaurantOwner: true}
	restaurant := ownedRestaurant(owner.ID)
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), RestaurantID: restaurant.ID, Status: entity.OrderStatusDelivered}

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.restaurantRepo.EXPECT().FindByID(ctx, restaurant.ID).Return(restaurant, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusPending).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == service.EventOrderStatusChanged && event.Status == "pending"
		})).
		Return(nil)

	require.NoError(t, fx.service.UpdateStatus(ctx, owner, order.ID, "pending"))
}

func TestOrderService_UpdateStatus_Rejections(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		actor   *entity.User
		status  string
		setup   func(fx orderServiceFixtures, order *entity.Order, restaurant *entity.Restaurant)
		wantErr *domainerrors.BaseError
	}{
		{
			name:   "order missing",
			actor:  &entity.User{ID: ownerID, IsAdmin: true},
			status: "confirmed",
			setup: func(fx orderServiceFixtures, order *entity.Order, _ *entity.Restaurant) {
				fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(nil, repository.ErrOrderNotFound)
			},
			wantErr: domainerrors.ErrOrderNotFound,
		},
		{
			name:   "foreign owner",
			actor:  &entity.User{ID: uuid.New(), IsRestaurantOwner: true},
			status: "confirmed",
			setup: func(fx orderServiceFixtures, order *entity.Order, restaurant *entity.Restaurant) {
				fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
				fx.restaurantRepo.EXPECT().FindByID(mock.Anything, restaurant.ID).Return(restaurant, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:   "restaurant deleted",
			actor:  &entity.User{ID: ownerID, IsRestaurantOwner: true},
			status: "confirmed",
			setup: func(fx orderServiceFixtures, order *entity.Order, restaurant *entity.Restaurant) {
				fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
				fx.restaurantRepo.EXPECT().FindByID(mock.Anything, restaurant.ID).Return(nil, repository.ErrRestaurantNotFound)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:   "unknown status",
			actor:  &entity.User{ID: uuid.New(), IsAdmin: true},
			status: "teleported",
			setup: func(fx orderServiceFixtures, order *entity.Order, _ *entity.Restaurant) {
				fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
			},
			wantErr: domainerrors.ErrInvalidOrderStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			restaurant := ownedRestaurant(ownerID)
			order := &entity.Order{ID: uuid.New(), RestaurantID: restaurant.ID, Status: entity.OrderStatusPending}
			tt.setup(fx, order, restaurant)

			err := fx.service.UpdateStatus(context.Background(), tt.actor, order.ID, tt.status)
			assertAppError(t, err, tt.wantErr)
		})
	}
}
