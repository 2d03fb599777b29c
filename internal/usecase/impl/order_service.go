package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"
	"eats/internal/errors"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const orderListLimit = 100

type orderService struct {
	txManager      repository.TransactionManager
	cartRepo       repository.CartRepository
	restaurantRepo repository.RestaurantRepository
	orderRepo      repository.OrderRepository
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CartRepo       repository.CartRepository
	RestaurantRepo repository.RestaurantRepository
	OrderRepo      repository.OrderRepository
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:      params.TxManager,
		cartRepo:       params.CartRepo,
		restaurantRepo: params.RestaurantRepo,
		orderRepo:      params.OrderRepo,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder inserts the order and empties the cart in one transaction.
func (srv *orderService) CreateOrder(ctx context.Context, customer *entity.User, input *usecase.CreateOrderInput) (*entity.Order, error) {
	method := input.PaymentMethod
	if method == "" {
		method = entity.PaymentMethodCash
	}
	if method != entity.PaymentMethodCash && method != entity.PaymentMethodCard {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment_method must be cash or card")
	}

	cart, err := srv.cartRepo.FindByUser(ctx, customer.ID)
	if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}
	if cart == nil || cart.IsEmpty() || cart.RestaurantID == nil {
		return nil, domainerrors.ErrCartEmpty
	}

	restaurant, err := srv.restaurantRepo.FindByID(ctx, *cart.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	order := entity.NewOrderFromCart(cart, restaurant, customer, entity.OrderDetails{
		DeliveryAddress: input.DeliveryAddress,
		Phone:           input.Phone,
		Comment:         input.Comment,
		PaymentMethod:   method,
	})

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		cart.Reset()
		cart.UpdatedAt = time.Now()
		if err := repoFactory.CartRepo().Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to reset cart")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to place order", slog.String("user_id", customer.ID.String()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("restaurant_id", order.RestaurantID.String()),
		slog.Float64("total", order.Total),
	)
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), service.EventOrderCreated, order)

	return order, nil
}

func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID, orderListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateStatus allows any transition between valid statuses.
func (srv *orderService) UpdateStatus(ctx context.Context, actor *entity.User, orderID uuid.UUID, status string) error {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to find order")
	}

	if err := srv.authorizeRestaurant(ctx, actor, order.RestaurantID); err != nil {
		return err
	}

	newStatus := entity.OrderStatus(status)
	if !newStatus.IsValid() {
		return domainerrors.ErrInvalidOrderStatus
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", orderID.String()),
		slog.String("from", string(order.Status)),
		slog.String("to", status),
	)

	order.Status = newStatus
	publishOrderEvent(ctx, srv.publisher, srv.log(ctx), service.EventOrderStatusChanged, order)

	return nil
}

func (srv *orderService) authorizeRestaurant(ctx context.Context, actor *entity.User, restaurantID uuid.UUID) error {
	if actor.IsAdmin {
		return nil
	}

	restaurant, err := srv.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrForbidden
		}

		return errors.Wrap(err, "failed to find restaurant")
	}

	if !actor.CanManage(restaurant.OwnerID) {
		return domainerrors.ErrForbidden
	}

	return nil
}
