package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/entity"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"
	"eats/internal/errors"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const notificationBatchSize = service.PushBatchLimit

var statusMessages = map[entity.OrderStatus]string{
	entity.OrderStatusPending:    "Заказ ожидает подтверждения",
	entity.OrderStatusConfirmed:  "Заказ подтвержден",
	entity.OrderStatusPreparing:  "Заказ готовится",
	entity.OrderStatusDelivering: "Курьер в пути",
	entity.OrderStatusDelivered:  "Заказ доставлен",
	entity.OrderStatusCancelled:  "Заказ отменен",
}

type pushMessage struct {
	title string
	body  string
}

type orderNotificationService struct {
	restaurantRepo repository.RestaurantRepository
	deviceRepo     repository.DeviceRepository
	notifier       service.NotificationService
	logger         *slog.Logger
}

// OrderNotificationServiceParams holds dependencies for OrderNotificationService, injected by Fx.
type OrderNotificationServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	DeviceRepo     repository.DeviceRepository
	Notifier       service.NotificationService
	Logger         *slog.Logger
}

// NewOrderNotificationService creates a new order notification service instance
func NewOrderNotificationService(params OrderNotificationServiceParams) usecase.OrderNotificationUsecase {
	return &orderNotificationService{
		restaurantRepo: params.RestaurantRepo,
		deviceRepo:     params.DeviceRepo,
		notifier:       params.Notifier,
		logger:         params.Logger,
	}
}

func (srv *orderNotificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifyOrderEvent pushes the event to the customer and, for new orders, to the
// restaurant owner. Storage failures are retryable; bad payloads are not.
func (srv *orderNotificationService) NotifyOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.NotificationResult, error) {
	customerID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, errors.Wrap(usecase.ErrMalformedEvent, "invalid user_id")
	}

	customerMsg, ok := customerMessage(event)
	if !ok {
		return nil, errors.Wrapf(usecase.ErrMalformedEvent, "unsupported event type %q", event.Type)
	}

	audiences := map[uuid.UUID]pushMessage{customerID: customerMsg}

	if event.Type == service.EventOrderCreated {
		ownerID, err := srv.restaurantOwner(ctx, event.RestaurantID)
		if err != nil {
			return nil, err
		}
		if ownerID != nil && *ownerID != customerID {
			audiences[*ownerID] = ownerMessage(event)
		}
	}

	userIDs := make([]uuid.UUID, 0, len(audiences))
	for userID := range audiences {
		userIDs = append(userIDs, userID)
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUsers(ctx, userIDs)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to load devices"))
	}

	result := &usecase.NotificationResult{Recipients: len(userIDs)}
	if len(devices) == 0 {
		srv.log(ctx).Info("No devices to notify", slog.String("order_id", event.OrderID))

		return result, nil
	}

	tokensByUser := make(map[uuid.UUID][]string, len(audiences))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokensByUser[device.UserID] = append(tokensByUser[device.UserID], device.FCMToken)
		deviceByToken[device.FCMToken] = device
	}

	data := map[string]string{
		"event_type":     event.Type,
		"order_id":       event.OrderID,
		"status":         event.Status,
		"payment_status": event.PaymentStatus,
	}

	var invalidTokens []string
	for userID, tokens := range tokensByUser {
		msg := audiences[userID]
		sent, failed, invalid := srv.sendBatched(ctx, tokens, msg, data)
		result.Sent += sent
		result.Failed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}
	result.InvalidTokens = len(invalidTokens)

	srv.pruneInvalidTokens(ctx, invalidTokens, deviceByToken)

	srv.log(ctx).Info("Order notification sent",
		slog.String("order_id", event.OrderID),
		slog.String("event_type", event.Type),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return result, nil
}

func (srv *orderNotificationService) restaurantOwner(ctx context.Context, restaurantID string) (*uuid.UUID, error) {
	id, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, errors.Wrap(usecase.ErrMalformedEvent, "invalid restaurant_id")
	}

	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, nil
		}

		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to load restaurant"))
	}

	return restaurant.OwnerID, nil
}

// sendBatched sends in FCM sized batches. A failed batch counts all its tokens as failed.
func (srv *orderNotificationService) sendBatched(ctx context.Context, tokens []string, msg pushMessage, data map[string]string) (sent, failed int, invalid []string) {
	for start := 0; start < len(tokens); start += notificationBatchSize {
		batch := tokens[start:min(start+notificationBatchSize, len(tokens))]

		ok, ko, batchInvalid, err := srv.notifier.SendBatchNotification(ctx, batch, msg.title, msg.body, data)
		if err != nil {
			srv.log(ctx).Error("Failed to send notification batch",
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			failed += len(batch)

			continue
		}

		sent += ok
		failed += ko
		invalid = append(invalid, batchInvalid...)
	}

	return sent, failed, invalid
}

func (srv *orderNotificationService) pruneInvalidTokens(ctx context.Context, tokens []string, deviceByToken map[string]*entity.UserDevice) {
	for _, token := range tokens {
		device, ok := deviceByToken[token]
		if !ok {
			continue
		}

		if err := srv.deviceRepo.DeleteDevice(ctx, device.ID); err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
			srv.log(ctx).Warn("Failed to delete device with invalid token",
				slog.String("device_id", device.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}

func customerMessage(event *service.OrderEvent) (pushMessage, bool) {
	number := shortOrderNumber(event.OrderID)

	switch event.Type {
	case service.EventOrderCreated:
		return pushMessage{
			title: "Заказ оформлен",
			body:  fmt.Sprintf("Заказ №%s на сумму %.2f сом принят", number, event.Total),
		}, true
	case service.EventOrderStatusChanged:
		text, ok := statusMessages[entity.OrderStatus(event.Status)]
		if !ok {
			return pushMessage{}, false
		}

		return pushMessage{title: "Статус заказа обновлен", body: fmt.Sprintf("Заказ №%s: %s", number, text)}, true
	case service.EventOrderPaid:
		return pushMessage{title: "Оплата получена", body: fmt.Sprintf("Заказ №%s оплачен", number)}, true
	default:
		return pushMessage{}, false
	}
}

func ownerMessage(event *service.OrderEvent) pushMessage {
	return pushMessage{
		title: "Новый заказ",
		body:  fmt.Sprintf("Заказ №%s на сумму %.2f сом", shortOrderNumber(event.OrderID), event.Total),
	}
}

func shortOrderNumber(orderID string) string {
	if len(orderID) > 8 {
		return orderID[:8]
	}

	return orderID
}
