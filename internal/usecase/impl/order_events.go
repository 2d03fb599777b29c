package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/entity"
	"eats/internal/domain/service"

	"github.com/google/uuid"
)

func newOrderEvent(ctx context.Context, eventType string, order *entity.Order) *service.OrderEvent {
	return &service.OrderEvent{
		EventID:       uuid.NewString(),
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		OrderID:       order.ID.String(),
		UserID:        order.UserID.String(),
		RestaurantID:  order.RestaurantID.String(),
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		Total:         order.Total,
		OccurredAt:    time.Now().UTC(),
	}
}

// publishOrderEvent never fails the caller; publish errors are only logged.
func publishOrderEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType string, order *entity.Order) {
	event := newOrderEvent(ctx, eventType, order)

	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("event_type", eventType),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("Order event published",
		slog.String("event_type", eventType),
		slog.String("event_id", event.EventID),
		slog.String("order_id", event.OrderID),
	)
}
