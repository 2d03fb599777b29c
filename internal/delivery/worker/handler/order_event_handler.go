package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/service"
	"eats/internal/errors"
	"eats/internal/usecase"

	"go.uber.org/fx"
)

// attributeRequestID carries the originating request ID on transport metadata.
const attributeRequestID = "request_id"

// OrderEventHandlerParams holds dependencies for OrderEventHandler, injected by Fx.
type OrderEventHandlerParams struct {
	fx.In

	NotifyUC usecase.OrderNotificationUsecase
	Logger   *slog.Logger
}

// OrderEventHandler decodes order events and fans them out as push notifications.
// It is shared by every transport the notifier consumes.
type OrderEventHandler struct {
	notifyUC usecase.OrderNotificationUsecase
	logger   *slog.Logger
}

// NewOrderEventHandler creates a new OrderEventHandler.
func NewOrderEventHandler(params OrderEventHandlerParams) *OrderEventHandler {
	return &OrderEventHandler{
		notifyUC: params.NotifyUC,
		logger:   params.Logger,
	}
}

// Handle processes one JSON encoded order event. Errors satisfying
// usecase.IsRetryable should be redelivered; every other error is final.
func (h *OrderEventHandler) Handle(ctx context.Context, data []byte, attributes map[string]string) error {
	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order event", slog.Any("error", err))

		return errors.Wrap(usecase.ErrMalformedEvent, err.Error())
	}

	requestID := deliverycontext.NormalizeRequestID(h.requestID(ctx, attributes, &event))
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, requestID, h.logger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("event_id", event.EventID),
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	result, err := h.notifyUC.NotifyOrderEvent(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", usecase.IsRetryable(err)),
		)

		return err
	}

	reqLogger.Info("[Worker] Order event processed",
		slog.String("event_id", event.EventID),
		slog.Int("recipients", result.Recipients),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return nil
}

// requestID prefers transport attributes, then the event payload, then ctx.
func (h *OrderEventHandler) requestID(ctx context.Context, attributes map[string]string, event *service.OrderEvent) string {
	if requestID := attributes[attributeRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	return deliverycontext.GetRequestIDFromContext(ctx)
}
