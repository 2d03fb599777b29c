package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eats/config"
	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/service"
	"eats/internal/errors"
	mockUC "eats/internal/mocks/usecase"
	"eats/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockOrderNotificationUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifyUC := mockUC.NewMockOrderNotificationUsecase(t)
	events := NewOrderEventHandler(OrderEventHandlerParams{NotifyUC: notifyUC, Logger: logger})

	return NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger, Events: events}), notifyUC
}

func pushBody(t *testing.T, data []byte, attributes map[string]string) []byte {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return raw
}

func orderEventJSON(t *testing.T) []byte {
	t.Helper()

	raw, err := json.Marshal(service.OrderEvent{
		EventID:   "evt-1",
		RequestID: "req-from-event",
		Type:      service.EventOrderStatusChanged,
		OrderID:   "0b6b0a0e-8f5d-4a52-9c64-9c0f5a1d2e11",
		UserID:    "5f0c3a3e-2b5e-4b6f-8f4b-3f2d1c0b9a87",
		Status:    "delivering",
	})
	require.NoError(t, err)

	return raw
}

func servePush(h *PushHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("delivers event with attribute request id", func(t *testing.T) {
		h, notifyUC := newTestPushHandler(t, &config.Config{})
		notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, event *service.OrderEvent) (*usecase.NotificationResult, error) {
				assert.Equal(t, "evt-1", event.EventID)
				assert.Equal(t, "req-from-attrs", deliverycontext.GetRequestIDFromContext(ctx))

				return &usecase.NotificationResult{Recipients: 1, Sent: 1}, nil
			}).Once()

		rec := servePush(h, pushBody(t, orderEventJSON(t), map[string]string{"request_id": "req-from-attrs"}), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("falls back to event request id", func(t *testing.T) {
		h, notifyUC := newTestPushHandler(t, &config.Config{})
		notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ *service.OrderEvent) (*usecase.NotificationResult, error) {
				assert.Equal(t, "req-from-event", deliverycontext.GetRequestIDFromContext(ctx))

				return &usecase.NotificationResult{}, nil
			}).Once()

		rec := servePush(h, pushBody(t, orderEventJSON(t), nil), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("retryable failure answers 503", func(t *testing.T) {
		h, notifyUC := newTestPushHandler(t, &config.Config{})
		notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.Anything).
			Return(nil, usecase.NewRetryableError(errors.New("db down"))).Once()

		rec := servePush(h, pushBody(t, orderEventJSON(t), nil), nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("malformed event is acknowledged", func(t *testing.T) {
		h, notifyUC := newTestPushHandler(t, &config.Config{})
		notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(usecase.ErrMalformedEvent, "bad user id")).Once()

		rec := servePush(h, pushBody(t, orderEventJSON(t), nil), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable payloads are acknowledged without processing", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})

		assert.Equal(t, http.StatusOK, servePush(h, pushBody(t, []byte("not json"), nil), nil).Code)
		assert.Equal(t, http.StatusOK, servePush(h, []byte(`{"message":{"data":"%%%"}}`), nil).Code)
	})

	t.Run("non envelope body is rejected", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})

		assert.Equal(t, http.StatusBadRequest, servePush(h, []byte("{"), nil).Code)
	})
}

func TestPushHandler_Auth(t *testing.T) {
	googleProd := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	googleProd.Env.Env = "production"

	t.Run("verification only for google outside develop", func(t *testing.T) {
		h, _ := newTestPushHandler(t, googleProd)
		assert.True(t, h.verifyPushAuth)

		dev := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
		dev.Env.Env = "develop"
		h, _ = newTestPushHandler(t, dev)
		assert.False(t, h.verifyPushAuth)

		kafkaProd := &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}
		kafkaProd.Env.Env = "production"
		h, _ = newTestPushHandler(t, kafkaProd)
		assert.False(t, h.verifyPushAuth)
	})

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, googleProd)

		rec := servePush(h, pushBody(t, orderEventJSON(t), nil), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, googleProd)
		h.validateToken = func(_ *http.Request, _, _ string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := servePush(h, pushBody(t, orderEventJSON(t), nil), http.Header{"Authorization": {"Bearer t"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid google token", func(t *testing.T) {
		h, notifyUC := newTestPushHandler(t, googleProd)
		h.validateToken = func(_ *http.Request, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "t", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		notifyUC.EXPECT().NotifyOrderEvent(mock.Anything, mock.Anything).Return(&usecase.NotificationResult{}, nil).Once()

		rec := servePush(h, pushBody(t, orderEventJSON(t), nil), http.Header{"Authorization": {"Bearer t"}})

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
