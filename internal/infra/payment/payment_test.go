package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"eats/config"
	"eats/internal/domain/service"
	"eats/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutRequest() *service.CheckoutRequest {
	orderID := uuid.New()

	return &service.CheckoutRequest{
		OrderID:     orderID,
		UserID:      uuid.New(),
		Amount:      12.5,
		Currency:    "usd",
		ProductName: "Заказ",
		SuccessURL:  "http://localhost:3000/orders/" + orderID.String() + "?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   "http://localhost:3000/checkout",
		Metadata:    map[string]string{"order_id": orderID.String()},
	}
}

func TestLocalGateway_CreateAndGet(t *testing.T) {
	gw := NewLocalGateway("", "secret")
	req := newCheckoutRequest()

	sess, err := gw.CreateCheckoutSession(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, sess.ID, localSessionPrefix)
	assert.Contains(t, sess.URL, "session_id="+sess.ID)
	assert.Equal(t, service.CheckoutPaymentStatusPaid, sess.PaymentStatus)

	got, err := gw.GetCheckoutSession(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, req.Metadata["order_id"], got.Metadata["order_id"])
	assert.InDelta(t, 12.5, got.AmountTotal, 0.0001)

	got.Metadata["order_id"] = "changed"
	again, err := gw.GetCheckoutSession(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, req.Metadata["order_id"], again.Metadata["order_id"])
}

func TestLocalGateway_CheckoutURLOverride(t *testing.T) {
	gw := NewLocalGateway("http://pay.local/checkout/", "secret")

	sess, err := gw.CreateCheckoutSession(context.Background(), newCheckoutRequest())
	require.NoError(t, err)
	assert.Equal(t, "http://pay.local/checkout/"+sess.ID, sess.URL)
}

func TestLocalGateway_GetUnknownSession(t *testing.T) {
	gw := NewLocalGateway("", "secret")

	_, err := gw.GetCheckoutSession(context.Background(), "cs_missing")
	assert.True(t, errors.Is(err, ErrLocalSessionNotFound))
}

func TestLocalGateway_ParseWebhook(t *testing.T) {
	gw := NewLocalGateway("", "secret")
	payload, err := json.Marshal(LocalWebhookPayload{
		ID:   "evt_1",
		Type: service.CheckoutEventSessionCompleted,
		Session: &service.CheckoutSession{
			ID:            "cs_local_1",
			PaymentStatus: service.CheckoutPaymentStatusPaid,
			Metadata:      map[string]string{"order_id": "abc"},
		},
	})
	require.NoError(t, err)

	t.Run("valid signature", func(t *testing.T) {
		event, err := gw.ParseWebhook(payload, SignLocalPayload("secret", payload))
		require.NoError(t, err)
		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, service.CheckoutEventSessionCompleted, event.Type)
		require.NotNil(t, event.Session)
		assert.Equal(t, "abc", event.Session.Metadata["order_id"])
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := gw.ParseWebhook(payload, SignLocalPayload("other", payload))
		assert.True(t, errors.Is(err, service.ErrWebhookSignature))
	})

	t.Run("missing signature", func(t *testing.T) {
		_, err := gw.ParseWebhook(payload, "")
		assert.True(t, errors.Is(err, service.ErrWebhookSignature))
	})
}

func TestStripeGateway_RequiresSecretKey(t *testing.T) {
	_, err := NewStripeGateway("", "whsec")
	assert.Error(t, err)
}

func TestStripeGateway_ParseWebhookRejectsBadSignature(t *testing.T) {
	gw, err := NewStripeGateway("sk_test_123", "whsec_test")
	require.NoError(t, err)

	_, err = gw.ParseWebhook([]byte(`{"id":"evt_1","type":"checkout.session.completed"}`), "t=1,v1=deadbeef")
	assert.True(t, errors.Is(err, service.ErrWebhookSignature))
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{amount: 0, want: 0},
		{amount: 1.1, want: 110},
		{amount: 4.587, want: 459},
		{amount: 1234.5, want: 123450},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toMinorUnits(tt.amount))
	}

	assert.InDelta(t, 4.59, fromMinorUnits(459), 0.0001)
}

func TestNewPaymentGateway(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PaymentConfig
		wantErr bool
	}{
		{name: "missing config", cfg: nil, wantErr: true},
		{name: "default is local", cfg: &config.PaymentConfig{}},
		{name: "local", cfg: &config.PaymentConfig{Provider: "local"}},
		{name: "stripe without key", cfg: &config.PaymentConfig{Provider: "stripe"}, wantErr: true},
		{name: "stripe", cfg: &config.PaymentConfig{Provider: "stripe", StripeSecretKey: "sk_test_1"}},
		{name: "unknown", cfg: &config.PaymentConfig{Provider: "paypal"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, err := NewPaymentGateway(Params{Config: &config.Config{Payment: tt.cfg}, Logger: logger})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, gw)
		})
	}
}
