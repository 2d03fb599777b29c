package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutOutput points the customer to the hosted checkout page.
type CheckoutOutput struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// PaymentStatusOutput is the provider's current view of a checkout session.
type PaymentStatusOutput struct {
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	AmountTotal   float64 `json:"amount_total"`
	Currency      string  `json:"currency"`
}

// PaymentUsecase defines online payment of orders.
type PaymentUsecase interface {
	CreateCheckout(ctx context.Context, userID, orderID uuid.UUID, originURL string) (*CheckoutOutput, error)

	// GetStatus polls the provider and reconciles a paid session.
	GetStatus(ctx context.Context, userID uuid.UUID, sessionID string) (*PaymentStatusOutput, error)

	// HandleWebhook verifies a provider notification and reconciles a paid session.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}
