package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Provider-reported checkout values the payment flow reacts to.
const (
	CheckoutPaymentStatusPaid                 = "paid"
	CheckoutEventSessionCompleted             = "checkout.session.completed"
	CheckoutEventSessionAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	checkoutSessionEventPrefix                = "checkout.session."
)

// IsCheckoutSessionEvent reports whether the event carries a checkout session.
func IsCheckoutSessionEvent(eventType string) bool {
	return strings.HasPrefix(eventType, checkoutSessionEventPrefix)
}

// ErrWebhookSignature is returned when a webhook payload fails verification.
var ErrWebhookSignature = errors.New("webhook signature verification failed")

// CheckoutRequest describes a hosted checkout session to open.
type CheckoutRequest struct {
	OrderID     uuid.UUID
	UserID      uuid.UUID
	Amount      float64 // In Currency units, already converted.
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// CheckoutSession is the provider's view of a checkout session.
type CheckoutSession struct {
	ID            string
	URL           string
	Status        string
	PaymentStatus string
	AmountTotal   float64
	Currency      string
	Metadata      map[string]string
}

// WebhookEvent is a verified provider notification.
type WebhookEvent struct {
	ID      string
	Type    string
	Session *CheckoutSession // Set for checkout session events.
}

// PaymentGateway is the hosted-checkout capability of an external provider.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)

	// ParseWebhook verifies the signature and decodes the payload.
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
