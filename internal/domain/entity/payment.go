package entity

import (
	"time"

	"github.com/google/uuid"
)

// Transaction statuses written locally. Other values mirror the provider.
const (
	TransactionStatusInitiated = "initiated"
	TransactionStatusComplete  = "complete"
)

// PaymentTransaction mirrors one hosted checkout session of an order.
type PaymentTransaction struct {
	ID            uuid.UUID         `json:"id"`
	SessionID     string            `json:"session_id"`
	UserID        uuid.UUID         `json:"user_id"`
	OrderID       uuid.UUID         `json:"order_id"`
	Amount        float64           `json:"amount"`   // In settlement currency.
	Currency      string            `json:"currency"` // Lowercase ISO code, e.g. "usd".
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
