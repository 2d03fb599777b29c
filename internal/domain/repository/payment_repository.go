package repository

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrTransactionNotFound is returned when no payment transaction has the session id.
var ErrTransactionNotFound = errors.New("payment transaction not found")

// PaymentRepository persists the payment transaction ledger.
type PaymentRepository interface {
	Create(ctx context.Context, transaction *entity.PaymentTransaction) error
	FindBySessionID(ctx context.Context, sessionID string) (*entity.PaymentTransaction, error)

	// UpdateStatus mirrors provider statuses onto the transaction of sessionID.
	UpdateStatus(ctx context.Context, sessionID, status, paymentStatus string) error
}
