package usecase

import (
	"context"
	"fmt"

	"eats/internal/domain/service"
	"eats/internal/errors"
)

// ErrMalformedEvent marks an event that can never be processed.
var ErrMalformedEvent = errors.New("malformed order event")

// RetryableError marks a failure that should be redelivered.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError wraps err as retryable.
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err should trigger a redelivery.
func IsRetryable(err error) bool {
	var re *RetryableError

	return errors.As(err, &re)
}

// NotificationResult summarizes one fan-out.
type NotificationResult struct {
	Recipients    int
	Sent          int
	Failed        int
	InvalidTokens int
}

// OrderNotificationUsecase turns order events into push notifications.
type OrderNotificationUsecase interface {
	NotifyOrderEvent(ctx context.Context, event *service.OrderEvent) (*NotificationResult, error)
}
