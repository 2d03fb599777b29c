package service

import (
	"context"
)

// PushBatchLimit is the most device tokens a single batch send may carry.
const PushBatchLimit = 500

// NotificationService delivers order pushes to customer and owner devices.
type NotificationService interface {
	// SendBatchNotification sends one message to up to PushBatchLimit tokens.
	// invalidTokens lists tokens the provider reported as unregistered; callers
	// deactivate the matching devices.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
