package usecase

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is a push-capable device announced by a client.
type DeviceInfo struct {
	FCMToken string
	DeviceID string // Stable client identifier; re-registering it refreshes the token.
	Platform string // ios or android.
}

// DeviceUsecase manages the devices that receive order notifications.
type DeviceUsecase interface {
	// RegisterDevice creates a device or refreshes the token of a known DeviceID.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.UserDevice, error)

	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	UpdateToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
