package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and reads restaurant QR codes.
type QRCodeService interface {
	// GenerateRestaurantQR renders a PNG QR code linking to the restaurant page.
	GenerateRestaurantQR(restaurantID uuid.UUID) ([]byte, error)

	// ParseRestaurantQR extracts the restaurant id from scanned QR content.
	ParseRestaurantQR(content string) (uuid.UUID, error)
}
