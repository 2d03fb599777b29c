package qrcode

import (
	"net/url"
	"strings"

	"eats/config"
	"eats/internal/domain/service"
	"eats/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	restaurantPath = "/restaurants/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// New creates the QR code service from configuration
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a QR code service rendering links under baseURL
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateRestaurantQR renders {baseURL}/restaurants/{id} as a PNG
func (s *qrcodeService) GenerateRestaurantQR(restaurantID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.baseURL+restaurantPath+restaurantID.String(), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseRestaurantQR accepts a restaurant link, with or without host, and returns its id
func (s *qrcodeService) ParseRestaurantQR(content string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(content))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code content")
	}

	idx := strings.LastIndex(parsed.Path, restaurantPath)
	if idx < 0 {
		return uuid.Nil, errors.Errorf("not a restaurant link: %s", content)
	}

	restaurantID, err := uuid.Parse(strings.Trim(parsed.Path[idx+len(restaurantPath):], "/"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse restaurant ID")
	}

	return restaurantID, nil
}
