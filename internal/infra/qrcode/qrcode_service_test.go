package qrcode

import (
	"testing"

	"eats/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_GenerateRestaurantQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://eats.tj")

	pngBytes, err := svc.GenerateRestaurantQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(pngBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestQRCodeService_GenerateRestaurantQR_DifferentSizes(t *testing.T) {
	restaurantID := uuid.New()
	small, err := NewQRCodeService(128, "M", "").GenerateRestaurantQR(restaurantID)
	require.NoError(t, err)
	large, err := NewQRCodeService(512, "M", "").GenerateRestaurantQR(restaurantID)
	require.NoError(t, err)

	assert.Greater(t, len(large), len(small))
}

func TestQRCodeService_ParseRestaurantQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://eats.tj/")
	restaurantID := uuid.New()

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "absolute link", content: "https://eats.tj/restaurants/" + restaurantID.String()},
		{name: "trailing slash", content: "https://eats.tj/restaurants/" + restaurantID.String() + "/"},
		{name: "relative link", content: "/restaurants/" + restaurantID.String()},
		{name: "other page", content: "https://eats.tj/orders/" + restaurantID.String(), wantErr: true},
		{name: "bad id", content: "https://eats.tj/restaurants/not-a-uuid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseRestaurantQR(tt.content)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, restaurantID, got)
		})
	}
}

func TestNew_FromConfig(t *testing.T) {
	svc := New(&config.Config{QRCode: &config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "H", BaseURL: "https://eats.tj/"}})

	impl, ok := svc.(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 300, impl.size)
	assert.Equal(t, qrcode.Highest, impl.errorCorrectionLevel)
	assert.Equal(t, "https://eats.tj", impl.baseURL)

	fallback, ok := New(&config.Config{}).(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, defaultSize, fallback.size)
}
