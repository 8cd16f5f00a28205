package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService("https://kart.campus.edu", tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateShopQR(t *testing.T) {
	sizes := []int{128, 256, 512}

	for _, size := range sizes {
		service := NewQRCodeService("https://kart.campus.edu", size, "M")

		qrBytes, err := service.GenerateShopQR(uuid.New())
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_ShopURL(t *testing.T) {
	service := NewQRCodeService("https://kart.campus.edu/", 256, "M").(*qrcodeService)
	shopID := uuid.New()

	assert.Equal(t, "https://kart.campus.edu/shops/"+shopID.String(), service.ShopURL(shopID))
}

func TestQRCodeService_ParseShopQR(t *testing.T) {
	service := NewQRCodeService("https://kart.campus.edu", 256, "M")
	shopID := uuid.New()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "absolute url", data: "https://kart.campus.edu/shops/" + shopID.String()},
		{name: "relative path", data: "/shops/" + shopID.String()},
		{name: "trailing slash", data: "https://kart.campus.edu/shops/" + shopID.String() + "/"},
		{name: "other page", data: "https://kart.campus.edu/products/" + shopID.String(), wantErr: "not a shop link"},
		{name: "bad id", data: "https://kart.campus.edu/shops/not-a-uuid", wantErr: "failed to parse shop ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := service.ParseShopQR(tt.data)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, shopID, parsed)
		})
	}
}
