package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates share codes that point at a shop page.
type QRCodeService interface {
	// GenerateShopQR returns a PNG encoding the shop's public URL.
	GenerateShopQR(shopID uuid.UUID) ([]byte, error)

	// ParseShopQR extracts the shop id from decoded QR content.
	ParseShopQR(qrData string) (uuid.UUID, error)
}
