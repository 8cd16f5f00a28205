// Package qrcode renders shop share codes.
package qrcode

import (
	"net/url"
	"path"
	"strings"

	"kampuskart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	shopPathPrefix = "/shops/"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a service whose codes link to <baseURL>/shops/<id>.
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// ShopURL is the content encoded in a shop's code.
func (s *qrcodeService) ShopURL(shopID uuid.UUID) string {
	return s.baseURL + shopPathPrefix + shopID.String()
}

// GenerateShopQR renders the shop URL as a PNG.
func (s *qrcodeService) GenerateShopQR(shopID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ShopURL(shopID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseShopQR accepts the scanned URL, absolute or relative, and returns the shop id.
func (s *qrcodeService) ParseShopQR(qrData string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code URL")
	}

	dir, last := path.Split(path.Clean(parsed.Path))
	if !strings.HasSuffix(dir, shopPathPrefix) {
		return uuid.Nil, errors.Errorf("not a shop link: %s", qrData)
	}

	shopID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse shop ID")
	}

	return shopID, nil
}
