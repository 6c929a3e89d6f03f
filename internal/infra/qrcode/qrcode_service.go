package qrcode

import (
	"fmt"
	"strings"

	"market/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. baseURL is the
// public storefront URL prefix the shop UUID is appended to.
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateStorefrontQR generates a QR code encoding the shop's storefront URL.
func (s *qrcodeService) GenerateStorefrontQR(shopUUID uuid.UUID) ([]byte, error) {
	storefrontURL := fmt.Sprintf("%s/%s", s.baseURL, shopUUID)

	// Generate QR code
	qrCode, err := qrcode.New(storefrontURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseStorefrontQR parses storefront QR data and returns the shop UUID.
func (s *qrcodeService) ParseStorefrontQR(qrData string) (uuid.UUID, error) {
	if !strings.HasPrefix(qrData, s.baseURL+"/") {
		return uuid.Nil, fmt.Errorf("unexpected storefront URL: %s", qrData)
	}

	shopUUID, err := uuid.Parse(strings.TrimPrefix(qrData, s.baseURL+"/"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse shop UUID: %w", err)
	}

	return shopUUID, nil
}
