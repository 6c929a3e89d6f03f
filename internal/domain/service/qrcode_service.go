package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateStorefrontQR generates a QR code linking to a shop's storefront
	GenerateStorefrontQR(shopUUID uuid.UUID) ([]byte, error)

	// ParseStorefrontQR parses QR code data and returns the shop UUID
	ParseStorefrontQR(qrData string) (uuid.UUID, error)
}
