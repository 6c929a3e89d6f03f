package qrcode

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://market.example.com/shops"

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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, testBaseURL)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateStorefrontQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)
	shopUUID := uuid.New()

	qrBytes, err := service.GenerateStorefrontQR(shopUUID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateStorefrontQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", testBaseURL)

			qrBytes, err := service.GenerateStorefrontQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseStorefrontQR(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)
	shopUUID := uuid.New()

	parsed, err := service.ParseStorefrontQR(fmt.Sprintf("%s/%s", testBaseURL, shopUUID))
	require.NoError(t, err)
	assert.Equal(t, shopUUID, parsed)
}

func TestQRCodeService_ParseStorefrontQR_TrailingSlashBaseURL(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL+"/")
	shopUUID := uuid.New()

	parsed, err := service.ParseStorefrontQR(fmt.Sprintf("%s/%s", testBaseURL, shopUUID))
	require.NoError(t, err)
	assert.Equal(t, shopUUID, parsed)
}

func TestQRCodeService_ParseStorefrontQR_WrongPrefix(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	_, err := service.ParseStorefrontQR("https://evil.example.com/shops/" + uuid.New().String())
	assert.Error(t, err)
}

func TestQRCodeService_ParseStorefrontQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M", testBaseURL)

	_, err := service.ParseStorefrontQR(testBaseURL + "/not-a-uuid")
	assert.Error(t, err)
}
