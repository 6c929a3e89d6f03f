package auth

import (
	"testing"
	"time"

	"market/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	service, err := NewJWTService(cfg)

	assert.Error(t, err)
	assert.Nil(t, service)
}

func TestJWTService_ValidateToken_Success(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	service, err := NewJWTService(cfg)
	require.NoError(t, err)

	signed := signTestToken(t, "test-secret", jwt.MapClaims{
		"uid":   float64(7),
		"roles": []any{"seller"},
		"exp":   time.Now().Add(time.Minute).Unix(),
	})

	token, err := service.ValidateToken(signed, "test-secret")

	require.NoError(t, err)
	assert.True(t, token.Valid)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	service, err := NewJWTService(cfg)
	require.NoError(t, err)

	signed := signTestToken(t, "other-secret", jwt.MapClaims{
		"uid": float64(7),
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	_, err = service.ValidateToken(signed, "test-secret")

	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	service, err := NewJWTService(cfg)
	require.NoError(t, err)

	signed := signTestToken(t, "test-secret", jwt.MapClaims{
		"uid": float64(7),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err = service.ValidateToken(signed, "test-secret")

	assert.Error(t, err)
}
