package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for validating the access tokens issued
// by the marketplace's auth service. Token issuance is out of scope here;
// the shop lifecycle only consumes tokens at the HTTP boundary.
type TokenService interface {
	// ValidateToken parses and validates a signed JWT with the given secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
