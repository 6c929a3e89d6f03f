package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"market/config"
	mockservice "market/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test-secret"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	return cfg
}

// parsedToken signs and re-parses a token so the middleware receives the
// same *jwt.Token shape the real token service produces.
func parsedToken(t *testing.T, claims jwt.MapClaims) (string, *jwt.Token) {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(_ *jwt.Token) (any, error) {
		return []byte(testAccessSecret), nil
	})
	require.NoError(t, err)

	return signed, token
}

func runAuthenticate(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	err := m.Authenticate(func(echo.Context) error {
		nextCalled = true

		return nil
	})(c)
	require.NoError(t, err)

	return rec, c, nextCalled
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, testConfig())

	signed, token := parsedToken(t, jwt.MapClaims{
		"uid":   float64(7),
		"roles": []any{"seller", "user"},
		"exp":   time.Now().Add(time.Minute).Unix(),
	})
	tokenSvc.EXPECT().ValidateToken(signed, testAccessSecret).Return(token, nil)

	_, c, nextCalled := runAuthenticate(t, m, "Bearer "+signed)

	assert.True(t, nextCalled)
	userID, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, uint64(7), userID)
	assert.True(t, HasRole(c, "seller"))
	assert.False(t, HasRole(c, "admin"))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, testConfig())

	rec, _, nextCalled := runAuthenticate(t, m, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, testConfig())

	rec, _, nextCalled := runAuthenticate(t, m, "Basic abc123")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, testConfig())

	tokenSvc.EXPECT().ValidateToken("bad-token", testAccessSecret).Return(nil, jwt.ErrSignatureInvalid)

	rec, _, nextCalled := runAuthenticate(t, m, "Bearer bad-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingUserID(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, testConfig())

	signed, token := parsedToken(t, jwt.MapClaims{
		"roles": []any{"seller"},
		"exp":   time.Now().Add(time.Minute).Unix(),
	})
	tokenSvc.EXPECT().ValidateToken(signed, testAccessSecret).Return(token, nil)

	rec, _, nextCalled := runAuthenticate(t, m, "Bearer "+signed)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, testConfig())

	tests := []struct {
		name       string
		roles      any
		required   string
		wantStatus int
		wantNext   bool
	}{
		{"role present", []string{"admin", "user"}, "admin", http.StatusOK, true},
		{"role missing", []string{"user"}, "admin", http.StatusForbidden, false},
		{"roles not set", nil, "admin", http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.roles != nil {
				c.Set(ContextKeyRoles, tt.roles)
			}

			nextCalled := false
			err := m.RequireRole(tt.required)(func(echo.Context) error {
				nextCalled = true

				return c.NoContent(http.StatusOK)
			})(c)
			require.NoError(t, err)

			assert.Equal(t, tt.wantNext, nextCalled)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
