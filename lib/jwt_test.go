package lib

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, sub uuid.UUID, role string, exp time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub.String(),
		"email": "admin@lahmah.test",
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   exp.Unix(),
		"jti":   uuid.New().String(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestParseToken_Valid(t *testing.T) {
	sub := uuid.New()
	tokenStr := signTestToken(t, sub, "admin", time.Now().Add(time.Hour))

	claims, err := ParseToken(tokenStr, testSecret)
	require.NoError(t, err)

	assert.Equal(t, sub, claims.Sub)
	assert.Equal(t, "admin@lahmah.test", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Exp, 5*time.Second)
}

func TestParseToken_Expired(t *testing.T) {
	tokenStr := signTestToken(t, uuid.New(), "admin", time.Now().Add(-time.Minute))

	_, err := ParseToken(tokenStr, testSecret)
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenStr := signTestToken(t, uuid.New(), "admin", time.Now().Add(time.Hour))

	_, err := ParseToken(tokenStr, "other-secret")
	assert.Error(t, err)
}

func TestExtractClaims_BearerHeader(t *testing.T) {
	sub := uuid.New()
	tokenStr := signTestToken(t, sub, "admin", time.Now().Add(time.Hour))

	r := httptest.NewRequest(http.MethodGet, "/orders", nil)
	r.Header.Set("Authorization", "Bearer "+tokenStr)

	claims, err := ExtractClaims(r, testSecret)
	require.NoError(t, err)
	assert.Equal(t, sub, claims.Sub)
}

func TestExtractClaims_CookieFallback(t *testing.T) {
	sub := uuid.New()
	tokenStr := signTestToken(t, sub, "admin", time.Now().Add(time.Hour))

	r := httptest.NewRequest(http.MethodGet, "/orders", nil)
	r.AddCookie(&http.Cookie{Name: AccessCookieName, Value: tokenStr})

	claims, err := ExtractClaims(r, testSecret)
	require.NoError(t, err)
	assert.Equal(t, sub, claims.Sub)
}

func TestExtractClaims_Missing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/orders", nil)

	_, err := ExtractClaims(r, testSecret)
	assert.Error(t, err)
}
