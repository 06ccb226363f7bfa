package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"bitskill_backend/internal/config"
)

func setupTestConfig(t *testing.T, ttlHours int) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit_test_secret_key"
	cfg.JWT.TTL = ttlHours
	cfg.Auth.BcryptCost = 4
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setupTestConfig(t, 24)

	token, err := GenerateToken("user-123", "user@test.com", "freelancer")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user@test.com", claims.Email)
	assert.Equal(t, "freelancer", claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setupTestConfig(t, 24)
	token, err := GenerateToken("user-123", "user@test.com", "student")
	assert.NoError(t, err)

	// Токен, подписанный одним секретом, не проходит с другим
	config.AppConfig.JWT.Secret = "a_completely_different_secret"
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	setupTestConfig(t, 24)

	claims := Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.GetConfig().JWT.Secret))
	assert.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	setupTestConfig(t, 24)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_WrongSigningMethod(t *testing.T) {
	setupTestConfig(t, 24)

	// alg=none отклоняется проверкой метода подписи
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-123"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = ParseToken(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
