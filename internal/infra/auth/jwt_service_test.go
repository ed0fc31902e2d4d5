package auth

import (
	"testing"
	"time"

	"atlas/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(secret string) *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			Secret:        secret,
			Algorithm:     "HS256",
			ExpiryMinutes: 30,
		},
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("test-secret"))
	require.NoError(t, err)

	userID := uuid.New()

	token, err := svc.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testJWTConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuer.Generate(uuid.New())
	require.NoError(t, err)

	parsedID, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestJWTService_Validate_ExpiredToken(t *testing.T) {
	secret := "test-secret"
	svc, err := NewJWTService(testJWTConfig(secret))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	parsedID, err := svc.Validate(expired)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestJWTService_Validate_WrongSigningMethod(t *testing.T) {
	secret := "test-secret"
	svc, err := NewJWTService(testJWTConfig(secret))
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	// Signed with HS512 while the service only accepts HS256.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	parsedID, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig("test-secret"))
	require.NoError(t, err)

	parsedID, err := svc.Validate("not-a-token")
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, parsedID)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{JWT: &config.JWTConfig{}})
	assert.Error(t, err)
}

func TestNewJWTService_UnsupportedAlgorithm(t *testing.T) {
	cfg := testJWTConfig("test-secret")
	cfg.JWT.Algorithm = "RS256"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
