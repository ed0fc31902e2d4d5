// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"atlas/config"
	"atlas/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens carry a user_id claim and an expiry; the signing method is HMAC with
// the configured algorithm.
type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	algorithm := cfg.JWT.Algorithm
	if algorithm == "" {
		algorithm = "HS256"
	}
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.Errorf("unsupported jwt algorithm: %s", algorithm)
	}

	ttl := time.Duration(cfg.JWT.ExpiryMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Generate creates a signed token embedding the user ID and an expiry.
func (s *jwtService) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature and expiry of a token string and extracts the
// embedded user ID.
func (s *jwtService) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Reject tokens signed with anything but the configured HMAC method.
		if token.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.Wrap(errors.New("invalid or expired token"), "token validation failed")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("failed to parse token claims")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("user_id missing from token")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid user_id format in token")
	}

	return userID, nil
}
