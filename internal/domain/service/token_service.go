package service

import "github.com/google/uuid"

// TokenService defines the interface for issuing and verifying the bearer
// tokens that identify a user on authenticated requests. It abstracts the
// token format (JWT) away from the use cases.
type TokenService interface {
	// Generate creates a signed, time-limited token embedding the user ID.
	Generate(userID uuid.UUID) (string, error)

	// Validate verifies the signature and expiry of a token string and
	// extracts the embedded user ID.
	Validate(tokenString string) (uuid.UUID, error)
}
