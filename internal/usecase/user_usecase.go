// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	FirstName      string
	LastName       string
	AdditionalName *string
	PhoneNumber    *string
	DateOfBirth    time.Time
	AvatarImage    *string
}

// LoginInput defines the data required to log in. Login accepts either the
// username or the email address.
type LoginInput struct {
	Login    string
	Password string
}

// UpdateUserInput carries a partial update of the caller's own account.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	Username       *string
	Email          *string
	Password       *string
	FirstName      *string
	LastName       *string
	AdditionalName *string
	PhoneNumber    *string
	DateOfBirth    *time.Time
	AvatarImage    *string
}

// --- Output DTOs ---

// LoginOutput returns the generated bearer token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	List(ctx context.Context, params repository.ListParams) ([]*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateMe(ctx context.Context, current *entity.User, input UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, current *entity.User, id uuid.UUID) error
}
