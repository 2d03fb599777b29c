// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"eats/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// At least one of Email and Phone must be set.
type RegisterInput struct {
	Name     string
	City     string
	Email    *string
	Phone    *string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	EmailOrPhone string
	Password     string
}

// --- Output DTOs ---

// AuthOutput returns the account and a freshly issued bearer token.
type AuthOutput struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// AuthUsecase defines account registration and token based sessions.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Authenticate resolves a bearer token to its user.
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	// Logout revokes the token. Unknown tokens are accepted.
	Logout(ctx context.Context, token string) error
}
