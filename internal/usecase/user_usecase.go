package usecase

import (
	"context"

	"iothub/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput holds the data for user registration.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterOutput is the result of a successful registration.
type RegisterOutput struct {
	User *entity.User
}

// LoginInput holds the credentials for a login attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the user-facing account operations.
type UserUsecase interface {
	// Register creates a user account with an email credential.
	Register(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// Login verifies the credential and issues a user access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ChangeEmail rewrites the account email, propagates the change to
	// every denormalized copy and notifies the user's connections.
	ChangeEmail(ctx context.Context, userID uuid.UUID, newEmail string) error

	// Delete removes the account and cascades over everything it owns.
	Delete(ctx context.Context, userID uuid.UUID) error

	// RegisterPushToken stores an FCM registration for the push fallback.
	RegisterPushToken(ctx context.Context, email, token, platform string) error
}
