// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"iothub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the email is already registered.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its row id (the JWT `sub` claim).
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateEmail rewrites the user's own email field.
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error

	// DeleteByEmail removes the user row. Idempotent.
	DeleteByEmail(ctx context.Context, email string) error
}

// Domain-specific errors for authentication persistence.
var (
	// ErrAuthNotFound is returned when no credential matches.
	ErrAuthNotFound = errors.New("authentication not found")
)

// AuthRepository defines the interface for credential storage.
type AuthRepository interface {
	// Create persists a new credential.
	Create(ctx context.Context, auth *entity.Authentication) error

	// FindByIdentifier retrieves a credential by provider and identifier.
	FindByIdentifier(ctx context.Context, provider, identifier string) (*entity.Authentication, error)

	// RenameIdentifier rewrites the denormalized email identifier.
	RenameIdentifier(ctx context.Context, oldEmail, newEmail string) error

	// DeleteByIdentifier removes credentials for an identifier. Idempotent.
	DeleteByIdentifier(ctx context.Context, identifier string) error
}
