// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"iothub/internal/domain/entity"
)

// PushTokenRepository persists FCM registrations for the push fallback.
type PushTokenRepository interface {
	// Upsert inserts or refreshes the row for (email, token).
	Upsert(ctx context.Context, token *entity.PushToken) error

	// FindByEmail retrieves all registrations owned by an email.
	FindByEmail(ctx context.Context, email string) ([]*entity.PushToken, error)

	// RenameEmail rewrites the denormalized owner email.
	RenameEmail(ctx context.Context, oldEmail, newEmail string) error

	// DeleteByEmail removes every registration for an email. Idempotent.
	DeleteByEmail(ctx context.Context, email string) error

	// DeleteTokens prunes registrations the push provider reported as
	// invalid. Idempotent.
	DeleteTokens(ctx context.Context, tokens []string) error
}
