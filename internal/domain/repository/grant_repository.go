// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"iothub/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for access grant persistence.
var (
	// ErrGrantNotFound is returned when a grant is not found.
	ErrGrantNotFound = errors.New("access grant not found")
	// ErrDuplicateGrant is returned when an active grant already exists
	// for the (device id, grantee email) pair.
	ErrDuplicateGrant = errors.New("access grant already exists")
)

// GrantRepository defines the interface for access grant operations.
type GrantRepository interface {
	// Create persists a new grant.
	Create(ctx context.Context, grant *entity.AccessGrant) error

	// FindActiveByDevice retrieves all active grants for a device id.
	FindActiveByDevice(ctx context.Context, deviceID string) ([]*entity.AccessGrant, error)

	// FindActive retrieves the active grant for one (device, grantee) pair.
	FindActive(ctx context.Context, deviceID, granteeEmail string) (*entity.AccessGrant, error)

	// RenameEmails rewrites grantee_email and grantor_email copies.
	RenameEmails(ctx context.Context, oldEmail, newEmail string) error

	// Delete removes the grant for one (device, grantee) pair. Idempotent.
	Delete(ctx context.Context, deviceID, granteeEmail string) error

	// DeleteByDevice removes every grant for a device id. Idempotent.
	DeleteByDevice(ctx context.Context, deviceID string) error

	// DeleteByGrantee removes every grant held by an email. Idempotent.
	DeleteByGrantee(ctx context.Context, email string) error
}
