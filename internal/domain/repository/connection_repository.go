// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"iothub/internal/domain/entity"
)

// ConnectionRepository persists the presence registry: one row per live
// connection. Every mutation is a single exact-match statement; deletes
// are idempotent and succeed on zero matched rows.
type ConnectionRepository interface {
	// Insert persists a new connection record.
	Insert(ctx context.Context, conn *entity.Connection) error

	// DeleteByConnectionID removes the record for one connection.
	// It is a no-op for an unknown connection id.
	DeleteByConnectionID(ctx context.Context, connectionID string) error

	// DeleteByIdentity removes every record bound to an identity value,
	// e.g. all connections of one device before it reconnects, or all
	// connections of a deleted user.
	DeleteByIdentity(ctx context.Context, kind entity.IdentityKind, value string) error

	// FindByIdentities retrieves the live records for one or many
	// identity values. Unknown values contribute nothing; the result is
	// empty, never an error, when no record matches.
	FindByIdentities(ctx context.Context, kind entity.IdentityKind, values []string) ([]*entity.Connection, error)

	// RenameIdentity rewrites every record bound to the old identity
	// value to the new one. Exact-match, idempotent.
	RenameIdentity(ctx context.Context, kind entity.IdentityKind, oldValue, newValue string) error
}
