package usecase

import (
	"context"

	"iothub/internal/domain/entity"
)

// PresenceUsecase maintains the registry of live realtime connections.
type PresenceUsecase interface {
	// RegisterDevice records a live device connection. A device holds at
	// most one active connection: any previous registration for the same
	// device id is superseded. The first successful registration also
	// stamps the device's registration time.
	RegisterDevice(ctx context.Context, connectionID, deviceID string, disabled bool) error

	// RegisterUser records a live user connection. Users may hold several
	// concurrent connections, one per login.
	RegisterUser(ctx context.Context, connectionID, email string, disabled bool) error

	// Unregister removes the record for one connection. Unknown
	// connection ids are a no-op.
	Unregister(ctx context.Context, connectionID string) error

	// ConnectionsFor resolves identity values to their live connections.
	ConnectionsFor(ctx context.Context, kind entity.IdentityKind, values []string) ([]*entity.Connection, error)
}
