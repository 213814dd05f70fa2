package usecase

import (
	"context"

	"iothub/internal/domain/entity"
)

// GrantUsecase defines device access sharing operations. Only the device
// owner may grant or revoke access.
type GrantUsecase interface {
	// Grant shares a device with another user.
	Grant(ctx context.Context, grantorEmail, deviceID, granteeEmail string) (*entity.AccessGrant, error)

	// Revoke withdraws a grantee's access. Idempotent.
	Revoke(ctx context.Context, actorEmail, deviceID, granteeEmail string) error

	// List retrieves the active grants of a device.
	List(ctx context.Context, actorEmail, deviceID string) ([]*entity.AccessGrant, error)
}
