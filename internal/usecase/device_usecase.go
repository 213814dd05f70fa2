package usecase

import (
	"context"

	"iothub/internal/domain/entity"
)

// CreateDeviceInput holds the data for provisioning a device.
type CreateDeviceInput struct {
	DeviceID    string
	Description string
	OwnerEmail  string
}

// CreateDeviceOutput carries the provisioned device and its credential.
type CreateDeviceOutput struct {
	Device *entity.Device
	Token  string // long-lived device JWT
}

// UpdateDeviceInput holds the mutable device fields. Nil means unchanged.
type UpdateDeviceInput struct {
	Description *string
	IsDisabled  *bool
}

// DeviceUsecase defines device provisioning and lifecycle operations.
type DeviceUsecase interface {
	// Create provisions a device owned by the calling user and issues
	// its connection token.
	Create(ctx context.Context, input *CreateDeviceInput) (*CreateDeviceOutput, error)

	// List retrieves the devices owned by an email.
	List(ctx context.Context, ownerEmail string) ([]*entity.Device, error)

	// Get retrieves one device, owner or grantee access required.
	Get(ctx context.Context, actorEmail, deviceID string) (*entity.Device, error)

	// Update persists the mutable fields, owner access required.
	Update(ctx context.Context, actorEmail, deviceID string, input *UpdateDeviceInput) (*entity.Device, error)

	// Delete removes the device, cascades over its dependents and
	// notifies former recipients.
	Delete(ctx context.Context, actorEmail, deviceID string) error
}
