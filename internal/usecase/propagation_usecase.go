package usecase

import "context"

// PropagationUsecase applies identity changes to every denormalized copy
// of the changed value. Steps run sequentially and are individually
// idempotent; a failed step is logged and the cascade continues, so a
// retry converges the remaining copies.
type PropagationUsecase interface {
	// RenameUserEmail rewrites every stored copy of a user's email.
	RenameUserEmail(ctx context.Context, oldEmail, newEmail string) error

	// RenameSubDevice rewrites every stored copy of a sub-device id.
	RenameSubDevice(ctx context.Context, oldID, newID string) error

	// DeleteUser removes a user together with every owned device, held
	// grant, credential, push registration and live connection.
	DeleteUser(ctx context.Context, email string) error

	// DeleteDevice removes a device together with its parameters,
	// sub-devices, settings, grants and live connections.
	DeleteDevice(ctx context.Context, deviceID string) error

	// DeleteSubDevice removes a sub-device together with its parameters.
	DeleteSubDevice(ctx context.Context, subDeviceID string) error
}
