package usecase

import "context"

// Realtime business operations behind the websocket event router. Every
// operation is addressed by the authenticated actor: get-all results go
// back to the actor's own connections, updates fan out to the device's
// resolved recipients. Disabled actors and unknown rows are rejected
// with the NoActiveEntity domain error.

// ParameterUsecase handles device parameter events.
type ParameterUsecase interface {
	// GetAll publishes the device's parameters to the requesting actor.
	GetAll(ctx context.Context, actor Actor, deviceID string) error

	// Update persists one parameter value and notifies the device's
	// recipients.
	Update(ctx context.Context, actor Actor, deviceID, name, value string) error
}

// SubDeviceUsecase handles sub-device and sub-device parameter events.
type SubDeviceUsecase interface {
	// GetAll publishes the device's sub-devices to the requesting actor.
	GetAll(ctx context.Context, actor Actor, deviceID string) error

	// GetAllParameters publishes a sub-device's parameters to the
	// requesting actor.
	GetAllParameters(ctx context.Context, actor Actor, subDeviceID string) error

	// UpdateParameter persists one sub-device parameter value and
	// notifies the parent device's recipients.
	UpdateParameter(ctx context.Context, actor Actor, subDeviceID, name, value string) error

	// Rename rewrites a sub-device's identity value, cascades over
	// every denormalized copy and notifies the parent device's
	// recipients. Owner or the parent device itself only.
	Rename(ctx context.Context, actor Actor, subDeviceID, newID string) error
}

// SettingUsecase handles device setting events.
type SettingUsecase interface {
	// GetAll publishes the device's settings to the requesting actor.
	GetAll(ctx context.Context, actor Actor, deviceID string) error
}

// SystemUsecase handles system parameter events.
type SystemUsecase interface {
	// GetAll publishes the process-wide parameters to the requesting
	// actor.
	GetAll(ctx context.Context, actor Actor) error
}
