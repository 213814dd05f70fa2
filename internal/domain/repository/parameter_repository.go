// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"iothub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrParameterNotFound is returned when a named parameter, setting or
// system parameter row does not exist.
var ErrParameterNotFound = errors.New("parameter not found")

// DeviceParameterRepository persists per-device parameter rows.
type DeviceParameterRepository interface {
	// Upsert inserts or replaces the row for (device id, name).
	Upsert(ctx context.Context, param *entity.DeviceParameter) error

	// FindByDevice retrieves all parameters for a device id.
	FindByDevice(ctx context.Context, deviceID string) ([]*entity.DeviceParameter, error)

	// FindByName retrieves one parameter of a device.
	FindByName(ctx context.Context, deviceID, name string) (*entity.DeviceParameter, error)

	// UpdateValue rewrites the value and updated_by of one parameter.
	UpdateValue(ctx context.Context, deviceID, name, value, updatedBy string) error

	// RenameAuditEmails rewrites created_by and updated_by copies of an email.
	RenameAuditEmails(ctx context.Context, oldEmail, newEmail string) error

	// DeleteByDevice removes every parameter for a device id. Idempotent.
	DeleteByDevice(ctx context.Context, deviceID string) error
}

// SubDeviceRepository persists sub-device rows.
type SubDeviceRepository interface {
	// Create persists a new sub-device.
	Create(ctx context.Context, subDevice *entity.SubDevice) error

	// FindBySubDeviceID retrieves a sub-device by its identity value.
	FindBySubDeviceID(ctx context.Context, subDeviceID string) (*entity.SubDevice, error)

	// FindByDevice retrieves the sub-devices bound to a device id.
	FindByDevice(ctx context.Context, deviceID string) ([]*entity.SubDevice, error)

	// RenameSubDeviceID rewrites the sub-device's own identity value.
	RenameSubDeviceID(ctx context.Context, oldID, newID string) error

	// RenameAuditEmails rewrites created_by and updated_by copies of an email.
	RenameAuditEmails(ctx context.Context, oldEmail, newEmail string) error

	// DeleteBySubDeviceID removes one sub-device row. Idempotent.
	DeleteBySubDeviceID(ctx context.Context, subDeviceID string) error

	// DeleteByDevice removes every sub-device bound to a device id. Idempotent.
	DeleteByDevice(ctx context.Context, deviceID string) error
}

// SubDeviceParameterRepository persists per-sub-device parameter rows.
type SubDeviceParameterRepository interface {
	// Upsert inserts or replaces the row for (sub-device id, name).
	Upsert(ctx context.Context, param *entity.SubDeviceParameter) error

	// FindBySubDevice retrieves all parameters for a sub-device id.
	FindBySubDevice(ctx context.Context, subDeviceID string) ([]*entity.SubDeviceParameter, error)

	// UpdateValue rewrites the value and updated_by of one parameter.
	UpdateValue(ctx context.Context, subDeviceID, name, value, updatedBy string) error

	// RenameSubDeviceID rewrites the denormalized sub-device id copies.
	RenameSubDeviceID(ctx context.Context, oldID, newID string) error

	// RenameAuditEmails rewrites created_by and updated_by copies of an email.
	RenameAuditEmails(ctx context.Context, oldEmail, newEmail string) error

	// DeleteBySubDevice removes every parameter for a sub-device id. Idempotent.
	DeleteBySubDevice(ctx context.Context, subDeviceID string) error
}

// SettingRepository persists per-device setting rows.
type SettingRepository interface {
	// Upsert inserts or replaces the row for (device id, name).
	Upsert(ctx context.Context, setting *entity.DeviceSetting) error

	// FindByDevice retrieves all settings for a device id.
	FindByDevice(ctx context.Context, deviceID string) ([]*entity.DeviceSetting, error)

	// RenameAuditEmails rewrites created_by and updated_by copies of an email.
	RenameAuditEmails(ctx context.Context, oldEmail, newEmail string) error

	// DeleteByDevice removes every setting for a device id. Idempotent.
	DeleteByDevice(ctx context.Context, deviceID string) error
}

// SystemParameterRepository persists process-wide parameter rows.
type SystemParameterRepository interface {
	// FindAll retrieves every system parameter.
	FindAll(ctx context.Context) ([]*entity.SystemParameter, error)

	// RenameAuditEmails rewrites created_by and updated_by copies of an email.
	RenameAuditEmails(ctx context.Context, oldEmail, newEmail string) error
}
