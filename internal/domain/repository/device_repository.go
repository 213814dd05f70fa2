// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"iothub/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Create persists a new device.
	Create(ctx context.Context, device *entity.Device) error

	// FindByDeviceID retrieves a device by its stable device id.
	FindByDeviceID(ctx context.Context, deviceID string) (*entity.Device, error)

	// FindByOwner retrieves all devices owned by an email.
	FindByOwner(ctx context.Context, email string) ([]*entity.Device, error)

	// Update persists description, disabled flag and updated_by.
	Update(ctx context.Context, device *entity.Device) error

	// StampRegistered sets registered_at, but only if it is still unset.
	// Calling it again for the same device is a no-op.
	StampRegistered(ctx context.Context, deviceID string, at time.Time) error

	// RenameOwner rewrites device_owner from the old email to the new one.
	RenameOwner(ctx context.Context, oldEmail, newEmail string) error

	// RenameAuditEmails rewrites created_by and updated_by copies of an email.
	RenameAuditEmails(ctx context.Context, oldEmail, newEmail string) error

	// DeleteByDeviceID removes the device row. Idempotent.
	DeleteByDeviceID(ctx context.Context, deviceID string) error
}
