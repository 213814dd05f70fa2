package postgres

import (
	"context"
	"time"

	"iothub/internal/domain/entity"
	"iothub/internal/domain/repository"
	"iothub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Create persists a new device.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByDeviceID retrieves a device by its stable device id.
func (repo *deviceRepository) FindByDeviceID(ctx context.Context, deviceID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by device id")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindByOwner retrieves all devices owned by an email.
func (repo *deviceRepository) FindByOwner(ctx context.Context, email string) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_owner = ?", email).
		Order("created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by owner")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// Update persists description, disabled flag and updated_by.
func (repo *deviceRepository) Update(ctx context.Context, device *entity.Device) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", device.DeviceID).
		Updates(map[string]any{
			"description": device.Description,
			"is_disabled": device.IsDisabled,
			"updated_by":  device.UpdatedBy,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// StampRegistered sets registered_at, but only if it is still unset.
// The IS NULL guard makes repeated handshakes a no-op.
func (repo *deviceRepository) StampRegistered(ctx context.Context, deviceID string, at time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ? AND registered_at IS NULL", deviceID).
		Update("registered_at", at).Error; err != nil {
		return errors.Wrap(err, "failed to stamp device registration")
	}

	return nil
}

// RenameOwner rewrites device_owner from the old email to the new one.
func (repo *deviceRepository) RenameOwner(ctx context.Context, oldEmail, newEmail string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_owner = ?", oldEmail).
		Update("device_owner", newEmail).Error; err != nil {
		return errors.Wrap(err, "failed to rename device owner")
	}

	return nil
}

// RenameAuditEmails rewrites created_by and updated_by copies of an email.
// The two columns are rewritten independently so a row matching only one
// of them is still updated.
func (repo *deviceRepository) RenameAuditEmails(ctx context.Context, oldEmail, newEmail string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("created_by = ?", oldEmail).
		Update("created_by", newEmail).Error; err != nil {
		return errors.Wrap(err, "failed to rename device created_by")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("updated_by = ?", oldEmail).
		Update("updated_by", newEmail).Error; err != nil {
		return errors.Wrap(err, "failed to rename device updated_by")
	}

	return nil
}

// DeleteByDeviceID removes the device row. Idempotent.
func (repo *deviceRepository) DeleteByDeviceID(ctx context.Context, deviceID string) error {
	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&model.DeviceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		Owner:        data.DeviceOwner,
		Description:  data.Description,
		IsDisabled:   data.IsDisabled,
		RegisteredAt: data.RegisteredAt,
		CreatedBy:    data.CreatedBy,
		UpdatedBy:    data.UpdatedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		DeviceOwner:  data.Owner,
		Description:  data.Description,
		IsDisabled:   data.IsDisabled,
		RegisteredAt: data.RegisteredAt,
		CreatedBy:    data.CreatedBy,
		UpdatedBy:    data.UpdatedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
