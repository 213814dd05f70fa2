package postgres

import (
	"context"

	"iothub/internal/domain/entity"
	"iothub/internal/domain/repository"
	"iothub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subDeviceRepository implements the repository.SubDeviceRepository interface.
type subDeviceRepository struct {
	db *gorm.DB
}

// NewSubDeviceRepository is the constructor for subDeviceRepository.
func NewSubDeviceRepository(db *gorm.DB) repository.SubDeviceRepository {
	return &subDeviceRepository{
		db: db,
	}
}

// Create persists a new sub-device.
func (repo *subDeviceRepository) Create(ctx context.Context, subDevice *entity.SubDevice) error {
	subDeviceM := fromSubDeviceDomain(subDevice)

	if err := repo.db.WithContext(ctx).Create(subDeviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(err, "failed to create sub-device")
	}

	subDevice.ID = subDeviceM.ID
	subDevice.CreatedAt = subDeviceM.CreatedAt
	subDevice.UpdatedAt = subDeviceM.UpdatedAt

	return nil
}

// FindBySubDeviceID retrieves a sub-device by its identity value.
func (repo *subDeviceRepository) FindBySubDeviceID(ctx context.Context, subDeviceID string) (*entity.SubDevice, error) {
	var subDeviceM model.SubDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("sub_device_id = ?", subDeviceID).
		First(&subDeviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find sub-device")
	}

	return toSubDeviceDomain(&subDeviceM), nil
}

// FindByDevice retrieves the sub-devices bound to a device id.
func (repo *subDeviceRepository) FindByDevice(ctx context.Context, deviceID string) ([]*entity.SubDevice, error) {
	var subDeviceModels []*model.SubDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("binded_to = ?", deviceID).
		Order("created_at ASC").
		Find(&subDeviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sub-devices by device")
	}

	subDevices := make([]*entity.SubDevice, 0, len(subDeviceModels))
	for _, subDeviceM := range subDeviceModels {
		subDevices = append(subDevices, toSubDeviceDomain(subDeviceM))
	}

	return subDevices, nil
}

// RenameSubDeviceID rewrites the sub-device's own identity value.
func (repo *subDeviceRepository) RenameSubDeviceID(ctx context.Context, oldID, newID string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.SubDeviceModel{}).
		Where("sub_device_id = ?", oldID).
		Update("sub_device_id", newID).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(err, "failed to rename sub-device id")
	}

	return nil
}

// RenameAuditEmails rewrites created_by and updated_by copies of an email.
func (repo *subDeviceRepository) RenameAuditEmails(ctx context.Context, oldEmail, newEmail string) error {
	return renameAuditEmails(ctx, repo.db, &model.SubDeviceModel{}, oldEmail, newEmail)
}

// DeleteBySubDeviceID removes one sub-device row. Idempotent.
func (repo *subDeviceRepository) DeleteBySubDeviceID(ctx context.Context, subDeviceID string) error {
	if err := repo.db.WithContext(ctx).
		Where("sub_device_id = ?", subDeviceID).
		Delete(&model.SubDeviceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete sub-device")
	}

	return nil
}

// DeleteByDevice removes every sub-device bound to a device id. Idempotent.
func (repo *subDeviceRepository) DeleteByDevice(ctx context.Context, deviceID string) error {
	if err := repo.db.WithContext(ctx).
		Where("binded_to = ?", deviceID).
		Delete(&model.SubDeviceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete sub-devices by device")
	}

	return nil
}

// --- Mapper Functions ---

// toSubDeviceDomain converts a GORM SubDeviceModel to a domain SubDevice entity.
func toSubDeviceDomain(data *model.SubDeviceModel) *entity.SubDevice {
	if data == nil {
		return nil
	}

	return &entity.SubDevice{
		ID:          data.ID,
		SubDeviceID: data.SubDeviceID,
		BindedTo:    data.BindedTo,
		Description: data.Description,
		CreatedBy:   data.CreatedBy,
		UpdatedBy:   data.UpdatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromSubDeviceDomain converts a domain SubDevice entity to a GORM SubDeviceModel.
func fromSubDeviceDomain(data *entity.SubDevice) *model.SubDeviceModel {
	if data == nil {
		return nil
	}

	return &model.SubDeviceModel{
		ID:          data.ID,
		SubDeviceID: data.SubDeviceID,
		BindedTo:    data.BindedTo,
		Description: data.Description,
		CreatedBy:   data.CreatedBy,
		UpdatedBy:   data.UpdatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
