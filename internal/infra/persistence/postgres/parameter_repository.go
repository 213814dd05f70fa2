package postgres

import (
	"context"

	"iothub/internal/domain/entity"
	"iothub/internal/domain/repository"
	"iothub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceParameterRepository implements repository.DeviceParameterRepository.
type deviceParameterRepository struct {
	db *gorm.DB
}

// NewDeviceParameterRepository is the constructor for deviceParameterRepository.
func NewDeviceParameterRepository(db *gorm.DB) repository.DeviceParameterRepository {
	return &deviceParameterRepository{
		db: db,
	}
}

// Upsert inserts or replaces the row for (device id, name).
func (repo *deviceParameterRepository) Upsert(ctx context.Context, param *entity.DeviceParameter) error {
	paramM := fromDeviceParameterDomain(param)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
		}).
		Create(paramM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert device parameter")
	}

	param.ID = paramM.ID
	param.CreatedAt = paramM.CreatedAt
	param.UpdatedAt = paramM.UpdatedAt

	return nil
}

// FindByDevice retrieves all parameters for a device id.
func (repo *deviceParameterRepository) FindByDevice(ctx context.Context, deviceID string) ([]*entity.DeviceParameter, error) {
	var paramModels []*model.DeviceParameterModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("name ASC").
		Find(&paramModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device parameters")
	}

	params := make([]*entity.DeviceParameter, 0, len(paramModels))
	for _, paramM := range paramModels {
		params = append(params, toDeviceParameterDomain(paramM))
	}

	return params, nil
}

// FindByName retrieves one parameter of a device.
func (repo *deviceParameterRepository) FindByName(ctx context.Context, deviceID, name string) (*entity.DeviceParameter, error) {
	var paramM model.DeviceParameterModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND name = ?", deviceID, name).
		First(&paramM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrParameterNotFound
		}

		return nil, errors.Wrap(err, "failed to find device parameter")
	}

	return toDeviceParameterDomain(&paramM), nil
}

// UpdateValue rewrites the value and updated_by of one parameter.
func (repo *deviceParameterRepository) UpdateValue(ctx context.Context, deviceID, name, value, updatedBy string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceParameterModel{}).
		Where("device_id = ? AND name = ?", deviceID, name).
		Updates(map[string]any{
			"value":      value,
			"updated_by": updatedBy,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device parameter value")
	}

	if result.RowsAffected == 0 {
		return repository.ErrParameterNotFound
	}

	return nil
}

// RenameAuditEmails rewrites created_by and updated_by copies of an email.
func (repo *deviceParameterRepository) RenameAuditEmails(ctx context.Context, oldEmail, newEmail string) error {
	return renameAuditEmails(ctx, repo.db, &model.DeviceParameterModel{}, oldEmail, newEmail)
}

// DeleteByDevice removes every parameter for a device id. Idempotent.
func (repo *deviceParameterRepository) DeleteByDevice(ctx context.Context, deviceID string) error {
	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&model.DeviceParameterModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete device parameters")
	}

	return nil
}

// renameAuditEmails rewrites the created_by and updated_by columns shared
// by every parameter-shaped table. The two columns are updated
// independently so rows matching only one of them still change.
func renameAuditEmails(ctx context.Context, db *gorm.DB, tableModel any, oldEmail, newEmail string) error {
	if err := db.WithContext(ctx).
		Model(tableModel).
		Where("created_by = ?", oldEmail).
		Update("created_by", newEmail).Error; err != nil {
		return errors.Wrap(err, "failed to rename created_by")
	}

	if err := db.WithContext(ctx).
		Model(tableModel).
		Where("updated_by = ?", oldEmail).
		Update("updated_by", newEmail).Error; err != nil {
		return errors.Wrap(err, "failed to rename updated_by")
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceParameterDomain(data *model.DeviceParameterModel) *entity.DeviceParameter {
	if data == nil {
		return nil
	}

	return &entity.DeviceParameter{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Name:      data.Name,
		Value:     data.Value,
		CreatedBy: data.CreatedBy,
		UpdatedBy: data.UpdatedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceParameterDomain(data *entity.DeviceParameter) *model.DeviceParameterModel {
	if data == nil {
		return nil
	}

	return &model.DeviceParameterModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Name:      data.Name,
		Value:     data.Value,
		CreatedBy: data.CreatedBy,
		UpdatedBy: data.UpdatedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// subDeviceParameterRepository implements repository.SubDeviceParameterRepository.
type subDeviceParameterRepository struct {
	db *gorm.DB
}

// NewSubDeviceParameterRepository is the constructor for subDeviceParameterRepository.
func NewSubDeviceParameterRepository(db *gorm.DB) repository.SubDeviceParameterRepository {
	return &subDeviceParameterRepository{
		db: db,
	}
}

// Upsert inserts or replaces the row for (sub-device id, name).
func (repo *subDeviceParameterRepository) Upsert(ctx context.Context, param *entity.SubDeviceParameter) error {
	paramM := fromSubDeviceParameterDomain(param)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sub_device_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
		}).
		Create(paramM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert sub-device parameter")
	}

	param.ID = paramM.ID
	param.CreatedAt = paramM.CreatedAt
	param.UpdatedAt = paramM.UpdatedAt

	return nil
}

// FindBySubDevice retrieves all parameters for a sub-device id.
func (repo *subDeviceParameterRepository) FindBySubDevice(ctx context.Context, subDeviceID string) ([]*entity.SubDeviceParameter, error) {
	var paramModels []*model.SubDeviceParameterModel

	if err := repo.db.WithContext(ctx).
		Where("sub_device_id = ?", subDeviceID).
		Order("name ASC").
		Find(&paramModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sub-device parameters")
	}

	params := make([]*entity.SubDeviceParameter, 0, len(paramModels))
	for _, paramM := range paramModels {
		params = append(params, toSubDeviceParameterDomain(paramM))
	}

	return params, nil
}

// UpdateValue rewrites the value and updated_by of one parameter.
func (repo *subDeviceParameterRepository) UpdateValue(ctx context.Context, subDeviceID, name, value, updatedBy string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubDeviceParameterModel{}).
		Where("sub_device_id = ? AND name = ?", subDeviceID, name).
		Updates(map[string]any{
			"value":      value,
			"updated_by": updatedBy,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update sub-device parameter value")
	}

	if result.RowsAffected == 0 {
		return repository.ErrParameterNotFound
	}

	return nil
}

// RenameSubDeviceID rewrites the denormalized sub-device id copies.
func (repo *subDeviceParameterRepository) RenameSubDeviceID(ctx context.Context, oldID, newID string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.SubDeviceParameterModel{}).
		Where("sub_device_id = ?", oldID).
		Update("sub_device_id", newID).Error; err != nil {
		return errors.Wrap(err, "failed to rename sub-device id on parameters")
	}

	return nil
}

// RenameAuditEmails rewrites created_by and updated_by copies of an email.
func (repo *subDeviceParameterRepository) RenameAuditEmails(ctx context.Context, oldEmail, newEmail string) error {
	return renameAuditEmails(ctx, repo.db, &model.SubDeviceParameterModel{}, oldEmail, newEmail)
}

// DeleteBySubDevice removes every parameter for a sub-device id. Idempotent.
func (repo *subDeviceParameterRepository) DeleteBySubDevice(ctx context.Context, subDeviceID string) error {
	if err := repo.db.WithContext(ctx).
		Where("sub_device_id = ?", subDeviceID).
		Delete(&model.SubDeviceParameterModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete sub-device parameters")
	}

	return nil
}

// --- Mapper Functions ---

func toSubDeviceParameterDomain(data *model.SubDeviceParameterModel) *entity.SubDeviceParameter {
	if data == nil {
		return nil
	}

	return &entity.SubDeviceParameter{
		ID:          data.ID,
		SubDeviceID: data.SubDeviceID,
		Name:        data.Name,
		Value:       data.Value,
		CreatedBy:   data.CreatedBy,
		UpdatedBy:   data.UpdatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromSubDeviceParameterDomain(data *entity.SubDeviceParameter) *model.SubDeviceParameterModel {
	if data == nil {
		return nil
	}

	return &model.SubDeviceParameterModel{
		ID:          data.ID,
		SubDeviceID: data.SubDeviceID,
		Name:        data.Name,
		Value:       data.Value,
		CreatedBy:   data.CreatedBy,
		UpdatedBy:   data.UpdatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// settingRepository implements repository.SettingRepository.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// Upsert inserts or replaces the row for (device id, name).
func (repo *settingRepository) Upsert(ctx context.Context, setting *entity.DeviceSetting) error {
	settingM := fromDeviceSettingDomain(setting)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
		}).
		Create(settingM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert device setting")
	}

	setting.ID = settingM.ID
	setting.CreatedAt = settingM.CreatedAt
	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}

// FindByDevice retrieves all settings for a device id.
func (repo *settingRepository) FindByDevice(ctx context.Context, deviceID string) ([]*entity.DeviceSetting, error) {
	var settingModels []*model.DeviceSettingModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("name ASC").
		Find(&settingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device settings")
	}

	settings := make([]*entity.DeviceSetting, 0, len(settingModels))
	for _, settingM := range settingModels {
		settings = append(settings, toDeviceSettingDomain(settingM))
	}

	return settings, nil
}

// RenameAuditEmails rewrites created_by and updated_by copies of an email.
func (repo *settingRepository) RenameAuditEmails(ctx context.Context, oldEmail, newEmail string) error {
	return renameAuditEmails(ctx, repo.db, &model.DeviceSettingModel{}, oldEmail, newEmail)
}

// DeleteByDevice removes every setting for a device id. Idempotent.
func (repo *settingRepository) DeleteByDevice(ctx context.Context, deviceID string) error {
	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&model.DeviceSettingModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete device settings")
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceSettingDomain(data *model.DeviceSettingModel) *entity.DeviceSetting {
	if data == nil {
		return nil
	}

	return &entity.DeviceSetting{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Name:      data.Name,
		Value:     data.Value,
		CreatedBy: data.CreatedBy,
		UpdatedBy: data.UpdatedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceSettingDomain(data *entity.DeviceSetting) *model.DeviceSettingModel {
	if data == nil {
		return nil
	}

	return &model.DeviceSettingModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Name:      data.Name,
		Value:     data.Value,
		CreatedBy: data.CreatedBy,
		UpdatedBy: data.UpdatedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// systemParameterRepository implements repository.SystemParameterRepository.
type systemParameterRepository struct {
	db *gorm.DB
}

// NewSystemParameterRepository is the constructor for systemParameterRepository.
func NewSystemParameterRepository(db *gorm.DB) repository.SystemParameterRepository {
	return &systemParameterRepository{
		db: db,
	}
}

// FindAll retrieves every system parameter.
func (repo *systemParameterRepository) FindAll(ctx context.Context) ([]*entity.SystemParameter, error) {
	var paramModels []*model.SystemParameterModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&paramModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find system parameters")
	}

	params := make([]*entity.SystemParameter, 0, len(paramModels))
	for _, paramM := range paramModels {
		params = append(params, toSystemParameterDomain(paramM))
	}

	return params, nil
}

// RenameAuditEmails rewrites created_by and updated_by copies of an email.
func (repo *systemParameterRepository) RenameAuditEmails(ctx context.Context, oldEmail, newEmail string) error {
	return renameAuditEmails(ctx, repo.db, &model.SystemParameterModel{}, oldEmail, newEmail)
}

// --- Mapper Functions ---

func toSystemParameterDomain(data *model.SystemParameterModel) *entity.SystemParameter {
	if data == nil {
		return nil
	}

	return &entity.SystemParameter{
		ID:        data.ID,
		Name:      data.Name,
		Value:     data.Value,
		CreatedBy: data.CreatedBy,
		UpdatedBy: data.UpdatedBy,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
