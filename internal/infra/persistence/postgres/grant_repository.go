package postgres

import (
	"context"

	"iothub/internal/domain/entity"
	"iothub/internal/domain/repository"
	"iothub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// grantRepository implements the repository.GrantRepository interface.
type grantRepository struct {
	db *gorm.DB
}

// NewGrantRepository is the constructor for grantRepository.
func NewGrantRepository(db *gorm.DB) repository.GrantRepository {
	return &grantRepository{
		db: db,
	}
}

// Create persists a new grant.
func (repo *grantRepository) Create(ctx context.Context, grant *entity.AccessGrant) error {
	grantM := fromGrantDomain(grant)

	if err := repo.db.WithContext(ctx).Create(grantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateGrant
		}

		return errors.Wrap(err, "failed to create access grant")
	}

	grant.ID = grantM.ID
	grant.CreatedAt = grantM.CreatedAt

	return nil
}

// FindActiveByDevice retrieves all active grants for a device id.
func (repo *grantRepository) FindActiveByDevice(ctx context.Context, deviceID string) ([]*entity.AccessGrant, error) {
	var grantModels []*model.AccessGrantModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND disabled = ?", deviceID, false).
		Order("created_at ASC").
		Find(&grantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find grants by device")
	}

	grants := make([]*entity.AccessGrant, 0, len(grantModels))
	for _, grantM := range grantModels {
		grants = append(grants, toGrantDomain(grantM))
	}

	return grants, nil
}

// FindActive retrieves the active grant for one (device, grantee) pair.
func (repo *grantRepository) FindActive(ctx context.Context, deviceID, granteeEmail string) (*entity.AccessGrant, error) {
	var grantM model.AccessGrantModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND grantee_email = ? AND disabled = ?", deviceID, granteeEmail, false).
		First(&grantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGrantNotFound
		}

		return nil, errors.Wrap(err, "failed to find access grant")
	}

	return toGrantDomain(&grantM), nil
}

// RenameEmails rewrites grantee_email and grantor_email copies.
func (repo *grantRepository) RenameEmails(ctx context.Context, oldEmail, newEmail string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.AccessGrantModel{}).
		Where("grantee_email = ?", oldEmail).
		Update("grantee_email", newEmail).Error; err != nil {
		return errors.Wrap(err, "failed to rename grantee email")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.AccessGrantModel{}).
		Where("grantor_email = ?", oldEmail).
		Update("grantor_email", newEmail).Error; err != nil {
		return errors.Wrap(err, "failed to rename grantor email")
	}

	return nil
}

// Delete removes the grant for one (device, grantee) pair. Idempotent.
func (repo *grantRepository) Delete(ctx context.Context, deviceID, granteeEmail string) error {
	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND grantee_email = ?", deviceID, granteeEmail).
		Delete(&model.AccessGrantModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete access grant")
	}

	return nil
}

// DeleteByDevice removes every grant for a device id. Idempotent.
func (repo *grantRepository) DeleteByDevice(ctx context.Context, deviceID string) error {
	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&model.AccessGrantModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete grants by device")
	}

	return nil
}

// DeleteByGrantee removes every grant held by an email. Idempotent.
func (repo *grantRepository) DeleteByGrantee(ctx context.Context, email string) error {
	if err := repo.db.WithContext(ctx).
		Where("grantee_email = ?", email).
		Delete(&model.AccessGrantModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete grants by grantee")
	}

	return nil
}

// --- Mapper Functions ---

// toGrantDomain converts a GORM AccessGrantModel to a domain AccessGrant entity.
func toGrantDomain(data *model.AccessGrantModel) *entity.AccessGrant {
	if data == nil {
		return nil
	}

	return &entity.AccessGrant{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		GranteeEmail: data.GranteeEmail,
		GrantorEmail: data.GrantorEmail,
		Disabled:     data.Disabled,
		CreatedAt:    data.CreatedAt,
	}
}

// fromGrantDomain converts a domain AccessGrant entity to a GORM AccessGrantModel.
func fromGrantDomain(data *entity.AccessGrant) *model.AccessGrantModel {
	if data == nil {
		return nil
	}

	return &model.AccessGrantModel{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		GranteeEmail: data.GranteeEmail,
		GrantorEmail: data.GrantorEmail,
		Disabled:     data.Disabled,
		CreatedAt:    data.CreatedAt,
	}
}
