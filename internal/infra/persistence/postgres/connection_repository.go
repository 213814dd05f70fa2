// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"iothub/internal/domain/entity"
	"iothub/internal/domain/repository"
	"iothub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// connectionRepository implements the repository.ConnectionRepository interface.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{
		db: db,
	}
}

// Insert persists a new connection record.
func (repo *connectionRepository) Insert(ctx context.Context, conn *entity.Connection) error {
	connM := fromConnectionDomain(conn)

	if err := repo.db.WithContext(ctx).Create(connM).Error; err != nil {
		return errors.Wrap(err, "failed to insert connection")
	}

	conn.CreatedAt = connM.CreatedAt

	return nil
}

// DeleteByConnectionID removes the record for one connection.
// Zero matched rows is not an error: unregister is idempotent.
func (repo *connectionRepository) DeleteByConnectionID(ctx context.Context, connectionID string) error {
	if err := repo.db.WithContext(ctx).
		Where("connection_id = ?", connectionID).
		Delete(&model.ConnectionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete connection")
	}

	return nil
}

// DeleteByIdentity removes every record bound to an identity value.
func (repo *connectionRepository) DeleteByIdentity(ctx context.Context, kind entity.IdentityKind, value string) error {
	if err := repo.db.WithContext(ctx).
		Where("identity_kind = ? AND identity_value = ?", kind.String(), value).
		Delete(&model.ConnectionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete connections by identity")
	}

	return nil
}

// FindByIdentities retrieves live records for one or many identity values.
func (repo *connectionRepository) FindByIdentities(ctx context.Context, kind entity.IdentityKind, values []string) ([]*entity.Connection, error) {
	if len(values) == 0 {
		return []*entity.Connection{}, nil
	}

	var connModels []*model.ConnectionModel

	if err := repo.db.WithContext(ctx).
		Where("identity_kind = ? AND identity_value IN ? AND disabled = ?", kind.String(), values, false).
		Order("created_at ASC").
		Find(&connModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find connections by identities")
	}

	conns := make([]*entity.Connection, 0, len(connModels))
	for _, connM := range connModels {
		conns = append(conns, toConnectionDomain(connM))
	}

	return conns, nil
}

// RenameIdentity rewrites every record bound to the old identity value.
func (repo *connectionRepository) RenameIdentity(ctx context.Context, kind entity.IdentityKind, oldValue, newValue string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Where("identity_kind = ? AND identity_value = ?", kind.String(), oldValue).
		Update("identity_value", newValue).Error; err != nil {
		return errors.Wrap(err, "failed to rename connection identity")
	}

	return nil
}

// --- Mapper Functions ---

// toConnectionDomain converts a GORM ConnectionModel to a domain Connection entity.
func toConnectionDomain(data *model.ConnectionModel) *entity.Connection {
	if data == nil {
		return nil
	}

	return &entity.Connection{
		ConnectionID:  data.ConnectionID,
		ActorKind:     entity.ActorKind(data.ActorKind),
		IdentityKind:  entity.IdentityKind(data.IdentityKind),
		IdentityValue: data.IdentityValue,
		Disabled:      data.Disabled,
		CreatedAt:     data.CreatedAt,
	}
}

// fromConnectionDomain converts a domain Connection entity to a GORM ConnectionModel.
func fromConnectionDomain(data *entity.Connection) *model.ConnectionModel {
	if data == nil {
		return nil
	}

	return &model.ConnectionModel{
		ConnectionID:  data.ConnectionID,
		ActorKind:     data.ActorKind.String(),
		IdentityKind:  data.IdentityKind.String(),
		IdentityValue: data.IdentityValue,
		Disabled:      data.Disabled,
		CreatedAt:     data.CreatedAt,
	}
}
