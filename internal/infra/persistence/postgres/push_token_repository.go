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

// pushTokenRepository implements the repository.PushTokenRepository interface.
type pushTokenRepository struct {
	db *gorm.DB
}

// NewPushTokenRepository is the constructor for pushTokenRepository.
func NewPushTokenRepository(db *gorm.DB) repository.PushTokenRepository {
	return &pushTokenRepository{
		db: db,
	}
}

// Upsert inserts or refreshes the row for (email, token).
func (repo *pushTokenRepository) Upsert(ctx context.Context, token *entity.PushToken) error {
	tokenM := fromPushTokenDomain(token)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}, {Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"platform", "updated_at"}),
		}).
		Create(tokenM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert push token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// FindByEmail retrieves all registrations owned by an email.
func (repo *pushTokenRepository) FindByEmail(ctx context.Context, email string) ([]*entity.PushToken, error) {
	var tokenModels []*model.PushTokenModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find push tokens by email")
	}

	tokens := make([]*entity.PushToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toPushTokenDomain(tokenM))
	}

	return tokens, nil
}

// RenameEmail rewrites the denormalized owner email.
func (repo *pushTokenRepository) RenameEmail(ctx context.Context, oldEmail, newEmail string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.PushTokenModel{}).
		Where("email = ?", oldEmail).
		Update("email", newEmail).Error; err != nil {
		return errors.Wrap(err, "failed to rename push token email")
	}

	return nil
}

// DeleteByEmail removes every registration for an email. Idempotent.
func (repo *pushTokenRepository) DeleteByEmail(ctx context.Context, email string) error {
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.PushTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete push tokens by email")
	}

	return nil
}

// DeleteTokens prunes registrations reported as invalid. Idempotent.
func (repo *pushTokenRepository) DeleteTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("token IN ?", tokens).
		Delete(&model.PushTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete push tokens")
	}

	return nil
}

// --- Mapper Functions ---

// toPushTokenDomain converts a GORM PushTokenModel to a domain PushToken entity.
func toPushTokenDomain(data *model.PushTokenModel) *entity.PushToken {
	if data == nil {
		return nil
	}

	return &entity.PushToken{
		ID:        data.ID,
		Email:     data.Email,
		Token:     data.Token,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromPushTokenDomain converts a domain PushToken entity to a GORM PushTokenModel.
func fromPushTokenDomain(data *entity.PushToken) *model.PushTokenModel {
	if data == nil {
		return nil
	}

	return &model.PushTokenModel{
		ID:        data.ID,
		Email:     data.Email,
		Token:     data.Token,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
