// Package model contains the GORM-specific structs mapping the domain
// entities to their tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name       string    `gorm:"type:varchar(255);not null"`
	IsDisabled bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AuthenticationModel is the GORM-specific struct for the 'authentications' table.
// Identifier is a denormalized email copy rewritten by the rename cascade.
type AuthenticationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider     string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_auth_provider_identifier"`
	Identifier   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_auth_provider_identifier"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthenticationModel) TableName() string {
	return "authentications"
}

// PushTokenModel is the GORM-specific struct for the 'push_tokens' table.
type PushTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_push_email_token"`
	Token     string    `gorm:"type:varchar(512);not null;uniqueIndex:idx_push_email_token"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushTokenModel) TableName() string {
	return "push_tokens"
}
