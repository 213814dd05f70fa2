package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// DeviceOwner, CreatedBy and UpdatedBy are denormalized email copies
// rewritten by the rename cascade.
type DeviceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	DeviceOwner  string    `gorm:"type:varchar(255);not null;index"`
	Description  string    `gorm:"type:text"`
	IsDisabled   bool      `gorm:"not null;default:false"`
	RegisteredAt *time.Time
	CreatedBy    string `gorm:"type:varchar(255);not null"`
	UpdatedBy    string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// SubDeviceModel is the GORM-specific struct for the 'sub_devices' table.
// BindedTo is a denormalized parent device id.
type SubDeviceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubDeviceID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	BindedTo    string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	CreatedBy   string    `gorm:"type:varchar(255);not null"`
	UpdatedBy   string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubDeviceModel) TableName() string {
	return "sub_devices"
}

// AccessGrantModel is the GORM-specific struct for the 'access_grants' table.
type AccessGrantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_grant_device_grantee"`
	GranteeEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_grant_device_grantee;index"`
	GrantorEmail string    `gorm:"type:varchar(255);not null"`
	Disabled     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessGrantModel) TableName() string {
	return "access_grants"
}
