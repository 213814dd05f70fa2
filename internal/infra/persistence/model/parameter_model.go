package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceParameterModel is the GORM-specific struct for the 'device_parameters' table.
type DeviceParameterModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_device_param_name"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_device_param_name"`
	Value     string    `gorm:"type:text;not null"`
	CreatedBy string    `gorm:"type:varchar(255);not null"`
	UpdatedBy string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceParameterModel) TableName() string {
	return "device_parameters"
}

// SubDeviceParameterModel is the GORM-specific struct for the 'sub_device_parameters' table.
type SubDeviceParameterModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubDeviceID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_sub_device_param_name"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_sub_device_param_name"`
	Value       string    `gorm:"type:text;not null"`
	CreatedBy   string    `gorm:"type:varchar(255);not null"`
	UpdatedBy   string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubDeviceParameterModel) TableName() string {
	return "sub_device_parameters"
}

// DeviceSettingModel is the GORM-specific struct for the 'device_settings' table.
type DeviceSettingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_device_setting_name"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_device_setting_name"`
	Value     string    `gorm:"type:text;not null"`
	CreatedBy string    `gorm:"type:varchar(255);not null"`
	UpdatedBy string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceSettingModel) TableName() string {
	return "device_settings"
}

// SystemParameterModel is the GORM-specific struct for the 'system_parameters' table.
type SystemParameterModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Value     string    `gorm:"type:text;not null"`
	CreatedBy string    `gorm:"type:varchar(255);not null"`
	UpdatedBy string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SystemParameterModel) TableName() string {
	return "system_parameters"
}
