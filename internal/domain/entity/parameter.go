// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceParameter is one named value reported by or pushed to a device,
// e.g. waterLevel=50. DeviceID, CreatedBy and UpdatedBy are denormalized
// identity copies maintained by the propagation cascade.
type DeviceParameter struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"device_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubDeviceParameter is a named value scoped to a sub-device.
type SubDeviceParameter struct {
	ID          uuid.UUID `json:"id"`
	SubDeviceID string    `json:"sub_device_id"`
	Name        string    `json:"name"`
	Value       string    `json:"value"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeviceSetting is a named configuration row for a device, distinct from
// parameters in that settings are written by users, never by the device.
type DeviceSetting struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  string    `json:"device_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SystemParameter is a process-wide named value visible to every actor.
type SystemParameter struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
