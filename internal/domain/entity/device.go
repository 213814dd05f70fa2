// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is a physical device actor. DeviceID is the stable, immutable
// identity value copied into child collections (parameters, sub-devices,
// settings, grants, live connections); Owner is a denormalized copy of
// the owning user's email and is rewritten when that email changes.
type Device struct {
	ID           uuid.UUID  `json:"id"`            // Row identifier.
	DeviceID     string     `json:"device_id"`     // Stable identity value, immutable once issued.
	Owner        string     `json:"owner"`         // Denormalized email of the owning user.
	Description  string     `json:"description"`   // Free-form description.
	IsDisabled   bool       `json:"is_disabled"`   // Disabled devices can connect but not mutate state.
	RegisteredAt *time.Time `json:"registered_at"` // Set exactly once, on the first successful handshake.
	CreatedBy    string     `json:"created_by"`    // Denormalized email of the creating user.
	UpdatedBy    string     `json:"updated_by"`    // Denormalized email of the last editor.
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SubDevice is a child device bound to a parent Device. SubDeviceID is
// an identity value of its own, but unlike DeviceID it is renameable,
// which makes it a second source of rename cascades.
type SubDevice struct {
	ID          uuid.UUID `json:"id"`
	SubDeviceID string    `json:"sub_device_id"` // Identity value; renameable.
	BindedTo    string    `json:"binded_to"`     // Denormalized parent device id.
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccessGrant permits a user other than the owner to interact with a
// device and to receive its notifications. At most one active grant
// exists per (device id, grantee email) pair.
type AccessGrant struct {
	ID           uuid.UUID `json:"id"`
	DeviceID     string    `json:"device_id"`     // Denormalized device id.
	GranteeEmail string    `json:"grantee_email"` // Denormalized email of the user being granted access.
	GrantorEmail string    `json:"grantor_email"` // Denormalized email of the user who granted it.
	Disabled     bool      `json:"disabled"`
	CreatedAt    time.Time `json:"created_at"`
}
