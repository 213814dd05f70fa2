// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// ActorKind distinguishes the two kinds of entities that can hold a live
// connection: physical devices and human users.
type ActorKind string

const (
	// ActorKindDevice marks a connection held by a physical device.
	ActorKindDevice ActorKind = "device"
	// ActorKindUser marks a connection held by a human user.
	ActorKindUser ActorKind = "user"
)

// String returns the string representation of the ActorKind.
func (k ActorKind) String() string {
	return string(k)
}

// IsValid checks if the ActorKind is a valid value.
func (k ActorKind) IsValid() bool {
	switch k {
	case ActorKindDevice, ActorKindUser:
		return true
	default:
		return false
	}
}

// IdentityKind names the stable string that identifies an actor across
// collections: a device id for devices, an email for users.
type IdentityKind string

const (
	// IdentityKindDeviceID identifies an actor by its device id.
	IdentityKindDeviceID IdentityKind = "device_id"
	// IdentityKindEmail identifies an actor by its email.
	IdentityKindEmail IdentityKind = "email"
)

// String returns the string representation of the IdentityKind.
func (k IdentityKind) String() string {
	return string(k)
}

// IdentityKind returns the identity kind matching an actor kind.
func (k ActorKind) IdentityKind() IdentityKind {
	if k == ActorKindDevice {
		return IdentityKindDeviceID
	}

	return IdentityKindEmail
}
