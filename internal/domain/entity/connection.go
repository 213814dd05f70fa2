// Package entity contains the core business objects of the project.
package entity

import "time"

// Connection is the durable record of one live bidirectional channel and
// the actor it represents. Exactly one record exists per physical
// connection; it is created on a successful handshake and removed on
// disconnect. There is no TTL sweep.
type Connection struct {
	ConnectionID  string       `json:"connection_id"`  // Globally unique while the connection is live.
	ActorKind     ActorKind    `json:"actor_kind"`     // device or user.
	IdentityKind  IdentityKind `json:"identity_kind"`  // device_id or email; must match ActorKind.
	IdentityValue string       `json:"identity_value"` // The device id or email this connection is bound to.
	Disabled      bool         `json:"disabled"`       // Marks a connection excluded from fan-out.
	CreatedAt     time.Time    `json:"created_at"`     // Timestamp of the successful handshake.
}
