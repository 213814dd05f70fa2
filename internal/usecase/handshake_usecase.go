package usecase

import (
	"context"

	"iothub/internal/domain/entity"
)

// Actor is the authenticated identity behind a realtime connection.
// Exactly one of Device or User is set and carries the actor's public
// projection for the CONNECTED event; neither entity stores credential
// material.
type Actor struct {
	Kind     entity.ActorKind
	Identity string // device id for devices, email for users
	Disabled bool   // disabled actors connect but cannot mutate state

	Device *entity.Device
	User   *entity.User
}

// IdentityKind returns the identity namespace of the actor.
func (a Actor) IdentityKind() entity.IdentityKind {
	return a.Kind.IdentityKind()
}

// HandshakeUsecase authenticates incoming realtime connections and, on
// success, registers them in the presence registry.
type HandshakeUsecase interface {
	// Authenticate validates a raw bearer token, resolves the actor
	// behind it and registers the connection. Failures map to the
	// handshake error taxonomy in the domain errors package; none of
	// them touch the presence registry.
	Authenticate(ctx context.Context, rawToken, connectionID string) (*Actor, error)
}
