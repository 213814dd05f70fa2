package service

import (
	"iothub/internal/domain/entity"
)

// NotificationBus is the in-process publish/subscribe channel that
// decouples business-logic producers from the realtime transport.
//
// Delivery is at-most-once and best-effort: nothing is persisted and a
// subscriber that is not currently listening misses the message
// permanently. Messages reach subscribers in publish order; publishers
// need no external synchronization.
type NotificationBus interface {
	// Publish broadcasts a routed notification to the given live
	// connections. An empty recipient list is a no-op: no delivery, no
	// error, no default audience.
	Publish(recipients []string, event string, payload any)

	// PublishCommand broadcasts an internal control command, consumed by
	// the transport layer only (e.g. orderly shutdown).
	PublishCommand(name string)

	// Subscribe registers a consumer and returns its delivery channel.
	Subscribe() <-chan entity.Envelope

	// Unsubscribe removes a consumer registered via Subscribe and closes
	// its channel.
	Unsubscribe(ch <-chan entity.Envelope)

	// Close stops dispatching and closes all subscriber channels.
	Close()
}

// CommandShutdown asks the transport layer to close every live
// connection and stop accepting new ones.
const CommandShutdown = "shutdown"
