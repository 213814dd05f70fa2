// Package delivery defines the contract every transport server
// implements, so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP, WebSocket). Serve
// blocks until the server stops; shutdown is driven by fx lifecycle
// hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
