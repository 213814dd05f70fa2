package usecase

import "context"

// NotifierUsecase publishes realtime notifications to the in-process bus
// and falls back to mobile push for user recipients with no live
// connection.
type NotifierUsecase interface {
	// Notify publishes one event to the given recipients. Recipients are
	// identity values: device ids or emails. An empty recipient list is
	// a no-op.
	Notify(ctx context.Context, recipients []string, event string, payload any) error
}
