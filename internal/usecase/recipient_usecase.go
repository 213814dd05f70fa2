package usecase

import "context"

// RecipientUsecase resolves the audience of a realtime notification.
type RecipientUsecase interface {
	// ForDevice resolves the device itself, its owner and every active
	// grantee, deduplicated, preserving first-seen order.
	ForDevice(ctx context.Context, deviceID string) ([]string, error)

	// ForUser resolves a single user recipient.
	ForUser(ctx context.Context, email string) ([]string, error)
}
