package service

import (
	"context"
)

// PushService defines the interface for push notification delivery, used
// as a fallback when a recipient user holds no live connection.
type PushService interface {
	// SendBatch sends a push notification to multiple registration tokens.
	// Returns success count, failure count, list of invalid tokens, and error.
	SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
