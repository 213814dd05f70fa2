package service

import (
	"github.com/google/uuid"
)

// Claims is the validated payload of a signed credential. Exactly one of
// DeviceID or UserID is set on a successful validation.
type Claims struct {
	// DeviceID is the `device` claim of a device token.
	DeviceID string
	// UserID is the `sub` claim of a user token.
	UserID uuid.UUID
}

// IsDevice reports whether the credential carried a device claim.
func (c *Claims) IsDevice() bool {
	return c.DeviceID != ""
}

// IsUser reports whether the credential carried a user claim.
func (c *Claims) IsUser() bool {
	return c.UserID != uuid.Nil
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
//
// Two signing paths exist: short-lived bearer tokens for users and
// long-lived tokens for devices, each with its own secret.
type TokenService interface {
	// GenerateUserToken creates a signed access token for a user.
	GenerateUserToken(userID uuid.UUID) (string, error)

	// GenerateDeviceToken creates a signed long-lived token for a device.
	GenerateDeviceToken(deviceID string) (string, error)

	// ValidateToken checks a token string against both signing paths and
	// returns the embedded claims.
	ValidateToken(tokenString string) (*Claims, error)
}
