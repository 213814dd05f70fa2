// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"iothub/config"
	"iothub/internal/domain/service"
)

const (
	defaultAccessTTL = time.Minute * 15
	// Device tokens are long-lived credentials provisioned once per device.
	defaultDeviceTTL = time.Hour * 24 * 365
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It signs short-lived user tokens with the access secret and long-lived
// device tokens with the device secret.
type jwtService struct {
	accessSecret string
	deviceSecret string
	accessTTL    time.Duration
	deviceTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Device == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTTL
	deviceTTL := defaultDeviceTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.DeviceTokenTTL > 0 {
			deviceTTL = cfg.Auth.DeviceTokenTTL
		}
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		deviceSecret: cfg.SecretKey.Device,
		accessTTL:    accessTTL,
		deviceTTL:    deviceTTL,
	}, nil
}

// GenerateUserToken creates a signed access token carrying the user's id
// in the `sub` claim.
func (s *jwtService) GenerateUserToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}

// GenerateDeviceToken creates a signed long-lived token carrying the
// device id in the `device` claim.
func (s *jwtService) GenerateDeviceToken(deviceID string) (string, error) {
	claims := jwt.MapClaims{
		"device": deviceID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(s.deviceTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.deviceSecret))
}

// ValidateToken checks the validity of a token string. The signing
// secret is selected by which claim the payload carries; the claim set
// is only trusted after signature verification succeeds.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return nil, jwt.ErrTokenInvalidClaims
		}
		if _, isDevice := claims["device"]; isDevice {
			return []byte(s.deviceSecret), nil
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	out := &service.Claims{}

	if deviceID, ok := mapClaims["device"].(string); ok && deviceID != "" {
		out.DeviceID = deviceID

		return out, nil
	}

	if sub, ok := mapClaims["sub"].(string); ok && sub != "" {
		userID, err := uuid.Parse(sub)
		if err != nil {
			return nil, jwt.ErrTokenInvalidClaims
		}
		out.UserID = userID

		return out, nil
	}

	// Valid signature, but the payload names no actor. The caller maps
	// this to its unrecognized-claims failure.
	return out, nil
}
