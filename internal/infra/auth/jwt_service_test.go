package auth

import (
	"testing"
	"time"

	"iothub/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Device = "test_device_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateUserToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateUserToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsUser())
	assert.False(t, claims.IsDevice())
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_GenerateAndValidateDeviceToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token, err := jwtService.GenerateDeviceToken("greenhouse-01")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsDevice())
	assert.False(t, claims.IsUser())
	assert.Equal(t, "greenhouse-01", claims.DeviceID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken("not-a-token")
	assert.Error(t, err)

	// A token signed with a different secret must be rejected.
	otherCfg := newTestConfig()
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := otherService.GenerateUserToken(uuid.New())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: -time.Minute}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := jwtService.GenerateUserToken(uuid.New())
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
