package impl

import (
	"context"
	"testing"

	"iothub/internal/domain/entity"
	mockRepo "iothub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPresenceService(t *testing.T) (*mockRepo.MockConnectionRepository, *mockRepo.MockDeviceRepository, *presenceService) {
	mockConnRepo := mockRepo.NewMockConnectionRepository(t)
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)

	service := NewPresenceService(PresenceServiceParams{
		ConnectionRepo: mockConnRepo,
		DeviceRepo:     mockDeviceRepo,
		Logger:         newTestLogger(),
	})

	return mockConnRepo, mockDeviceRepo, service.(*presenceService)
}

func TestPresenceService_RegisterDevice_SupersedesPreviousConnection(t *testing.T) {
	mockConnRepo, mockDeviceRepo, service := createTestPresenceService(t)
	ctx := context.Background()

	// Any previous connection for the same device id goes first.
	mockConnRepo.EXPECT().
		DeleteByIdentity(ctx, entity.IdentityKindDeviceID, "pump-1").
		Return(nil)

	mockConnRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Connection")).
		Run(func(_ context.Context, conn *entity.Connection) {
			assert.Equal(t, "conn-2", conn.ConnectionID)
			assert.Equal(t, entity.ActorKindDevice, conn.ActorKind)
			assert.Equal(t, entity.IdentityKindDeviceID, conn.IdentityKind)
			assert.Equal(t, "pump-1", conn.IdentityValue)
		}).
		Return(nil)

	mockDeviceRepo.EXPECT().
		StampRegistered(ctx, "pump-1", mock.AnythingOfType("time.Time")).
		Return(nil)

	err := service.RegisterDevice(ctx, "conn-2", "pump-1", false)
	require.NoError(t, err)
}

func TestPresenceService_RegisterUser_AllowsMultipleLogins(t *testing.T) {
	mockConnRepo, _, service := createTestPresenceService(t)
	ctx := context.Background()

	// Insert-only: no supersede for user connections.
	mockConnRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Connection")).
		Return(nil).
		Twice()

	require.NoError(t, service.RegisterUser(ctx, "conn-1", "alice@example.com", false))
	require.NoError(t, service.RegisterUser(ctx, "conn-2", "alice@example.com", false))
}

func TestPresenceService_Unregister_UnknownConnectionIsNoOp(t *testing.T) {
	mockConnRepo, _, service := createTestPresenceService(t)
	ctx := context.Background()

	mockConnRepo.EXPECT().
		DeleteByConnectionID(ctx, "never-registered").
		Return(nil)

	err := service.Unregister(ctx, "never-registered")
	require.NoError(t, err)
}

func TestPresenceService_ConnectionsFor_EmptyResult(t *testing.T) {
	mockConnRepo, _, service := createTestPresenceService(t)
	ctx := context.Background()

	mockConnRepo.EXPECT().
		FindByIdentities(ctx, entity.IdentityKindEmail, []string{"ghost@example.com"}).
		Return([]*entity.Connection{}, nil)

	conns, err := service.ConnectionsFor(ctx, entity.IdentityKindEmail, []string{"ghost@example.com"})
	require.NoError(t, err)
	assert.Empty(t, conns)
}
