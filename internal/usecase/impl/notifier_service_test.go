package impl

import (
	"context"
	"testing"

	"iothub/internal/domain/entity"
	mockRepo "iothub/internal/mocks/repository"
	mockSvc "iothub/internal/mocks/service"
	mockUC "iothub/internal/mocks/usecase"
	"iothub/internal/usecase"

	"github.com/stretchr/testify/require"
)

type notifierFixture struct {
	bus           *mockSvc.MockNotificationBus
	presence      *mockUC.MockPresenceUsecase
	pushTokenRepo *mockRepo.MockPushTokenRepository
	pushService   *mockSvc.MockPushService
	service       usecase.NotifierUsecase
}

func createTestNotifierService(t *testing.T, withPush bool) notifierFixture {
	fixture := notifierFixture{
		bus:           mockSvc.NewMockNotificationBus(t),
		presence:      mockUC.NewMockPresenceUsecase(t),
		pushTokenRepo: mockRepo.NewMockPushTokenRepository(t),
	}

	params := NotifierServiceParams{
		Bus:           fixture.bus,
		Presence:      fixture.presence,
		PushTokenRepo: fixture.pushTokenRepo,
		Logger:        newTestLogger(),
	}
	if withPush {
		fixture.pushService = mockSvc.NewMockPushService(t)
		params.PushService = fixture.pushService
	}
	fixture.service = NewNotifierService(params)

	return fixture
}

func TestNotifierService_Notify_NoRecipientsIsNoOp(t *testing.T) {
	fixture := createTestNotifierService(t, true)

	err := fixture.service.Notify(context.Background(), nil, entity.EventDeviceUpdated, map[string]string{"deviceId": "pump-1"})
	require.NoError(t, err)
}

func TestNotifierService_Notify_WithoutPushServiceOnlyPublishes(t *testing.T) {
	fixture := createTestNotifierService(t, false)
	ctx := context.Background()

	recipients := []string{"pump-1", "alice@example.com"}
	payload := map[string]string{"deviceId": "pump-1"}

	fixture.bus.EXPECT().Publish(recipients, entity.EventDeviceUpdated, payload).Return()

	err := fixture.service.Notify(ctx, recipients, entity.EventDeviceUpdated, payload)
	require.NoError(t, err)
}

func TestNotifierService_Notify_PushesToOfflineUsersOnly(t *testing.T) {
	fixture := createTestNotifierService(t, true)
	ctx := context.Background()

	recipients := []string{"pump-1", "alice@example.com", "bob@example.com"}
	payload := map[string]string{"deviceId": "pump-1"}

	fixture.bus.EXPECT().Publish(recipients, entity.EventDeviceParamUpdated, payload).Return()

	// Alice is online; only Bob gets the mobile fallback.
	fixture.presence.EXPECT().
		ConnectionsFor(ctx, entity.IdentityKindEmail, []string{"alice@example.com", "bob@example.com"}).
		Return([]*entity.Connection{
			{ConnectionID: "conn-1", IdentityKind: entity.IdentityKindEmail, IdentityValue: "alice@example.com"},
		}, nil)

	fixture.pushTokenRepo.EXPECT().
		FindByEmail(ctx, "bob@example.com").
		Return([]*entity.PushToken{{Email: "bob@example.com", Token: "fcm-token-1", Platform: "android"}}, nil)

	fixture.pushService.EXPECT().
		SendBatch(ctx, []string{"fcm-token-1"}, "Device update", entity.EventDeviceParamUpdated,
			map[string]string{"event": entity.EventDeviceParamUpdated}).
		Return(1, 0, nil, nil)

	err := fixture.service.Notify(ctx, recipients, entity.EventDeviceParamUpdated, payload)
	require.NoError(t, err)
}

func TestNotifierService_Notify_PrunesInvalidTokens(t *testing.T) {
	fixture := createTestNotifierService(t, true)
	ctx := context.Background()

	recipients := []string{"bob@example.com"}
	payload := map[string]string{"deviceId": "pump-1"}

	fixture.bus.EXPECT().Publish(recipients, entity.EventDeviceDeleted, payload).Return()

	fixture.presence.EXPECT().
		ConnectionsFor(ctx, entity.IdentityKindEmail, []string{"bob@example.com"}).
		Return([]*entity.Connection{}, nil)

	fixture.pushTokenRepo.EXPECT().
		FindByEmail(ctx, "bob@example.com").
		Return([]*entity.PushToken{
			{Email: "bob@example.com", Token: "stale-token", Platform: "ios"},
			{Email: "bob@example.com", Token: "live-token", Platform: "android"},
		}, nil)

	fixture.pushService.EXPECT().
		SendBatch(ctx, []string{"stale-token", "live-token"}, "Device update", entity.EventDeviceDeleted,
			map[string]string{"event": entity.EventDeviceDeleted}).
		Return(1, 1, []string{"stale-token"}, nil)

	fixture.pushTokenRepo.EXPECT().
		DeleteTokens(ctx, []string{"stale-token"}).
		Return(nil)

	err := fixture.service.Notify(ctx, recipients, entity.EventDeviceDeleted, payload)
	require.NoError(t, err)
}

func TestNotifierService_Notify_PushFailureDoesNotFailCaller(t *testing.T) {
	fixture := createTestNotifierService(t, true)
	ctx := context.Background()

	recipients := []string{"bob@example.com"}
	payload := map[string]string{"deviceId": "pump-1"}

	fixture.bus.EXPECT().Publish(recipients, entity.EventGrantDeleted, payload).Return()

	fixture.presence.EXPECT().
		ConnectionsFor(ctx, entity.IdentityKindEmail, []string{"bob@example.com"}).
		Return(nil, errTestInfra)

	err := fixture.service.Notify(ctx, recipients, entity.EventGrantDeleted, payload)
	require.NoError(t, err)
}

func TestNotifierService_Notify_DeviceOnlyRecipientsSkipFallback(t *testing.T) {
	fixture := createTestNotifierService(t, true)
	ctx := context.Background()

	recipients := []string{"pump-1"}
	payload := map[string]string{"deviceId": "pump-1"}

	fixture.bus.EXPECT().Publish(recipients, entity.EventGetAllParameters, payload).Return()

	err := fixture.service.Notify(ctx, recipients, entity.EventGetAllParameters, payload)
	require.NoError(t, err)
}
