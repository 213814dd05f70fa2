package impl

import (
	"context"
	"testing"

	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	"iothub/internal/domain/repository"
	mockRepo "iothub/internal/mocks/repository"
	mockUC "iothub/internal/mocks/usecase"
	"iothub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type grantServiceFixture struct {
	deviceRepo *mockRepo.MockDeviceRepository
	grantRepo  *mockRepo.MockGrantRepository
	userRepo   *mockRepo.MockUserRepository
	recipients *mockUC.MockRecipientUsecase
	notifier   *mockUC.MockNotifierUsecase
	service    usecase.GrantUsecase
}

func createTestGrantService(t *testing.T) grantServiceFixture {
	fixture := grantServiceFixture{
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		grantRepo:  mockRepo.NewMockGrantRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		recipients: mockUC.NewMockRecipientUsecase(t),
		notifier:   mockUC.NewMockNotifierUsecase(t),
	}

	fixture.service = NewGrantService(GrantServiceParams{
		DeviceRepo: fixture.deviceRepo,
		GrantRepo:  fixture.grantRepo,
		UserRepo:   fixture.userRepo,
		Recipients: fixture.recipients,
		Notifier:   fixture.notifier,
		Logger:     newTestLogger(),
	})

	return fixture
}

func TestGrantService_Grant_Success(t *testing.T) {
	fixture := createTestGrantService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	fixture.userRepo.EXPECT().
		FindByEmail(ctx, "bob@example.com").
		Return(&entity.User{Email: "bob@example.com"}, nil)

	expectedGrant := &entity.AccessGrant{
		DeviceID:     "pump-1",
		GranteeEmail: "bob@example.com",
		GrantorEmail: "alice@example.com",
	}
	fixture.grantRepo.EXPECT().Create(ctx, expectedGrant).Return(nil)

	recipients := []string{"pump-1", "alice@example.com", "bob@example.com"}
	fixture.recipients.EXPECT().ForDevice(ctx, "pump-1").Return(recipients, nil)

	fixture.notifier.EXPECT().
		Notify(ctx, recipients, entity.EventGrantCreated, expectedGrant).
		Return(nil)

	grant, err := fixture.service.Grant(ctx, "alice@example.com", "pump-1", "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", grant.GranteeEmail)
}

func TestGrantService_Grant_NonOwnerForbidden(t *testing.T) {
	fixture := createTestGrantService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	grant, err := fixture.service.Grant(ctx, "bob@example.com", "pump-1", "carol@example.com")
	assert.Nil(t, grant)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}

func TestGrantService_Grant_UnknownGrantee(t *testing.T) {
	fixture := createTestGrantService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	fixture.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	grant, err := fixture.service.Grant(ctx, "alice@example.com", "pump-1", "ghost@example.com")
	assert.Nil(t, grant)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestGrantService_Grant_Duplicate(t *testing.T) {
	fixture := createTestGrantService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	fixture.userRepo.EXPECT().
		FindByEmail(ctx, "bob@example.com").
		Return(&entity.User{Email: "bob@example.com"}, nil)

	fixture.grantRepo.EXPECT().
		Create(ctx, &entity.AccessGrant{
			DeviceID:     "pump-1",
			GranteeEmail: "bob@example.com",
			GrantorEmail: "alice@example.com",
		}).
		Return(repository.ErrDuplicateGrant)

	grant, err := fixture.service.Grant(ctx, "alice@example.com", "pump-1", "bob@example.com")
	assert.Nil(t, grant)
	assert.ErrorIs(t, err, domainerrors.ErrGrantAlreadyExists)
}

func TestGrantService_Revoke_NotifiesRevokedGrantee(t *testing.T) {
	fixture := createTestGrantService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	deleted := false

	// Recipients are resolved while Bob's grant still exists, so the
	// fan-out reaches him one last time.
	fixture.recipients.EXPECT().
		ForDevice(ctx, "pump-1").
		Run(func(context.Context, string) {
			assert.False(t, deleted, "recipients resolved after the grant was deleted")
		}).
		Return([]string{"pump-1", "alice@example.com", "bob@example.com"}, nil)

	fixture.grantRepo.EXPECT().
		Delete(ctx, "pump-1", "bob@example.com").
		Run(func(context.Context, string, string) { deleted = true }).
		Return(nil)

	fixture.notifier.EXPECT().
		Notify(ctx, []string{"pump-1", "alice@example.com", "bob@example.com"}, entity.EventGrantDeleted, map[string]any{
			"deviceId":     "pump-1",
			"granteeEmail": "bob@example.com",
		}).
		Return(nil)

	err := fixture.service.Revoke(ctx, "alice@example.com", "pump-1", "bob@example.com")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestGrantService_Revoke_AbsentGrantSucceeds(t *testing.T) {
	fixture := createTestGrantService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	fixture.recipients.EXPECT().
		ForDevice(ctx, "pump-1").
		Return([]string{"pump-1", "alice@example.com"}, nil)

	fixture.grantRepo.EXPECT().
		Delete(ctx, "pump-1", "nobody@example.com").
		Return(nil)

	fixture.notifier.EXPECT().
		Notify(ctx, []string{"pump-1", "alice@example.com"}, entity.EventGrantDeleted, map[string]any{
			"deviceId":     "pump-1",
			"granteeEmail": "nobody@example.com",
		}).
		Return(nil)

	err := fixture.service.Revoke(ctx, "alice@example.com", "pump-1", "nobody@example.com")
	require.NoError(t, err)
}

func TestGrantService_List_OwnerOnly(t *testing.T) {
	fixture := createTestGrantService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	grants, err := fixture.service.List(ctx, "bob@example.com", "pump-1")
	assert.Nil(t, grants)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}

func TestGrantService_List_Success(t *testing.T) {
	fixture := createTestGrantService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	fixture.grantRepo.EXPECT().
		FindActiveByDevice(ctx, "pump-1").
		Return([]*entity.AccessGrant{
			{DeviceID: "pump-1", GranteeEmail: "bob@example.com"},
		}, nil)

	grants, err := fixture.service.List(ctx, "alice@example.com", "pump-1")
	require.NoError(t, err)
	assert.Len(t, grants, 1)
}
