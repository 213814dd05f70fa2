package impl

import (
	"context"
	"testing"

	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	"iothub/internal/domain/repository"
	mockRepo "iothub/internal/mocks/repository"
	mockSvc "iothub/internal/mocks/service"
	mockUC "iothub/internal/mocks/usecase"
	"iothub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixture struct {
	deviceRepo   *mockRepo.MockDeviceRepository
	grantRepo    *mockRepo.MockGrantRepository
	tokenService *mockSvc.MockTokenService
	propagation  *mockUC.MockPropagationUsecase
	recipients   *mockUC.MockRecipientUsecase
	notifier     *mockUC.MockNotifierUsecase
	service      usecase.DeviceUsecase
}

func createTestDeviceService(t *testing.T) deviceServiceFixture {
	fixture := deviceServiceFixture{
		deviceRepo:   mockRepo.NewMockDeviceRepository(t),
		grantRepo:    mockRepo.NewMockGrantRepository(t),
		tokenService: mockSvc.NewMockTokenService(t),
		propagation:  mockUC.NewMockPropagationUsecase(t),
		recipients:   mockUC.NewMockRecipientUsecase(t),
		notifier:     mockUC.NewMockNotifierUsecase(t),
	}

	fixture.service = NewDeviceService(DeviceServiceParams{
		DeviceRepo:   fixture.deviceRepo,
		GrantRepo:    fixture.grantRepo,
		TokenService: fixture.tokenService,
		Propagation:  fixture.propagation,
		Recipients:   fixture.recipients,
		Notifier:     fixture.notifier,
		Logger:       newTestLogger(),
	})

	return fixture
}

func TestDeviceService_Create_IssuesTokenAndNotifies(t *testing.T) {
	fixture := createTestDeviceService(t)
	ctx := context.Background()

	expectedDevice := &entity.Device{
		DeviceID:    "pump-1",
		Owner:       "alice@example.com",
		Description: "Basement pump",
		CreatedBy:   "alice@example.com",
		UpdatedBy:   "alice@example.com",
	}
	fixture.deviceRepo.EXPECT().Create(ctx, expectedDevice).Return(nil)

	fixture.tokenService.EXPECT().GenerateDeviceToken("pump-1").Return("device-token", nil)

	fixture.recipients.EXPECT().
		ForUser(ctx, "alice@example.com").
		Return([]string{"alice@example.com"}, nil)

	fixture.notifier.EXPECT().
		Notify(ctx, []string{"alice@example.com"}, entity.EventDeviceCreated, expectedDevice).
		Return(nil)

	output, err := fixture.service.Create(ctx, &usecase.CreateDeviceInput{
		DeviceID:    "pump-1",
		Description: "Basement pump",
		OwnerEmail:  "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "device-token", output.Token)
	assert.Equal(t, "pump-1", output.Device.DeviceID)
	assert.Nil(t, output.Device.RegisteredAt)
}

func TestDeviceService_Create_DuplicateDeviceID(t *testing.T) {
	fixture := createTestDeviceService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		Create(ctx, &entity.Device{
			DeviceID:  "pump-1",
			Owner:     "alice@example.com",
			CreatedBy: "alice@example.com",
			UpdatedBy: "alice@example.com",
		}).
		Return(repository.ErrDuplicateDevice)

	output, err := fixture.service.Create(ctx, &usecase.CreateDeviceInput{
		DeviceID:   "pump-1",
		OwnerEmail: "alice@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceAlreadyExists)
}

func TestDeviceService_Get_OwnerAllowed(t *testing.T) {
	fixture := createTestDeviceService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	device, err := fixture.service.Get(ctx, "alice@example.com", "pump-1")
	require.NoError(t, err)
	assert.Equal(t, "pump-1", device.DeviceID)
}

func TestDeviceService_Get_GranteeAllowed(t *testing.T) {
	fixture := createTestDeviceService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	fixture.grantRepo.EXPECT().
		FindActive(ctx, "pump-1", "bob@example.com").
		Return(&entity.AccessGrant{DeviceID: "pump-1", GranteeEmail: "bob@example.com"}, nil)

	device, err := fixture.service.Get(ctx, "bob@example.com", "pump-1")
	require.NoError(t, err)
	assert.Equal(t, "pump-1", device.DeviceID)
}

func TestDeviceService_Get_StrangerForbidden(t *testing.T) {
	fixture := createTestDeviceService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	fixture.grantRepo.EXPECT().
		FindActive(ctx, "pump-1", "mallory@example.com").
		Return(nil, repository.ErrGrantNotFound)

	device, err := fixture.service.Get(ctx, "mallory@example.com", "pump-1")
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}

func TestDeviceService_Update_PartialFields(t *testing.T) {
	fixture := createTestDeviceService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{
			DeviceID:    "pump-1",
			Owner:       "alice@example.com",
			Description: "Old description",
			UpdatedBy:   "alice@example.com",
		}, nil)

	disabled := true
	expectedDevice := &entity.Device{
		DeviceID:    "pump-1",
		Owner:       "alice@example.com",
		Description: "Old description",
		IsDisabled:  true,
		UpdatedBy:   "alice@example.com",
	}
	fixture.deviceRepo.EXPECT().Update(ctx, expectedDevice).Return(nil)

	recipients := []string{"pump-1", "alice@example.com"}
	fixture.recipients.EXPECT().ForDevice(ctx, "pump-1").Return(recipients, nil)

	fixture.notifier.EXPECT().
		Notify(ctx, recipients, entity.EventDeviceUpdated, expectedDevice).
		Return(nil)

	device, err := fixture.service.Update(ctx, "alice@example.com", "pump-1", &usecase.UpdateDeviceInput{
		IsDisabled: &disabled,
	})

	require.NoError(t, err)
	assert.True(t, device.IsDisabled)
	assert.Equal(t, "Old description", device.Description)
}

func TestDeviceService_Update_NonOwnerForbidden(t *testing.T) {
	fixture := createTestDeviceService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	description := "hijacked"
	device, err := fixture.service.Update(ctx, "bob@example.com", "pump-1", &usecase.UpdateDeviceInput{
		Description: &description,
	})

	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}

func TestDeviceService_Delete_ResolvesRecipientsBeforeCascade(t *testing.T) {
	fixture := createTestDeviceService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	cascadeRan := false

	// The audience must be captured while grants still exist.
	fixture.recipients.EXPECT().
		ForDevice(ctx, "pump-1").
		Run(func(context.Context, string) {
			assert.False(t, cascadeRan, "recipients resolved after the cascade destroyed them")
		}).
		Return([]string{"pump-1", "alice@example.com", "bob@example.com"}, nil)

	fixture.propagation.EXPECT().
		DeleteDevice(ctx, "pump-1").
		Run(func(context.Context, string) { cascadeRan = true }).
		Return(nil)

	fixture.notifier.EXPECT().
		Notify(ctx, []string{"pump-1", "alice@example.com", "bob@example.com"}, entity.EventDeviceDeleted, map[string]any{
			"deviceId": "pump-1",
		}).
		Return(nil)

	err := fixture.service.Delete(ctx, "alice@example.com", "pump-1")
	require.NoError(t, err)
	assert.True(t, cascadeRan)
}

func TestDeviceService_Delete_CascadeFailureSurfaces(t *testing.T) {
	fixture := createTestDeviceService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	fixture.recipients.EXPECT().
		ForDevice(ctx, "pump-1").
		Return([]string{"pump-1", "alice@example.com"}, nil)

	fixture.propagation.EXPECT().
		DeleteDevice(ctx, "pump-1").
		Return(errTestInfra)

	err := fixture.service.Delete(ctx, "alice@example.com", "pump-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errTestInfra)
}

func TestDeviceService_List(t *testing.T) {
	fixture := createTestDeviceService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByOwner(ctx, "alice@example.com").
		Return([]*entity.Device{
			{DeviceID: "pump-1", Owner: "alice@example.com"},
			{DeviceID: "pump-2", Owner: "alice@example.com"},
		}, nil)

	devices, err := fixture.service.List(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, devices, 2)
}
