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

type subDeviceFixture struct {
	deviceRepo         *mockRepo.MockDeviceRepository
	subDeviceRepo      *mockRepo.MockSubDeviceRepository
	subDeviceParamRepo *mockRepo.MockSubDeviceParameterRepository
	grantRepo          *mockRepo.MockGrantRepository
	recipients         *mockUC.MockRecipientUsecase
	notifier           *mockUC.MockNotifierUsecase
	propagation        *mockUC.MockPropagationUsecase
	service            usecase.SubDeviceUsecase
}

func createTestSubDeviceService(t *testing.T) subDeviceFixture {
	fixture := subDeviceFixture{
		deviceRepo:         mockRepo.NewMockDeviceRepository(t),
		subDeviceRepo:      mockRepo.NewMockSubDeviceRepository(t),
		subDeviceParamRepo: mockRepo.NewMockSubDeviceParameterRepository(t),
		grantRepo:          mockRepo.NewMockGrantRepository(t),
		recipients:         mockUC.NewMockRecipientUsecase(t),
		notifier:           mockUC.NewMockNotifierUsecase(t),
		propagation:        mockUC.NewMockPropagationUsecase(t),
	}

	fixture.service = NewSubDeviceService(SubDeviceServiceParams{
		DeviceRepo:         fixture.deviceRepo,
		SubDeviceRepo:      fixture.subDeviceRepo,
		SubDeviceParamRepo: fixture.subDeviceParamRepo,
		GrantRepo:          fixture.grantRepo,
		Recipients:         fixture.recipients,
		Notifier:           fixture.notifier,
		Propagation:        fixture.propagation,
		Logger:             newTestLogger(),
	})

	return fixture
}

func TestSubDeviceService_GetAll_PublishesToRequestingActor(t *testing.T) {
	fixture := createTestSubDeviceService(t)
	ctx := context.Background()

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	subDevices := []*entity.SubDevice{{SubDeviceID: "sensor-1", BindedTo: "pump-1"}}
	fixture.subDeviceRepo.EXPECT().FindByDevice(ctx, "pump-1").Return(subDevices, nil)

	fixture.notifier.EXPECT().
		Notify(ctx, []string{"alice@example.com"}, entity.EventGetAllSubDevices, map[string]any{
			"deviceId":   "pump-1",
			"subDevices": subDevices,
		}).
		Return(nil)

	err := fixture.service.GetAll(ctx, userActor("alice@example.com"), "pump-1")
	require.NoError(t, err)
}

func TestSubDeviceService_GetAllParameters(t *testing.T) {
	fixture := createTestSubDeviceService(t)
	ctx := context.Background()

	fixture.subDeviceRepo.EXPECT().
		FindBySubDeviceID(ctx, "sensor-1").
		Return(&entity.SubDevice{SubDeviceID: "sensor-1", BindedTo: "pump-1"}, nil)

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	params := []*entity.SubDeviceParameter{{SubDeviceID: "sensor-1", Name: "offset", Value: "3"}}
	fixture.subDeviceParamRepo.EXPECT().FindBySubDevice(ctx, "sensor-1").Return(params, nil)

	fixture.notifier.EXPECT().
		Notify(ctx, []string{"pump-1"}, entity.EventGetAllSubDeviceParameters, map[string]any{
			"subDeviceId": "sensor-1",
			"parameters":  params,
		}).
		Return(nil)

	err := fixture.service.GetAllParameters(ctx, deviceActor("pump-1"), "sensor-1")
	require.NoError(t, err)
}

func TestSubDeviceService_GetAllParameters_ForeignDeviceActorRejected(t *testing.T) {
	fixture := createTestSubDeviceService(t)
	ctx := context.Background()

	fixture.subDeviceRepo.EXPECT().
		FindBySubDeviceID(ctx, "sensor-1").
		Return(&entity.SubDevice{SubDeviceID: "sensor-1", BindedTo: "pump-1"}, nil)

	err := fixture.service.GetAllParameters(ctx, deviceActor("pump-2"), "sensor-1")
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveEntity)
}

func TestSubDeviceService_UpdateParameter_FansOutToParentRecipients(t *testing.T) {
	fixture := createTestSubDeviceService(t)
	ctx := context.Background()

	fixture.subDeviceRepo.EXPECT().
		FindBySubDeviceID(ctx, "sensor-1").
		Return(&entity.SubDevice{SubDeviceID: "sensor-1", BindedTo: "pump-1"}, nil)

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	expectedParam := &entity.SubDeviceParameter{
		SubDeviceID: "sensor-1",
		Name:        "offset",
		Value:       "5",
		CreatedBy:   "pump-1",
		UpdatedBy:   "pump-1",
	}
	fixture.subDeviceParamRepo.EXPECT().Upsert(ctx, expectedParam).Return(nil)

	recipients := []string{"pump-1", "alice@example.com"}
	fixture.recipients.EXPECT().ForDevice(ctx, "pump-1").Return(recipients, nil)

	fixture.notifier.EXPECT().
		Notify(ctx, recipients, entity.EventSubDeviceParamUpdated, expectedParam).
		Return(nil)

	err := fixture.service.UpdateParameter(ctx, deviceActor("pump-1"), "sensor-1", "offset", "5")
	require.NoError(t, err)
}

func TestSubDeviceService_UpdateParameter_DisabledParentRejected(t *testing.T) {
	fixture := createTestSubDeviceService(t)
	ctx := context.Background()

	fixture.subDeviceRepo.EXPECT().
		FindBySubDeviceID(ctx, "sensor-1").
		Return(&entity.SubDevice{SubDeviceID: "sensor-1", BindedTo: "pump-1"}, nil)

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com", IsDisabled: true}, nil)

	err := fixture.service.UpdateParameter(ctx, userActor("alice@example.com"), "sensor-1", "offset", "5")
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveEntity)
}

func TestSubDeviceService_Rename_PropagatesAndNotifiesRecipients(t *testing.T) {
	fixture := createTestSubDeviceService(t)
	ctx := context.Background()

	fixture.subDeviceRepo.EXPECT().
		FindBySubDeviceID(ctx, "sensor-1").
		Return(&entity.SubDevice{SubDeviceID: "sensor-1", BindedTo: "pump-1"}, nil)

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	recipients := []string{"pump-1", "alice@example.com"}
	fixture.recipients.EXPECT().ForDevice(ctx, "pump-1").Return(recipients, nil)

	fixture.propagation.EXPECT().RenameSubDevice(ctx, "sensor-1", "sensor-2").Return(nil)

	fixture.notifier.EXPECT().
		Notify(ctx, recipients, entity.EventSubDeviceUpdated, map[string]any{
			"deviceId":       "pump-1",
			"oldSubDeviceId": "sensor-1",
			"newSubDeviceId": "sensor-2",
		}).
		Return(nil)

	err := fixture.service.Rename(ctx, userActor("alice@example.com"), "sensor-1", "sensor-2")
	require.NoError(t, err)
}

func TestSubDeviceService_Rename_DeviceActorRenamesOwnSubDevice(t *testing.T) {
	fixture := createTestSubDeviceService(t)
	ctx := context.Background()

	fixture.subDeviceRepo.EXPECT().
		FindBySubDeviceID(ctx, "sensor-1").
		Return(&entity.SubDevice{SubDeviceID: "sensor-1", BindedTo: "pump-1"}, nil)

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	recipients := []string{"pump-1", "alice@example.com"}
	fixture.recipients.EXPECT().ForDevice(ctx, "pump-1").Return(recipients, nil)

	fixture.propagation.EXPECT().RenameSubDevice(ctx, "sensor-1", "sensor-2").Return(nil)

	fixture.notifier.EXPECT().
		Notify(ctx, recipients, entity.EventSubDeviceUpdated, map[string]any{
			"deviceId":       "pump-1",
			"oldSubDeviceId": "sensor-1",
			"newSubDeviceId": "sensor-2",
		}).
		Return(nil)

	err := fixture.service.Rename(ctx, deviceActor("pump-1"), "sensor-1", "sensor-2")
	require.NoError(t, err)
}

func TestSubDeviceService_Rename_GranteeRejected(t *testing.T) {
	fixture := createTestSubDeviceService(t)
	ctx := context.Background()

	fixture.subDeviceRepo.EXPECT().
		FindBySubDeviceID(ctx, "sensor-1").
		Return(&entity.SubDevice{SubDeviceID: "sensor-1", BindedTo: "pump-1"}, nil)

	fixture.deviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	fixture.grantRepo.EXPECT().
		FindActive(ctx, "pump-1", "bob@example.com").
		Return(&entity.AccessGrant{DeviceID: "pump-1", GranteeEmail: "bob@example.com"}, nil)

	err := fixture.service.Rename(ctx, userActor("bob@example.com"), "sensor-1", "sensor-2")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}

func TestSubDeviceService_Rename_UnknownSubDeviceRejected(t *testing.T) {
	fixture := createTestSubDeviceService(t)
	ctx := context.Background()

	fixture.subDeviceRepo.EXPECT().
		FindBySubDeviceID(ctx, "ghost").
		Return(nil, repository.ErrDeviceNotFound)

	err := fixture.service.Rename(ctx, userActor("alice@example.com"), "ghost", "sensor-2")
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveEntity)
}

func TestSubDeviceService_UpdateParameter_UnknownSubDeviceRejected(t *testing.T) {
	fixture := createTestSubDeviceService(t)
	ctx := context.Background()

	fixture.subDeviceRepo.EXPECT().
		FindBySubDeviceID(ctx, "ghost").
		Return(nil, repository.ErrDeviceNotFound)

	err := fixture.service.UpdateParameter(ctx, userActor("alice@example.com"), "ghost", "offset", "5")
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveEntity)
}
