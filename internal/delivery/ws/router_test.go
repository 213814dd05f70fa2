package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	mockUC "iothub/internal/mocks/usecase"
	"iothub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	parameters *mockUC.MockParameterUsecase
	subDevices *mockUC.MockSubDeviceUsecase
	settings   *mockUC.MockSettingUsecase
	system     *mockUC.MockSystemUsecase
	router     *Router
}

func createTestRouter(t *testing.T) routerFixture {
	fixture := routerFixture{
		parameters: mockUC.NewMockParameterUsecase(t),
		subDevices: mockUC.NewMockSubDeviceUsecase(t),
		settings:   mockUC.NewMockSettingUsecase(t),
		system:     mockUC.NewMockSystemUsecase(t),
	}

	fixture.router = NewRouter(RouterParams{
		Parameters: fixture.parameters,
		SubDevices: fixture.subDevices,
		Settings:   fixture.settings,
		System:     fixture.system,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fixture
}

func testActor() usecase.Actor {
	return usecase.Actor{Kind: entity.ActorKindUser, Identity: "alice@example.com"}
}

func TestRouter_Dispatch_ParameterUpdate(t *testing.T) {
	fixture := createTestRouter(t)
	ctx := context.Background()
	actor := testActor()

	fixture.parameters.EXPECT().
		Update(ctx, actor, "pump-1", "waterLevel", "15").
		Return(nil)

	err := fixture.router.Dispatch(ctx, actor, EventParameterUpdate,
		json.RawMessage(`{"deviceId":"pump-1","name":"waterLevel","value":"15"}`))
	require.NoError(t, err)
}

func TestRouter_Dispatch_ParameterUpdate_MissingNameRejected(t *testing.T) {
	fixture := createTestRouter(t)

	err := fixture.router.Dispatch(context.Background(), testActor(), EventParameterUpdate,
		json.RawMessage(`{"deviceId":"pump-1","value":"15"}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRouter_Dispatch_MalformedPayloadRejected(t *testing.T) {
	fixture := createTestRouter(t)

	err := fixture.router.Dispatch(context.Background(), testActor(), EventParameterGetAll,
		json.RawMessage(`"not an object"`))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRouter_Dispatch_UnknownEventRejected(t *testing.T) {
	fixture := createTestRouter(t)

	err := fixture.router.Dispatch(context.Background(), testActor(), "reboot-the-universe", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRouter_Dispatch_ParameterGetAll_EmptyPayloadAllowed(t *testing.T) {
	fixture := createTestRouter(t)
	ctx := context.Background()

	// Device actors omit the device id; their own identity is the subject.
	actor := usecase.Actor{Kind: entity.ActorKindDevice, Identity: "pump-1"}

	fixture.parameters.EXPECT().GetAll(ctx, actor, "").Return(nil)

	err := fixture.router.Dispatch(ctx, actor, EventParameterGetAll, nil)
	require.NoError(t, err)
}

func TestRouter_Dispatch_SubDeviceParameterUpdate(t *testing.T) {
	fixture := createTestRouter(t)
	ctx := context.Background()
	actor := testActor()

	fixture.subDevices.EXPECT().
		UpdateParameter(ctx, actor, "sensor-1", "offset", "3").
		Return(nil)

	err := fixture.router.Dispatch(ctx, actor, EventSubDeviceParameterUpdate,
		json.RawMessage(`{"subDeviceId":"sensor-1","name":"offset","value":"3"}`))
	require.NoError(t, err)
}

func TestRouter_Dispatch_SubDeviceParameterGetAll_MissingIDRejected(t *testing.T) {
	fixture := createTestRouter(t)

	err := fixture.router.Dispatch(context.Background(), testActor(), EventSubDeviceParameterGetAll,
		json.RawMessage(`{}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRouter_Dispatch_SystemParameterGetAll(t *testing.T) {
	fixture := createTestRouter(t)
	ctx := context.Background()
	actor := testActor()

	fixture.system.EXPECT().GetAll(ctx, actor).Return(nil)

	err := fixture.router.Dispatch(ctx, actor, EventSystemParameterGetAll, nil)
	require.NoError(t, err)
}

func TestRouter_Dispatch_DeviceSettingGetAll(t *testing.T) {
	fixture := createTestRouter(t)
	ctx := context.Background()
	actor := testActor()

	fixture.settings.EXPECT().GetAll(ctx, actor, "pump-1").Return(nil)

	err := fixture.router.Dispatch(ctx, actor, EventDeviceSettingGetAll,
		json.RawMessage(`{"deviceId":"pump-1"}`))
	require.NoError(t, err)
}

func TestRouter_Dispatch_HandlerErrorPropagates(t *testing.T) {
	fixture := createTestRouter(t)
	ctx := context.Background()
	actor := testActor()

	fixture.parameters.EXPECT().
		Update(ctx, actor, "pump-1", "mode", "auto").
		Return(domainerrors.ErrNoActiveEntity)

	err := fixture.router.Dispatch(ctx, actor, EventParameterUpdate,
		json.RawMessage(`{"deviceId":"pump-1","name":"mode","value":"auto"}`))

	assert.ErrorIs(t, err, domainerrors.ErrNoActiveEntity)
}
