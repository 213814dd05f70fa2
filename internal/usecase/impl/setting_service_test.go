package impl

import (
	"context"
	"testing"

	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	"iothub/internal/domain/repository"
	mockRepo "iothub/internal/mocks/repository"
	mockUC "iothub/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingService_GetAll_PublishesToRequestingActor(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockSettingRepo := mockRepo.NewMockSettingRepository(t)
	mockGrantRepo := mockRepo.NewMockGrantRepository(t)
	mockNotifier := mockUC.NewMockNotifierUsecase(t)

	service := NewSettingService(SettingServiceParams{
		DeviceRepo:  mockDeviceRepo,
		SettingRepo: mockSettingRepo,
		GrantRepo:   mockGrantRepo,
		Notifier:    mockNotifier,
	})

	ctx := context.Background()

	mockDeviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	settings := []*entity.DeviceSetting{{DeviceID: "pump-1", Name: "alertLevel", Value: "high"}}
	mockSettingRepo.EXPECT().FindByDevice(ctx, "pump-1").Return(settings, nil)

	mockNotifier.EXPECT().
		Notify(ctx, []string{"alice@example.com"}, entity.EventGetAllSettings, map[string]any{
			"deviceId": "pump-1",
			"settings": settings,
		}).
		Return(nil)

	err := service.GetAll(ctx, userActor("alice@example.com"), "pump-1")
	require.NoError(t, err)
}

func TestSettingService_GetAll_UngrantedUserForbidden(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockSettingRepo := mockRepo.NewMockSettingRepository(t)
	mockGrantRepo := mockRepo.NewMockGrantRepository(t)
	mockNotifier := mockUC.NewMockNotifierUsecase(t)

	service := NewSettingService(SettingServiceParams{
		DeviceRepo:  mockDeviceRepo,
		SettingRepo: mockSettingRepo,
		GrantRepo:   mockGrantRepo,
		Notifier:    mockNotifier,
	})

	ctx := context.Background()

	mockDeviceRepo.EXPECT().
		FindByDeviceID(ctx, "pump-1").
		Return(&entity.Device{DeviceID: "pump-1", Owner: "alice@example.com"}, nil)

	mockGrantRepo.EXPECT().
		FindActive(ctx, "pump-1", "mallory@example.com").
		Return(nil, repository.ErrGrantNotFound)

	err := service.GetAll(ctx, userActor("mallory@example.com"), "pump-1")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}
