package impl

import (
	"context"

	"iothub/internal/domain/entity"
	"iothub/internal/domain/repository"
	"iothub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// settingService implements the SettingUsecase interface.
type settingService struct {
	deviceRepo  repository.DeviceRepository
	settingRepo repository.SettingRepository
	grantRepo   repository.GrantRepository
	notifier    usecase.NotifierUsecase
}

// SettingServiceParams holds dependencies for SettingService, injected by Fx.
type SettingServiceParams struct {
	fx.In

	DeviceRepo  repository.DeviceRepository
	SettingRepo repository.SettingRepository
	GrantRepo   repository.GrantRepository
	Notifier    usecase.NotifierUsecase
}

// NewSettingService is the constructor for settingService.
func NewSettingService(params SettingServiceParams) usecase.SettingUsecase {
	return &settingService{
		deviceRepo:  params.DeviceRepo,
		settingRepo: params.SettingRepo,
		grantRepo:   params.GrantRepo,
		notifier:    params.Notifier,
	}
}

// GetAll publishes the device's settings to the requesting actor.
func (srv *settingService) GetAll(ctx context.Context, actor usecase.Actor, deviceID string) error {
	device, err := resolveDeviceSubject(ctx, srv.deviceRepo, srv.grantRepo, actor, deviceID)
	if err != nil {
		return err
	}

	settings, err := srv.settingRepo.FindByDevice(ctx, device.DeviceID)
	if err != nil {
		return errors.Wrap(err, "failed to load device settings")
	}

	return srv.notifier.Notify(ctx, []string{actor.Identity}, entity.EventGetAllSettings, map[string]any{
		"deviceId": device.DeviceID,
		"settings": settings,
	})
}
