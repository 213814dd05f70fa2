package impl

import (
	"context"
	"log/slog"

	deliverycontext "iothub/internal/delivery/context"
	"iothub/internal/domain/entity"
	"iothub/internal/domain/repository"
	"iothub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// parameterService implements the ParameterUsecase interface.
type parameterService struct {
	deviceRepo      repository.DeviceRepository
	deviceParamRepo repository.DeviceParameterRepository
	grantRepo       repository.GrantRepository
	recipients      usecase.RecipientUsecase
	notifier        usecase.NotifierUsecase
	logger          *slog.Logger
}

// ParameterServiceParams holds dependencies for ParameterService, injected by Fx.
type ParameterServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	DeviceParamRepo repository.DeviceParameterRepository
	GrantRepo       repository.GrantRepository
	Recipients      usecase.RecipientUsecase
	Notifier        usecase.NotifierUsecase
	Logger          *slog.Logger
}

// NewParameterService is the constructor for parameterService.
func NewParameterService(params ParameterServiceParams) usecase.ParameterUsecase {
	return &parameterService{
		deviceRepo:      params.DeviceRepo,
		deviceParamRepo: params.DeviceParamRepo,
		grantRepo:       params.GrantRepo,
		recipients:      params.Recipients,
		notifier:        params.Notifier,
		logger:          params.Logger,
	}
}

func (srv *parameterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAll publishes the device's parameters back to the requesting actor.
func (srv *parameterService) GetAll(ctx context.Context, actor usecase.Actor, deviceID string) error {
	device, err := resolveDeviceSubject(ctx, srv.deviceRepo, srv.grantRepo, actor, deviceID)
	if err != nil {
		return err
	}

	params, err := srv.deviceParamRepo.FindByDevice(ctx, device.DeviceID)
	if err != nil {
		return errors.Wrap(err, "failed to load device parameters")
	}

	return srv.notifier.Notify(ctx, []string{actor.Identity}, entity.EventGetAllParameters, map[string]any{
		"deviceId":   device.DeviceID,
		"parameters": params,
	})
}

// Update persists one parameter value and fans the change out to the
// device's recipients, together with an activity log entry.
func (srv *parameterService) Update(ctx context.Context, actor usecase.Actor, deviceID, name, value string) error {
	device, err := resolveDeviceSubject(ctx, srv.deviceRepo, srv.grantRepo, actor, deviceID)
	if err != nil {
		return err
	}
	if err := requireActiveDevice(device); err != nil {
		return err
	}

	previous, err := srv.deviceParamRepo.FindByName(ctx, device.DeviceID, name)
	oldValue := ""
	switch {
	case err == nil:
		oldValue = previous.Value
	case errors.Is(err, repository.ErrParameterNotFound):
		// First write of this parameter.
	default:
		return errors.Wrap(err, "failed to load previous parameter value")
	}

	param := &entity.DeviceParameter{
		DeviceID:  device.DeviceID,
		Name:      name,
		Value:     value,
		CreatedBy: actor.Identity,
		UpdatedBy: actor.Identity,
	}
	if err := srv.deviceParamRepo.Upsert(ctx, param); err != nil {
		return errors.Wrap(err, "failed to persist parameter update")
	}

	recipients, err := srv.recipients.ForDevice(ctx, device.DeviceID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve parameter update recipients")
	}

	srv.log(ctx).Info("Parameter updated",
		slog.String("deviceID", device.DeviceID),
		slog.String("name", name),
		slog.String("actor", actor.Identity))

	if err := srv.notifier.Notify(ctx, recipients, entity.EventDeviceParamUpdated, param); err != nil {
		return err
	}

	return srv.notifier.Notify(ctx, recipients, entity.EventLogCreated, map[string]any{
		"deviceId":  device.DeviceID,
		"parameter": name,
		"oldValue":  oldValue,
		"newValue":  value,
		"actor":     actor.Identity,
	})
}
