package impl

import (
	"context"
	"log/slog"

	deliverycontext "iothub/internal/delivery/context"
	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	"iothub/internal/domain/repository"
	"iothub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// subDeviceService implements the SubDeviceUsecase interface.
type subDeviceService struct {
	deviceRepo         repository.DeviceRepository
	subDeviceRepo      repository.SubDeviceRepository
	subDeviceParamRepo repository.SubDeviceParameterRepository
	grantRepo          repository.GrantRepository
	recipients         usecase.RecipientUsecase
	notifier           usecase.NotifierUsecase
	propagation        usecase.PropagationUsecase
	logger             *slog.Logger
}

// SubDeviceServiceParams holds dependencies for SubDeviceService, injected by Fx.
type SubDeviceServiceParams struct {
	fx.In

	DeviceRepo         repository.DeviceRepository
	SubDeviceRepo      repository.SubDeviceRepository
	SubDeviceParamRepo repository.SubDeviceParameterRepository
	GrantRepo          repository.GrantRepository
	Recipients         usecase.RecipientUsecase
	Notifier           usecase.NotifierUsecase
	Propagation        usecase.PropagationUsecase
	Logger             *slog.Logger
}

// NewSubDeviceService is the constructor for subDeviceService.
func NewSubDeviceService(params SubDeviceServiceParams) usecase.SubDeviceUsecase {
	return &subDeviceService{
		deviceRepo:         params.DeviceRepo,
		subDeviceRepo:      params.SubDeviceRepo,
		subDeviceParamRepo: params.SubDeviceParamRepo,
		grantRepo:          params.GrantRepo,
		recipients:         params.Recipients,
		notifier:           params.Notifier,
		propagation:        params.Propagation,
		logger:             params.Logger,
	}
}

func (srv *subDeviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAll publishes the device's sub-devices to the requesting actor.
func (srv *subDeviceService) GetAll(ctx context.Context, actor usecase.Actor, deviceID string) error {
	device, err := resolveDeviceSubject(ctx, srv.deviceRepo, srv.grantRepo, actor, deviceID)
	if err != nil {
		return err
	}

	subDevices, err := srv.subDeviceRepo.FindByDevice(ctx, device.DeviceID)
	if err != nil {
		return errors.Wrap(err, "failed to load sub-devices")
	}

	return srv.notifier.Notify(ctx, []string{actor.Identity}, entity.EventGetAllSubDevices, map[string]any{
		"deviceId":   device.DeviceID,
		"subDevices": subDevices,
	})
}

// GetAllParameters publishes a sub-device's parameters to the requesting
// actor.
func (srv *subDeviceService) GetAllParameters(ctx context.Context, actor usecase.Actor, subDeviceID string) error {
	subDevice, err := srv.resolveSubDevice(ctx, actor, subDeviceID)
	if err != nil {
		return err
	}

	params, err := srv.subDeviceParamRepo.FindBySubDevice(ctx, subDevice.SubDeviceID)
	if err != nil {
		return errors.Wrap(err, "failed to load sub-device parameters")
	}

	return srv.notifier.Notify(ctx, []string{actor.Identity}, entity.EventGetAllSubDeviceParameters, map[string]any{
		"subDeviceId": subDevice.SubDeviceID,
		"parameters":  params,
	})
}

// UpdateParameter persists one sub-device parameter value and fans the
// change out to the parent device's recipients.
func (srv *subDeviceService) UpdateParameter(ctx context.Context, actor usecase.Actor, subDeviceID, name, value string) error {
	subDevice, err := srv.resolveSubDevice(ctx, actor, subDeviceID)
	if err != nil {
		return err
	}

	device, err := resolveDeviceSubject(ctx, srv.deviceRepo, srv.grantRepo, actor, subDevice.BindedTo)
	if err != nil {
		return err
	}
	if err := requireActiveDevice(device); err != nil {
		return err
	}

	param := &entity.SubDeviceParameter{
		SubDeviceID: subDevice.SubDeviceID,
		Name:        name,
		Value:       value,
		CreatedBy:   actor.Identity,
		UpdatedBy:   actor.Identity,
	}
	if err := srv.subDeviceParamRepo.Upsert(ctx, param); err != nil {
		return errors.Wrap(err, "failed to persist sub-device parameter update")
	}

	recipients, err := srv.recipients.ForDevice(ctx, device.DeviceID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve sub-device update recipients")
	}

	srv.log(ctx).Info("Sub-device parameter updated",
		slog.String("subDeviceID", subDevice.SubDeviceID),
		slog.String("name", name),
		slog.String("actor", actor.Identity))

	return srv.notifier.Notify(ctx, recipients, entity.EventSubDeviceParamUpdated, param)
}

// Rename rewrites the sub-device identity value across every collection
// that copies it and fans the change out to the parent device's
// recipients. Renames are structural: grantees may read and write
// parameter values but only the owner, or the parent device itself, may
// change an identity value.
func (srv *subDeviceService) Rename(ctx context.Context, actor usecase.Actor, subDeviceID, newID string) error {
	subDevice, err := srv.resolveSubDevice(ctx, actor, subDeviceID)
	if err != nil {
		return err
	}

	device, err := resolveDeviceSubject(ctx, srv.deviceRepo, srv.grantRepo, actor, subDevice.BindedTo)
	if err != nil {
		return err
	}
	if err := requireActiveDevice(device); err != nil {
		return err
	}

	if actor.Kind == entity.ActorKindUser && device.Owner != actor.Identity {
		return domainerrors.ErrDeviceOwnershipViolation
	}

	recipients, err := srv.recipients.ForDevice(ctx, device.DeviceID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve sub-device rename recipients")
	}

	if err := srv.propagation.RenameSubDevice(ctx, subDevice.SubDeviceID, newID); err != nil {
		return errors.Wrap(err, "failed to propagate sub-device rename")
	}

	srv.log(ctx).Info("Sub-device renamed",
		slog.String("old", subDevice.SubDeviceID),
		slog.String("new", newID),
		slog.String("actor", actor.Identity))

	return srv.notifier.Notify(ctx, recipients, entity.EventSubDeviceUpdated, map[string]any{
		"deviceId":       device.DeviceID,
		"oldSubDeviceId": subDevice.SubDeviceID,
		"newSubDeviceId": newID,
	})
}

// resolveSubDevice loads the sub-device and authorizes the actor against
// its parent device.
func (srv *subDeviceService) resolveSubDevice(ctx context.Context, actor usecase.Actor, subDeviceID string) (*entity.SubDevice, error) {
	subDevice, err := srv.subDeviceRepo.FindBySubDeviceID(ctx, subDeviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrNoActiveEntity
		}

		return nil, errors.Wrap(err, "failed to resolve sub-device")
	}

	// A device actor may only touch sub-devices bound to itself.
	if actor.Kind == entity.ActorKindDevice && subDevice.BindedTo != actor.Identity {
		return nil, domainerrors.ErrNoActiveEntity
	}

	if _, err := resolveDeviceSubject(ctx, srv.deviceRepo, srv.grantRepo, actor, subDevice.BindedTo); err != nil {
		return nil, err
	}

	return subDevice, nil
}
