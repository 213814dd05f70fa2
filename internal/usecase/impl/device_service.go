package impl

import (
	"context"
	"log/slog"

	deliverycontext "iothub/internal/delivery/context"
	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	"iothub/internal/domain/repository"
	"iothub/internal/domain/service"
	"iothub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo   repository.DeviceRepository
	grantRepo    repository.GrantRepository
	tokenService service.TokenService
	propagation  usecase.PropagationUsecase
	recipients   usecase.RecipientUsecase
	notifier     usecase.NotifierUsecase
	logger       *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo   repository.DeviceRepository
	GrantRepo    repository.GrantRepository
	TokenService service.TokenService
	Propagation  usecase.PropagationUsecase
	Recipients   usecase.RecipientUsecase
	Notifier     usecase.NotifierUsecase
	Logger       *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo:   params.DeviceRepo,
		grantRepo:    params.GrantRepo,
		tokenService: params.TokenService,
		propagation:  params.Propagation,
		recipients:   params.Recipients,
		notifier:     params.Notifier,
		logger:       params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create provisions a device owned by the calling user and issues its
// long-lived connection token. registered_at stays unset until the
// device completes its first handshake.
func (srv *deviceService) Create(ctx context.Context, input *usecase.CreateDeviceInput) (*usecase.CreateDeviceOutput, error) {
	device := &entity.Device{
		DeviceID:    input.DeviceID,
		Owner:       input.OwnerEmail,
		Description: input.Description,
		CreatedBy:   input.OwnerEmail,
		UpdatedBy:   input.OwnerEmail,
	}

	if err := srv.deviceRepo.Create(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, errors.Wrap(domainerrors.ErrDeviceAlreadyExists, "device id already provisioned")
		}

		return nil, errors.Wrap(err, "failed to create device")
	}

	token, err := srv.tokenService.GenerateDeviceToken(device.DeviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue device token")
	}

	srv.log(ctx).Info("Device provisioned",
		slog.String("deviceID", device.DeviceID),
		slog.String("owner", device.Owner))

	recipients, err := srv.recipients.ForUser(ctx, device.Owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve device creation recipients")
	}
	if err := srv.notifier.Notify(ctx, recipients, entity.EventDeviceCreated, device); err != nil {
		return nil, err
	}

	return &usecase.CreateDeviceOutput{
		Device: device,
		Token:  token,
	}, nil
}

// List retrieves the devices owned by an email.
func (srv *deviceService) List(ctx context.Context, ownerEmail string) ([]*entity.Device, error) {
	devices, err := srv.deviceRepo.FindByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// Get retrieves one device; the caller must own it or hold an active
// grant.
func (srv *deviceService) Get(ctx context.Context, actorEmail, deviceID string) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to load device")
	}

	if device.Owner != actorEmail {
		if _, err := srv.grantRepo.FindActive(ctx, deviceID, actorEmail); err != nil {
			if errors.Is(err, repository.ErrGrantNotFound) {
				return nil, domainerrors.ErrDeviceOwnershipViolation
			}

			return nil, errors.Wrap(err, "failed to check device access")
		}
	}

	return device, nil
}

// Update persists the mutable fields; owner access required.
func (srv *deviceService) Update(ctx context.Context, actorEmail, deviceID string, input *usecase.UpdateDeviceInput) (*entity.Device, error) {
	device, err := srv.requireOwnedDevice(ctx, actorEmail, deviceID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		device.Description = *input.Description
	}
	if input.IsDisabled != nil {
		device.IsDisabled = *input.IsDisabled
	}
	device.UpdatedBy = actorEmail

	if err := srv.deviceRepo.Update(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to update device")
	}

	recipients, err := srv.recipients.ForDevice(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve device update recipients")
	}
	if err := srv.notifier.Notify(ctx, recipients, entity.EventDeviceUpdated, device); err != nil {
		return nil, err
	}

	return device, nil
}

// Delete removes the device, cascades over its dependents and notifies
// the recipients resolved before the cascade ran.
func (srv *deviceService) Delete(ctx context.Context, actorEmail, deviceID string) error {
	if _, err := srv.requireOwnedDevice(ctx, actorEmail, deviceID); err != nil {
		return err
	}

	// Resolve the audience first: after the cascade the grants and
	// connections that define it are gone.
	recipients, err := srv.recipients.ForDevice(ctx, deviceID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve device delete recipients")
	}

	if err := srv.propagation.DeleteDevice(ctx, deviceID); err != nil {
		srv.log(ctx).Error("Device delete cascade reported failures",
			slog.String("deviceID", deviceID), slog.Any("error", err))

		return errors.Wrap(err, "device delete cascade incomplete")
	}

	return srv.notifier.Notify(ctx, recipients, entity.EventDeviceDeleted, map[string]any{
		"deviceId": deviceID,
	})
}

func (srv *deviceService) requireOwnedDevice(ctx context.Context, actorEmail, deviceID string) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to load device")
	}

	if device.Owner != actorEmail {
		return nil, domainerrors.ErrDeviceOwnershipViolation
	}

	return device, nil
}
