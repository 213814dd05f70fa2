package impl

import (
	"context"
	stderrors "errors"
	"log/slog"

	deliverycontext "iothub/internal/delivery/context"
	"iothub/internal/domain/entity"
	"iothub/internal/domain/repository"
	"iothub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// propagationService implements the PropagationUsecase interface.
//
// Cascades are deliberately non-transactional: each step is a
// single-statement idempotent rewrite or delete, so a failed or
// interrupted cascade leaves the system in a state a retry converges
// from. A step failure is logged and the cascade continues; the joined
// error is returned for caller-side logging only.
type propagationService struct {
	deviceRepo         repository.DeviceRepository
	deviceParamRepo    repository.DeviceParameterRepository
	subDeviceRepo      repository.SubDeviceRepository
	subDeviceParamRepo repository.SubDeviceParameterRepository
	settingRepo        repository.SettingRepository
	systemParamRepo    repository.SystemParameterRepository
	grantRepo          repository.GrantRepository
	connectionRepo     repository.ConnectionRepository
	authRepo           repository.AuthRepository
	userRepo           repository.UserRepository
	pushTokenRepo      repository.PushTokenRepository
	logger             *slog.Logger
}

// PropagationServiceParams holds dependencies for PropagationService, injected by Fx.
type PropagationServiceParams struct {
	fx.In

	DeviceRepo         repository.DeviceRepository
	DeviceParamRepo    repository.DeviceParameterRepository
	SubDeviceRepo      repository.SubDeviceRepository
	SubDeviceParamRepo repository.SubDeviceParameterRepository
	SettingRepo        repository.SettingRepository
	SystemParamRepo    repository.SystemParameterRepository
	GrantRepo          repository.GrantRepository
	ConnectionRepo     repository.ConnectionRepository
	AuthRepo           repository.AuthRepository
	UserRepo           repository.UserRepository
	PushTokenRepo      repository.PushTokenRepository
	Logger             *slog.Logger
}

// NewPropagationService is the constructor for propagationService.
func NewPropagationService(params PropagationServiceParams) usecase.PropagationUsecase {
	return &propagationService{
		deviceRepo:         params.DeviceRepo,
		deviceParamRepo:    params.DeviceParamRepo,
		subDeviceRepo:      params.SubDeviceRepo,
		subDeviceParamRepo: params.SubDeviceParamRepo,
		settingRepo:        params.SettingRepo,
		systemParamRepo:    params.SystemParamRepo,
		grantRepo:          params.GrantRepo,
		connectionRepo:     params.ConnectionRepo,
		authRepo:           params.AuthRepo,
		userRepo:           params.UserRepo,
		pushTokenRepo:      params.PushTokenRepo,
		logger:             params.Logger,
	}
}

func (srv *propagationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// step runs one cascade step, logging a failure without aborting the
// cascade. The returned error is collected into the joined result.
func (srv *propagationService) step(ctx context.Context, joined *error, name string, fn func() error) {
	if err := fn(); err != nil {
		srv.log(ctx).Error("Propagation step failed",
			slog.String("step", name),
			slog.Any("error", err))
		*joined = stderrors.Join(*joined, errors.Wrap(err, name))
	}
}

// RenameUserEmail rewrites every denormalized copy of a user's email,
// one collection per step, in a fixed order.
func (srv *propagationService) RenameUserEmail(ctx context.Context, oldEmail, newEmail string) error {
	srv.log(ctx).Info("Propagating email rename",
		slog.String("old", oldEmail),
		slog.String("new", newEmail))

	var joined error
	srv.step(ctx, &joined, "rename device owner", func() error {
		return srv.deviceRepo.RenameOwner(ctx, oldEmail, newEmail)
	})
	srv.step(ctx, &joined, "rename device audit emails", func() error {
		return srv.deviceRepo.RenameAuditEmails(ctx, oldEmail, newEmail)
	})
	srv.step(ctx, &joined, "rename device parameter audit emails", func() error {
		return srv.deviceParamRepo.RenameAuditEmails(ctx, oldEmail, newEmail)
	})
	srv.step(ctx, &joined, "rename sub-device audit emails", func() error {
		return srv.subDeviceRepo.RenameAuditEmails(ctx, oldEmail, newEmail)
	})
	srv.step(ctx, &joined, "rename sub-device parameter audit emails", func() error {
		return srv.subDeviceParamRepo.RenameAuditEmails(ctx, oldEmail, newEmail)
	})
	srv.step(ctx, &joined, "rename setting audit emails", func() error {
		return srv.settingRepo.RenameAuditEmails(ctx, oldEmail, newEmail)
	})
	srv.step(ctx, &joined, "rename system parameter audit emails", func() error {
		return srv.systemParamRepo.RenameAuditEmails(ctx, oldEmail, newEmail)
	})
	srv.step(ctx, &joined, "rename grant emails", func() error {
		return srv.grantRepo.RenameEmails(ctx, oldEmail, newEmail)
	})
	srv.step(ctx, &joined, "rename connection identity", func() error {
		return srv.connectionRepo.RenameIdentity(ctx, entity.IdentityKindEmail, oldEmail, newEmail)
	})
	srv.step(ctx, &joined, "rename authentication identifier", func() error {
		return srv.authRepo.RenameIdentifier(ctx, oldEmail, newEmail)
	})
	srv.step(ctx, &joined, "rename push token email", func() error {
		return srv.pushTokenRepo.RenameEmail(ctx, oldEmail, newEmail)
	})

	return joined
}

// RenameSubDevice rewrites every stored copy of a sub-device id.
func (srv *propagationService) RenameSubDevice(ctx context.Context, oldID, newID string) error {
	srv.log(ctx).Info("Propagating sub-device rename",
		slog.String("old", oldID),
		slog.String("new", newID))

	var joined error
	srv.step(ctx, &joined, "rename sub-device id", func() error {
		return srv.subDeviceRepo.RenameSubDeviceID(ctx, oldID, newID)
	})
	srv.step(ctx, &joined, "rename sub-device id on parameters", func() error {
		return srv.subDeviceParamRepo.RenameSubDeviceID(ctx, oldID, newID)
	})

	return joined
}

// DeleteUser removes a user together with every owned device, held
// grant, credential, push registration and live connection. Owned
// devices are removed through the device cascade so their dependents go
// with them.
func (srv *propagationService) DeleteUser(ctx context.Context, email string) error {
	srv.log(ctx).Info("Propagating user delete", slog.String("email", email))

	var joined error

	devices, err := srv.deviceRepo.FindByOwner(ctx, email)
	if err != nil {
		srv.log(ctx).Error("Failed to list owned devices for delete cascade",
			slog.String("email", email), slog.Any("error", err))
		joined = stderrors.Join(joined, errors.Wrap(err, "list owned devices"))
	}
	for _, device := range devices {
		srv.step(ctx, &joined, "delete owned device", func() error {
			return srv.DeleteDevice(ctx, device.DeviceID)
		})
	}

	srv.step(ctx, &joined, "delete held grants", func() error {
		return srv.grantRepo.DeleteByGrantee(ctx, email)
	})
	srv.step(ctx, &joined, "delete live connections", func() error {
		return srv.connectionRepo.DeleteByIdentity(ctx, entity.IdentityKindEmail, email)
	})
	srv.step(ctx, &joined, "delete credentials", func() error {
		return srv.authRepo.DeleteByIdentifier(ctx, email)
	})
	srv.step(ctx, &joined, "delete push tokens", func() error {
		return srv.pushTokenRepo.DeleteByEmail(ctx, email)
	})
	srv.step(ctx, &joined, "delete user row", func() error {
		return srv.userRepo.DeleteByEmail(ctx, email)
	})

	return joined
}

// DeleteDevice removes a device together with its parameters,
// sub-devices, settings, grants and live connections.
func (srv *propagationService) DeleteDevice(ctx context.Context, deviceID string) error {
	srv.log(ctx).Info("Propagating device delete", slog.String("deviceID", deviceID))

	var joined error

	srv.step(ctx, &joined, "delete device parameters", func() error {
		return srv.deviceParamRepo.DeleteByDevice(ctx, deviceID)
	})

	subDevices, err := srv.subDeviceRepo.FindByDevice(ctx, deviceID)
	if err != nil {
		srv.log(ctx).Error("Failed to list sub-devices for delete cascade",
			slog.String("deviceID", deviceID), slog.Any("error", err))
		joined = stderrors.Join(joined, errors.Wrap(err, "list sub-devices"))
	}
	for _, subDevice := range subDevices {
		srv.step(ctx, &joined, "delete sub-device", func() error {
			return srv.DeleteSubDevice(ctx, subDevice.SubDeviceID)
		})
	}

	srv.step(ctx, &joined, "delete settings", func() error {
		return srv.settingRepo.DeleteByDevice(ctx, deviceID)
	})
	srv.step(ctx, &joined, "delete grants", func() error {
		return srv.grantRepo.DeleteByDevice(ctx, deviceID)
	})
	srv.step(ctx, &joined, "delete live connections", func() error {
		return srv.connectionRepo.DeleteByIdentity(ctx, entity.IdentityKindDeviceID, deviceID)
	})
	srv.step(ctx, &joined, "delete device row", func() error {
		return srv.deviceRepo.DeleteByDeviceID(ctx, deviceID)
	})

	return joined
}

// DeleteSubDevice removes a sub-device together with its parameters.
func (srv *propagationService) DeleteSubDevice(ctx context.Context, subDeviceID string) error {
	var joined error

	srv.step(ctx, &joined, "delete sub-device parameters", func() error {
		return srv.subDeviceParamRepo.DeleteBySubDevice(ctx, subDeviceID)
	})
	srv.step(ctx, &joined, "delete sub-device row", func() error {
		return srv.subDeviceRepo.DeleteBySubDeviceID(ctx, subDeviceID)
	})

	return joined
}
