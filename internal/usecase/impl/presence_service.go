// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "iothub/internal/delivery/context"
	"iothub/internal/domain/entity"
	"iothub/internal/domain/repository"
	"iothub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// presenceService implements the PresenceUsecase interface.
type presenceService struct {
	connectionRepo repository.ConnectionRepository
	deviceRepo     repository.DeviceRepository
	logger         *slog.Logger
}

// PresenceServiceParams holds dependencies for PresenceService, injected by Fx.
type PresenceServiceParams struct {
	fx.In

	ConnectionRepo repository.ConnectionRepository
	DeviceRepo     repository.DeviceRepository
	Logger         *slog.Logger
}

// NewPresenceService is the constructor for presenceService.
func NewPresenceService(params PresenceServiceParams) usecase.PresenceUsecase {
	return &presenceService{
		connectionRepo: params.ConnectionRepo,
		deviceRepo:     params.DeviceRepo,
		logger:         params.Logger,
	}
}

func (srv *presenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice records a live device connection. A device holds at most
// one active connection, so any previous row for the same device id is
// removed first. The registration timestamp is stamped on the device row
// once; repeat handshakes leave it untouched.
func (srv *presenceService) RegisterDevice(ctx context.Context, connectionID, deviceID string, disabled bool) error {
	if err := srv.connectionRepo.DeleteByIdentity(ctx, entity.IdentityKindDeviceID, deviceID); err != nil {
		return errors.Wrap(err, "failed to supersede previous device connection")
	}

	conn := &entity.Connection{
		ConnectionID:  connectionID,
		ActorKind:     entity.ActorKindDevice,
		IdentityKind:  entity.IdentityKindDeviceID,
		IdentityValue: deviceID,
		Disabled:      disabled,
	}
	if err := srv.connectionRepo.Insert(ctx, conn); err != nil {
		return errors.Wrap(err, "failed to register device connection")
	}

	if err := srv.deviceRepo.StampRegistered(ctx, deviceID, time.Now()); err != nil {
		return errors.Wrap(err, "failed to stamp device registration")
	}

	srv.log(ctx).Debug("Device connection registered",
		slog.String("deviceID", deviceID),
		slog.String("connectionID", connectionID))

	return nil
}

// RegisterUser records a live user connection. Several connections per
// user may coexist, one per login.
func (srv *presenceService) RegisterUser(ctx context.Context, connectionID, email string, disabled bool) error {
	conn := &entity.Connection{
		ConnectionID:  connectionID,
		ActorKind:     entity.ActorKindUser,
		IdentityKind:  entity.IdentityKindEmail,
		IdentityValue: email,
		Disabled:      disabled,
	}
	if err := srv.connectionRepo.Insert(ctx, conn); err != nil {
		return errors.Wrap(err, "failed to register user connection")
	}

	srv.log(ctx).Debug("User connection registered",
		slog.String("email", email),
		slog.String("connectionID", connectionID))

	return nil
}

// Unregister removes the record for one connection. Unknown ids are a
// no-op so disconnect and cascade cleanup can race safely.
func (srv *presenceService) Unregister(ctx context.Context, connectionID string) error {
	if err := srv.connectionRepo.DeleteByConnectionID(ctx, connectionID); err != nil {
		return errors.Wrap(err, "failed to unregister connection")
	}

	return nil
}

// ConnectionsFor resolves identity values to their live connections.
func (srv *presenceService) ConnectionsFor(ctx context.Context, kind entity.IdentityKind, values []string) ([]*entity.Connection, error) {
	conns, err := srv.connectionRepo.FindByIdentities(ctx, kind, values)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve live connections")
	}

	return conns, nil
}
