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

// grantService implements the GrantUsecase interface.
type grantService struct {
	deviceRepo repository.DeviceRepository
	grantRepo  repository.GrantRepository
	userRepo   repository.UserRepository
	recipients usecase.RecipientUsecase
	notifier   usecase.NotifierUsecase
	logger     *slog.Logger
}

// GrantServiceParams holds dependencies for GrantService, injected by Fx.
type GrantServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	GrantRepo  repository.GrantRepository
	UserRepo   repository.UserRepository
	Recipients usecase.RecipientUsecase
	Notifier   usecase.NotifierUsecase
	Logger     *slog.Logger
}

// NewGrantService is the constructor for grantService.
func NewGrantService(params GrantServiceParams) usecase.GrantUsecase {
	return &grantService{
		deviceRepo: params.DeviceRepo,
		grantRepo:  params.GrantRepo,
		userRepo:   params.UserRepo,
		recipients: params.Recipients,
		notifier:   params.Notifier,
		logger:     params.Logger,
	}
}

func (srv *grantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Grant shares a device with another user. Only the owner may grant, and
// the grantee must be a registered user.
func (srv *grantService) Grant(ctx context.Context, grantorEmail, deviceID, granteeEmail string) (*entity.AccessGrant, error) {
	if err := srv.requireOwner(ctx, grantorEmail, deviceID); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByEmail(ctx, granteeEmail); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to look up grantee")
	}

	grant := &entity.AccessGrant{
		DeviceID:     deviceID,
		GranteeEmail: granteeEmail,
		GrantorEmail: grantorEmail,
	}
	if err := srv.grantRepo.Create(ctx, grant); err != nil {
		if errors.Is(err, repository.ErrDuplicateGrant) {
			return nil, domainerrors.ErrGrantAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create access grant")
	}

	srv.log(ctx).Info("Access granted",
		slog.String("deviceID", deviceID),
		slog.String("grantee", granteeEmail),
		slog.String("grantor", grantorEmail))

	recipients, err := srv.recipients.ForDevice(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve grant recipients")
	}
	if err := srv.notifier.Notify(ctx, recipients, entity.EventGrantCreated, grant); err != nil {
		return nil, err
	}

	return grant, nil
}

// Revoke withdraws a grantee's access. Idempotent: revoking an absent
// grant succeeds.
func (srv *grantService) Revoke(ctx context.Context, actorEmail, deviceID, granteeEmail string) error {
	if err := srv.requireOwner(ctx, actorEmail, deviceID); err != nil {
		return err
	}

	// Resolve before the delete so the revoked grantee still hears about it.
	recipients, err := srv.recipients.ForDevice(ctx, deviceID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve revoke recipients")
	}

	if err := srv.grantRepo.Delete(ctx, deviceID, granteeEmail); err != nil {
		return errors.Wrap(err, "failed to revoke access grant")
	}

	srv.log(ctx).Info("Access revoked",
		slog.String("deviceID", deviceID),
		slog.String("grantee", granteeEmail))

	return srv.notifier.Notify(ctx, recipients, entity.EventGrantDeleted, map[string]any{
		"deviceId":     deviceID,
		"granteeEmail": granteeEmail,
	})
}

// List retrieves the active grants of a device; owner access required.
func (srv *grantService) List(ctx context.Context, actorEmail, deviceID string) ([]*entity.AccessGrant, error) {
	if err := srv.requireOwner(ctx, actorEmail, deviceID); err != nil {
		return nil, err
	}

	grants, err := srv.grantRepo.FindActiveByDevice(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access grants")
	}

	return grants, nil
}

func (srv *grantService) requireOwner(ctx context.Context, actorEmail, deviceID string) error {
	device, err := srv.deviceRepo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to load device")
	}

	if device.Owner != actorEmail {
		return domainerrors.ErrDeviceOwnershipViolation
	}

	return nil
}
