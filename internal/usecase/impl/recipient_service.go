package impl

import (
	"context"
	"log/slog"

	"iothub/internal/domain/repository"
	"iothub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipientService implements the RecipientUsecase interface.
type recipientService struct {
	deviceRepo repository.DeviceRepository
	grantRepo  repository.GrantRepository
	logger     *slog.Logger
}

// RecipientServiceParams holds dependencies for RecipientService, injected by Fx.
type RecipientServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	GrantRepo  repository.GrantRepository
	Logger     *slog.Logger
}

// NewRecipientService is the constructor for recipientService.
func NewRecipientService(params RecipientServiceParams) usecase.RecipientUsecase {
	return &recipientService{
		deviceRepo: params.DeviceRepo,
		grantRepo:  params.GrantRepo,
		logger:     params.Logger,
	}
}

// ForDevice resolves the full audience of a device notification: the
// device itself, its owner and every active grantee, deduplicated in
// first-seen order. A missing device yields an empty set, not an error,
// so notifications racing a delete cascade degrade to a no-op publish.
func (srv *recipientService) ForDevice(ctx context.Context, deviceID string) ([]string, error) {
	device, err := srv.deviceRepo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return []string{}, nil
		}

		return nil, errors.Wrap(err, "failed to resolve device recipients")
	}

	grants, err := srv.grantRepo.FindActiveByDevice(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve grantee recipients")
	}

	recipients := make([]string, 0, len(grants)+2)
	seen := make(map[string]struct{}, len(grants)+2)

	appendRecipient := func(identity string) {
		if _, dup := seen[identity]; dup {
			return
		}
		seen[identity] = struct{}{}
		recipients = append(recipients, identity)
	}

	appendRecipient(device.DeviceID)
	appendRecipient(device.Owner)
	for _, grant := range grants {
		appendRecipient(grant.GranteeEmail)
	}

	return recipients, nil
}

// ForUser resolves a single user recipient.
func (srv *recipientService) ForUser(_ context.Context, email string) ([]string, error) {
	if email == "" {
		return []string{}, nil
	}

	return []string{email}, nil
}
