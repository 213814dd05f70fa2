package impl

import (
	"context"

	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	"iothub/internal/domain/repository"
	"iothub/internal/usecase"

	"github.com/pkg/errors"
)

// resolveDeviceSubject authorizes a realtime operation against a device
// and returns the device it targets.
//
// For device actors the authenticated identity is the subject; the
// requested device id is informational only and ignored. User actors
// must own the device or hold an active grant. Unknown devices and
// disabled actors surface as NoActiveEntity, the per-event rejection
// that leaves the connection open.
func resolveDeviceSubject(
	ctx context.Context,
	deviceRepo repository.DeviceRepository,
	grantRepo repository.GrantRepository,
	actor usecase.Actor,
	requestedDeviceID string,
) (*entity.Device, error) {
	if actor.Disabled {
		return nil, domainerrors.ErrNoActiveEntity
	}

	deviceID := requestedDeviceID
	if actor.Kind == entity.ActorKindDevice {
		deviceID = actor.Identity
	}

	device, err := deviceRepo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrNoActiveEntity
		}

		return nil, errors.Wrap(err, "failed to resolve target device")
	}

	if actor.Kind == entity.ActorKindUser && device.Owner != actor.Identity {
		if _, err := grantRepo.FindActive(ctx, device.DeviceID, actor.Identity); err != nil {
			if errors.Is(err, repository.ErrGrantNotFound) {
				return nil, domainerrors.ErrDeviceOwnershipViolation
			}

			return nil, errors.Wrap(err, "failed to check device access grant")
		}
	}

	return device, nil
}

// requireActiveDevice rejects mutations against a disabled device.
func requireActiveDevice(device *entity.Device) error {
	if device.IsDisabled {
		return domainerrors.ErrNoActiveEntity
	}

	return nil
}
