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

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// handshakeService implements the HandshakeUsecase interface.
type handshakeService struct {
	tokenService service.TokenService
	presence     usecase.PresenceUsecase
	deviceRepo   repository.DeviceRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// HandshakeServiceParams holds dependencies for HandshakeService, injected by Fx.
type HandshakeServiceParams struct {
	fx.In

	TokenService service.TokenService
	Presence     usecase.PresenceUsecase
	DeviceRepo   repository.DeviceRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewHandshakeService is the constructor for handshakeService.
func NewHandshakeService(params HandshakeServiceParams) usecase.HandshakeUsecase {
	return &handshakeService{
		tokenService: params.TokenService,
		presence:     params.Presence,
		deviceRepo:   params.DeviceRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

func (srv *handshakeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate runs the handshake state machine: credential presence,
// token integrity, claims dispatch, actor lookup, presence registration.
// Every failure terminates the handshake before the presence registry is
// touched.
func (srv *handshakeService) Authenticate(ctx context.Context, rawToken, connectionID string) (*usecase.Actor, error) {
	if rawToken == "" {
		return nil, domainerrors.ErrMissingCredential
	}

	claims, err := srv.tokenService.ValidateToken(rawToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, domainerrors.ErrMalformedCredential
		}

		srv.log(ctx).Warn("Handshake credential rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredential
	}

	switch {
	case claims.IsDevice():
		return srv.authenticateDevice(ctx, claims.DeviceID, connectionID)
	case claims.IsUser():
		return srv.authenticateUser(ctx, claims, connectionID)
	default:
		return nil, domainerrors.ErrUnrecognizedClaims
	}
}

// authenticateDevice resolves the device claim. Disabled devices still
// connect; their mutations are rejected per event.
func (srv *handshakeService) authenticateDevice(ctx context.Context, deviceID, connectionID string) (*usecase.Actor, error) {
	device, err := srv.deviceRepo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrUnknownActor
		}

		return nil, errors.Wrap(err, "failed to look up device during handshake")
	}

	if err := srv.presence.RegisterDevice(ctx, connectionID, device.DeviceID, device.IsDisabled); err != nil {
		return nil, errors.Wrap(err, "failed to register device presence")
	}

	srv.log(ctx).Info("Device connected",
		slog.String("deviceID", device.DeviceID),
		slog.String("connectionID", connectionID))

	return &usecase.Actor{
		Kind:     entity.ActorKindDevice,
		Identity: device.DeviceID,
		Disabled: device.IsDisabled,
		Device:   device,
	}, nil
}

func (srv *handshakeService) authenticateUser(ctx context.Context, claims *service.Claims, connectionID string) (*usecase.Actor, error) {
	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnknownActor
		}

		return nil, errors.Wrap(err, "failed to look up user during handshake")
	}

	if err := srv.presence.RegisterUser(ctx, connectionID, user.Email, user.IsDisabled); err != nil {
		return nil, errors.Wrap(err, "failed to register user presence")
	}

	srv.log(ctx).Info("User connected",
		slog.String("email", user.Email),
		slog.String("connectionID", connectionID))

	return &usecase.Actor{
		Kind:     entity.ActorKindUser,
		Identity: user.Email,
		Disabled: user.IsDisabled,
		User:     user,
	}, nil
}
