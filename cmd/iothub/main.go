package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"iothub/config"
	"iothub/internal/delivery"
	"iothub/internal/delivery/http"
	httpmiddleware "iothub/internal/delivery/http/middleware"
	"iothub/internal/delivery/http/router/handler"
	deliverymiddleware "iothub/internal/delivery/middleware"
	"iothub/internal/delivery/ws"
	"iothub/internal/domain/service"
	"iothub/internal/infra/auth"
	"iothub/internal/infra/bus"
	logs "iothub/internal/infra/log"
	"iothub/internal/infra/notification"
	"iothub/internal/infra/persistence/postgres"
	"iothub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewPushTokenRepository,
			postgres.NewDeviceRepository,
			postgres.NewSubDeviceRepository,
			postgres.NewGrantRepository,
			postgres.NewConnectionRepository,
			postgres.NewDeviceParameterRepository,
			postgres.NewSubDeviceParameterRepository,
			postgres.NewSettingRepository,
			postgres.NewSystemParameterRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			bus.New,
			newFirebaseService,
		),
	)
}

// newFirebaseService creates the push service when Firebase is
// configured. A nil service disables the push fallback.
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewDeviceService,
			impl.NewGrantService,
			impl.NewPresenceService,
			impl.NewHandshakeService,
			impl.NewRecipientService,
			impl.NewNotifierService,
			impl.NewPropagationService,
			impl.NewParameterService,
			impl.NewSubDeviceService,
			impl.NewSettingService,
			impl.NewSystemService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewDeviceHandler,
			handler.NewGrantHandler,
			handler.NewParameterHandler,
			handler.NewSubDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			ws.NewRouter,
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				ws.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
