package impl

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "iothub/internal/delivery/context"
	"iothub/internal/domain/entity"
	"iothub/internal/domain/repository"
	"iothub/internal/domain/service"
	"iothub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notifierService implements the NotifierUsecase interface.
type notifierService struct {
	bus           service.NotificationBus
	presence      usecase.PresenceUsecase
	pushTokenRepo repository.PushTokenRepository
	pushService   service.PushService // nil when Firebase is not configured
	logger        *slog.Logger
}

// NotifierServiceParams holds dependencies for NotifierService, injected by Fx.
type NotifierServiceParams struct {
	fx.In

	Bus           service.NotificationBus
	Presence      usecase.PresenceUsecase
	PushTokenRepo repository.PushTokenRepository
	PushService   service.PushService `optional:"true"`
	Logger        *slog.Logger
}

// NewNotifierService is the constructor for notifierService.
func NewNotifierService(params NotifierServiceParams) usecase.NotifierUsecase {
	return &notifierService{
		bus:           params.Bus,
		presence:      params.Presence,
		pushTokenRepo: params.PushTokenRepo,
		pushService:   params.PushService,
		logger:        params.Logger,
	}
}

func (srv *notifierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Notify publishes one event to the given recipients, then falls back to
// mobile push for user recipients that hold no live connection. The bus
// publish itself never blocks or fails; only the fallback touches
// storage.
func (srv *notifierService) Notify(ctx context.Context, recipients []string, event string, payload any) error {
	if len(recipients) == 0 {
		return nil
	}

	srv.bus.Publish(recipients, event, payload)

	if srv.pushService == nil {
		return nil
	}

	if err := srv.pushOffline(ctx, recipients, event); err != nil {
		// The realtime publish already happened; fallback failures are
		// reported but must not fail the caller's operation.
		srv.log(ctx).Warn("Push fallback failed", slog.String("event", event), slog.Any("error", err))
	}

	return nil
}

// pushOffline sends an FCM push to every user recipient without a live
// connection.
func (srv *notifierService) pushOffline(ctx context.Context, recipients []string, event string) error {
	emails := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		// Device ids never contain '@'; emails always do.
		if strings.Contains(recipient, "@") {
			emails = append(emails, recipient)
		}
	}
	if len(emails) == 0 {
		return nil
	}

	conns, err := srv.presence.ConnectionsFor(ctx, entity.IdentityKindEmail, emails)
	if err != nil {
		return errors.Wrap(err, "failed to check live connections for push fallback")
	}

	online := make(map[string]struct{}, len(conns))
	for _, conn := range conns {
		online[conn.IdentityValue] = struct{}{}
	}

	var joined error
	for _, email := range emails {
		if _, live := online[email]; live {
			continue
		}
		if err := srv.pushToEmail(ctx, email, event); err != nil {
			joined = stderrors.Join(joined, errors.Wrap(err, fmt.Sprintf("push to %s", email)))
		}
	}

	return joined
}

func (srv *notifierService) pushToEmail(ctx context.Context, email, event string) error {
	tokens, err := srv.pushTokenRepo.FindByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to load push tokens")
	}
	if len(tokens) == 0 {
		return nil
	}

	tokenStrings := make([]string, 0, len(tokens))
	for _, token := range tokens {
		tokenStrings = append(tokenStrings, token.Token)
	}

	_, _, invalidTokens, err := srv.pushService.SendBatch(ctx, tokenStrings, "Device update", event, map[string]string{"event": event})
	if err != nil {
		return errors.Wrap(err, "failed to send push batch")
	}

	if len(invalidTokens) > 0 {
		if err := srv.pushTokenRepo.DeleteTokens(ctx, invalidTokens); err != nil {
			srv.log(ctx).Warn("Failed to prune invalid push tokens", slog.Any("error", err))
		}
	}

	return nil
}
