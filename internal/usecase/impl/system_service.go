package impl

import (
	"context"

	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	"iothub/internal/domain/repository"
	"iothub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// systemService implements the SystemUsecase interface.
type systemService struct {
	systemParamRepo repository.SystemParameterRepository
	notifier        usecase.NotifierUsecase
}

// SystemServiceParams holds dependencies for SystemService, injected by Fx.
type SystemServiceParams struct {
	fx.In

	SystemParamRepo repository.SystemParameterRepository
	Notifier        usecase.NotifierUsecase
}

// NewSystemService is the constructor for systemService.
func NewSystemService(params SystemServiceParams) usecase.SystemUsecase {
	return &systemService{
		systemParamRepo: params.SystemParamRepo,
		notifier:        params.Notifier,
	}
}

// GetAll publishes the process-wide parameters to the requesting actor.
// System parameters are visible to every active actor.
func (srv *systemService) GetAll(ctx context.Context, actor usecase.Actor) error {
	if actor.Disabled {
		return domainerrors.ErrNoActiveEntity
	}

	params, err := srv.systemParamRepo.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load system parameters")
	}

	return srv.notifier.Notify(ctx, []string{actor.Identity}, entity.EventGetAllSystemParameters, map[string]any{
		"parameters": params,
	})
}
