package ws

import (
	"context"
	"encoding/json"
	"log/slog"

	domainerrors "iothub/internal/domain/errors"
	"iothub/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Inbound event names. Outbound names are derived per event in the
// entity package.
const (
	EventParameterGetAll          = "parameter-get-all"
	EventParameterUpdate          = "parameter-update"
	EventSubDeviceGetAll          = "sub-device-get-all"
	EventSubDeviceParameterGetAll = "sub-device-parameter-get-all"
	EventSubDeviceParameterUpdate = "sub-device-parameter-update"
	EventDeviceSettingGetAll      = "device-setting-get-all"
	EventSystemParameterGetAll    = "system-parameter-get-all"
)

// DeviceID is informational for device actors (their own identity is
// the subject) and therefore not required by the schema; user actors
// that omit it fail access resolution instead.
type deviceScopedPayload struct {
	DeviceID string `json:"deviceId"`
}

type parameterUpdatePayload struct {
	DeviceID string `json:"deviceId"`
	Name     string `json:"name" validate:"required"`
	Value    string `json:"value"`
}

type subDeviceScopedPayload struct {
	SubDeviceID string `json:"subDeviceId" validate:"required"`
}

type subDeviceParameterUpdatePayload struct {
	SubDeviceID string `json:"subDeviceId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Value       string `json:"value"`
}

// RouterParams holds dependencies for the event router, injected by Fx.
type RouterParams struct {
	fx.In

	Parameters usecase.ParameterUsecase
	SubDevices usecase.SubDeviceUsecase
	Settings   usecase.SettingUsecase
	System     usecase.SystemUsecase
	Logger     *slog.Logger
}

// Router maps inbound event names to payload schemas and business
// handlers. Dispatch errors are reported to the originating connection
// only; the connection itself stays open.
type Router struct {
	parameters usecase.ParameterUsecase
	subDevices usecase.SubDeviceUsecase
	settings   usecase.SettingUsecase
	system     usecase.SystemUsecase
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewRouter is the constructor for Router.
func NewRouter(params RouterParams) *Router {
	return &Router{
		parameters: params.Parameters,
		subDevices: params.SubDevices,
		settings:   params.Settings,
		system:     params.System,
		validate:   validator.New(),
		logger:     params.Logger,
	}
}

// Dispatch runs the handler bound to an inbound event. The returned
// error is what the transport reports back as ERROR_<EVENT>.
func (r *Router) Dispatch(ctx context.Context, actor usecase.Actor, event string, data json.RawMessage) error {
	switch event {
	case EventParameterGetAll:
		payload, err := decode[deviceScopedPayload](r.validate, data)
		if err != nil {
			return err
		}

		return r.parameters.GetAll(ctx, actor, payload.DeviceID)

	case EventParameterUpdate:
		payload, err := decode[parameterUpdatePayload](r.validate, data)
		if err != nil {
			return err
		}

		return r.parameters.Update(ctx, actor, payload.DeviceID, payload.Name, payload.Value)

	case EventSubDeviceGetAll:
		payload, err := decode[deviceScopedPayload](r.validate, data)
		if err != nil {
			return err
		}

		return r.subDevices.GetAll(ctx, actor, payload.DeviceID)

	case EventSubDeviceParameterGetAll:
		payload, err := decode[subDeviceScopedPayload](r.validate, data)
		if err != nil {
			return err
		}

		return r.subDevices.GetAllParameters(ctx, actor, payload.SubDeviceID)

	case EventSubDeviceParameterUpdate:
		payload, err := decode[subDeviceParameterUpdatePayload](r.validate, data)
		if err != nil {
			return err
		}

		return r.subDevices.UpdateParameter(ctx, actor, payload.SubDeviceID, payload.Name, payload.Value)

	case EventDeviceSettingGetAll:
		payload, err := decode[deviceScopedPayload](r.validate, data)
		if err != nil {
			return err
		}

		return r.settings.GetAll(ctx, actor, payload.DeviceID)

	case EventSystemParameterGetAll:
		return r.system.GetAll(ctx, actor)

	default:
		return domainerrors.ErrValidationFailed.WrapMessage("unknown event name")
	}
}

// decode unmarshals and validates an inbound payload against its schema.
func decode[T any](validate *validator.Validate, data json.RawMessage) (*T, error) {
	payload := new(T)
	if len(data) > 0 {
		if err := json.Unmarshal(data, payload); err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "payload is not valid JSON")
		}
	}
	if err := validate.Struct(payload); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return payload, nil
}
