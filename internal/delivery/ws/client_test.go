package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"iothub/internal/domain/entity"
	"iothub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdleClient(t *testing.T) *client {
	t.Helper()

	srv := &wsServer{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	return newClient("conn-1", usecase.Actor{
		Kind:     entity.ActorKindDevice,
		Identity: "pump-1",
	}, nil, srv)
}

func TestClient_Enqueue_AfterCloseIsSafe(t *testing.T) {
	c := newIdleClient(t)

	c.close()

	assert.NotPanics(t, func() {
		c.enqueue(entity.EventDeviceParamUpdated, nil)
	})
	assert.Empty(t, c.send)
}

func TestClient_Enqueue_FullQueueDropsConnectionSafely(t *testing.T) {
	c := newIdleClient(t)

	// No write pump is draining, so the queue fills and the overflow
	// event drops the connection.
	for i := 0; i < sendQueueSize; i++ {
		c.enqueue(entity.EventDeviceParamUpdated, nil)
	}
	c.enqueue(entity.EventDeviceParamUpdated, nil)

	select {
	case <-c.done:
	default:
		t.Fatal("overflowing the send queue should drop the connection")
	}

	// Later bus fan-outs against the dropped connection are no-ops.
	assert.NotPanics(t, func() {
		c.enqueue(entity.EventDeviceParamUpdated, nil)
	})
	assert.Len(t, c.send, sendQueueSize)
}

func TestClient_Close_IsIdempotent(t *testing.T) {
	c := newIdleClient(t)

	assert.NotPanics(t, func() {
		c.close()
		c.close()
	})
}

func TestConnectedPayload_CarriesDeviceProjection(t *testing.T) {
	device := &entity.Device{
		DeviceID:    "pump-1",
		Owner:       "alice@example.com",
		Description: "basement pump",
	}

	payload := connectedPayload("conn-1", usecase.Actor{
		Kind:     entity.ActorKindDevice,
		Identity: "pump-1",
		Device:   device,
	})

	assert.Equal(t, "conn-1", payload["connectionId"])
	assert.Equal(t, entity.ActorKindDevice, payload["kind"])
	assert.Equal(t, "pump-1", payload["identity"])
	require.Contains(t, payload, "device")
	assert.Equal(t, device, payload["device"])
	assert.NotContains(t, payload, "user")
}

func TestConnectedPayload_CarriesUserProjectionWithoutCredentials(t *testing.T) {
	user := &entity.User{Email: "alice@example.com", Name: "Alice"}

	payload := connectedPayload("conn-2", usecase.Actor{
		Kind:     entity.ActorKindUser,
		Identity: "alice@example.com",
		User:     user,
	})

	require.Contains(t, payload, "user")
	assert.Equal(t, user, payload["user"])
	assert.NotContains(t, payload, "device")

	// The projection must never leak credential material.
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "token")
}
