package bus

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"iothub/internal/domain/entity"
	"iothub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) *notificationBus {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b := newNotificationBus(logger, 16)
	t.Cleanup(b.Close)

	return b
}

func receiveOne(t *testing.T, ch <-chan entity.Envelope) entity.Envelope {
	t.Helper()

	select {
	case env := <-ch:
		return env
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for envelope")
	}

	return entity.Envelope{}
}

func TestBus_PublishDeliversToSubscriber(t *testing.T) {
	b := newTestBus(t)
	ch := b.Subscribe()

	b.Publish([]string{"conn-1"}, "DEVICE_PARAM_UPDATED", map[string]string{"waterLevel": "62"})

	env := receiveOne(t, ch)
	require.NotNil(t, env.Message)
	assert.Nil(t, env.Command)
	assert.Equal(t, []string{"conn-1"}, env.Message.Recipients)
	assert.Equal(t, "DEVICE_PARAM_UPDATED", env.Message.Event)
}

func TestBus_EmptyRecipientsIsNoOp(t *testing.T) {
	b := newTestBus(t)
	ch := b.Subscribe()

	b.Publish(nil, "DEVICE_UPDATED", nil)
	b.Publish([]string{}, "DEVICE_UPDATED", nil)

	// A subsequent real publish must be the first thing delivered.
	b.Publish([]string{"conn-1"}, "marker", nil)

	env := receiveOne(t, ch)
	require.NotNil(t, env.Message)
	assert.Equal(t, "marker", env.Message.Event)
}

func TestBus_DeliveryPreservesPublishOrder(t *testing.T) {
	b := newTestBus(t)
	ch := b.Subscribe()

	events := []string{"first", "second", "third", "fourth"}
	for _, event := range events {
		b.Publish([]string{"conn-1"}, event, nil)
	}

	for _, want := range events {
		env := receiveOne(t, ch)
		require.NotNil(t, env.Message)
		assert.Equal(t, want, env.Message.Event)
	}
}

func TestBus_CommandsAreSeparateClass(t *testing.T) {
	b := newTestBus(t)
	ch := b.Subscribe()

	b.PublishCommand(service.CommandShutdown)

	env := receiveOne(t, ch)
	require.NotNil(t, env.Command)
	assert.Nil(t, env.Message)
	assert.Equal(t, service.CommandShutdown, env.Command.Name)
}

func TestBus_NoSubscriberDropsMessage(t *testing.T) {
	b := newTestBus(t)

	// Nobody is listening yet; the message is gone for good.
	b.Publish([]string{"conn-1"}, "lost", nil)

	// Give the dispatcher time to consume the queue before subscribing.
	time.Sleep(20 * time.Millisecond)

	ch := b.Subscribe()
	b.Publish([]string{"conn-1"}, "kept", nil)

	env := receiveOne(t, ch)
	require.NotNil(t, env.Message)
	assert.Equal(t, "kept", env.Message.Event)
}

func TestBus_UnsubscribeClosesChannel(t *testing.T) {
	b := newTestBus(t)
	ch := b.Subscribe()

	b.Unsubscribe(ch)

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed after unsubscribe")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestBus_CloseIsIdempotent(t *testing.T) {
	b := newTestBus(t)
	ch := b.Subscribe()

	b.Close()
	b.Close()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed after bus close")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}

	// Publishing after close must not panic.
	b.Publish([]string{"conn-1"}, "late", nil)
	b.PublishCommand("late")
}
