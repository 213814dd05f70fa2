// Package bus contains the in-process notification bus that decouples
// business-logic producers from the realtime transport layer.
package bus

import (
	"context"
	"log/slog"
	"sync"

	"iothub/config"
	"iothub/internal/domain/entity"
	"iothub/internal/domain/service"

	"go.uber.org/fx"
)

const defaultQueueSize = 256

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// notificationBus serializes delivery through a single dispatch
// goroutine: everything published is seen by every subscriber in publish
// order. Nothing is persisted and nothing is retried; a message
// published while no subscriber listens is gone.
type notificationBus struct {
	logger *slog.Logger

	queue       chan entity.Envelope
	subscribe   chan chan entity.Envelope
	unsubscribe chan (<-chan entity.Envelope)
	done        chan struct{}
	closeOnce   sync.Once
}

// New creates the process-wide notification bus and ties its lifetime to
// the fx application.
func New(params Params) service.NotificationBus {
	queueSize := defaultQueueSize
	if params.Config.Bus != nil && params.Config.Bus.QueueSize > 0 {
		queueSize = params.Config.Bus.QueueSize
	}

	b := newNotificationBus(params.Logger, queueSize)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			b.Close()

			return nil
		},
	})

	return b
}

func newNotificationBus(logger *slog.Logger, queueSize int) *notificationBus {
	b := &notificationBus{
		logger:      logger,
		queue:       make(chan entity.Envelope, queueSize),
		subscribe:   make(chan chan entity.Envelope),
		unsubscribe: make(chan (<-chan entity.Envelope)),
		done:        make(chan struct{}),
	}

	go b.dispatch()

	return b
}

// Publish broadcasts a routed notification. An empty recipient list is a
// no-op. Publish never blocks: when the dispatch queue is full the
// message is dropped, which is within the at-most-once contract.
func (b *notificationBus) Publish(recipients []string, event string, payload any) {
	if len(recipients) == 0 {
		return
	}

	b.enqueue(entity.Envelope{Message: &entity.Message{
		Recipients: recipients,
		Event:      event,
		Payload:    payload,
	}})
}

// PublishCommand broadcasts an internal control command.
func (b *notificationBus) PublishCommand(name string) {
	b.enqueue(entity.Envelope{Command: &entity.Command{Name: name}})
}

func (b *notificationBus) enqueue(env entity.Envelope) {
	select {
	case b.queue <- env:
	case <-b.done:
	default:
		b.logger.Warn("notification bus queue full, dropping message",
			slog.Bool("command", env.Command != nil))
	}
}

// Subscribe registers a consumer. The returned channel is buffered; a
// consumer that stops draining it loses messages, not the bus.
func (b *notificationBus) Subscribe() <-chan entity.Envelope {
	ch := make(chan entity.Envelope, cap(b.queue))
	select {
	case b.subscribe <- ch:
	case <-b.done:
		close(ch)
	}

	return ch
}

// Unsubscribe removes a consumer and closes its channel.
func (b *notificationBus) Unsubscribe(ch <-chan entity.Envelope) {
	select {
	case b.unsubscribe <- ch:
	case <-b.done:
	}
}

// Close stops dispatching and closes all subscriber channels. Safe to
// call more than once.
func (b *notificationBus) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
}

// dispatch is the single event loop that owns the subscriber set. All
// ordering guarantees come from this goroutine being the only sender on
// subscriber channels.
func (b *notificationBus) dispatch() {
	subscribers := make(map[<-chan entity.Envelope]chan entity.Envelope)

	defer func() {
		for _, ch := range subscribers {
			close(ch)
		}
	}()

	for {
		select {
		case <-b.done:
			return

		case ch := <-b.subscribe:
			subscribers[ch] = ch

		case ch := <-b.unsubscribe:
			if sendCh, ok := subscribers[ch]; ok {
				delete(subscribers, ch)
				close(sendCh)
			}

		case env := <-b.queue:
			for _, ch := range subscribers {
				select {
				case ch <- env:
				default:
					// Subscriber fell behind; at-most-once allows the drop.
					b.logger.Warn("notification bus subscriber backlog full, dropping message")
				}
			}
		}
	}
}
