package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	deliverycontext "iothub/internal/delivery/context"
	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	"iothub/internal/usecase"

	"github.com/gorilla/websocket"
)

const (
	maxFrameSize  = 64 * 1024
	sendQueueSize = 32
)

// frame is the wire format in both directions.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// client is one live websocket connection with its authenticated actor.
// The read pump dispatches inbound events; the write pump drains the
// send queue so business logic never blocks on a slow socket.
type client struct {
	connectionID string
	actor        usecase.Actor
	conn         *websocket.Conn
	send         chan outbound
	done         chan struct{}
	srv          *wsServer
	closeOnce    sync.Once
}

func newClient(connectionID string, actor usecase.Actor, conn *websocket.Conn, srv *wsServer) *client {
	return &client{
		connectionID: connectionID,
		actor:        actor,
		conn:         conn,
		send:         make(chan outbound, sendQueueSize),
		done:         make(chan struct{}),
		srv:          srv,
	}
}

// enqueue queues an outbound event, dropping the connection if its
// queue is full: a client that cannot drain its socket is treated as
// gone rather than allowed to stall the dispatcher. The send channel is
// never closed, so a fan-out racing a disconnect lands here harmlessly.
func (c *client) enqueue(event string, data any) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.send <- outbound{Event: event, Data: data}:
	case <-c.done:
	default:
		c.srv.logger.Warn("Send queue full, dropping connection",
			slog.String("connectionID", c.connectionID),
			slog.String("identity", c.actor.Identity))
		c.close()
	}
}

// close signals shutdown; the write pump sends the close frame and both
// pumps unwind, running the disconnect path exactly once.
func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *client) readPump(ctx context.Context) {
	defer c.srv.disconnect(ctx, c)

	c.conn.SetReadLimit(maxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.srv.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.srv.pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.srv.log(ctx).Warn("Unexpected connection close",
					slog.String("connectionID", c.connectionID),
					slog.Any("error", err))
			}

			return
		}

		var inbound frame
		if err := json.Unmarshal(raw, &inbound); err != nil || inbound.Event == "" {
			c.enqueue(entity.ErrorEventName("message"), map[string]string{
				"error": "frame is not a valid event envelope",
			})

			continue
		}

		c.handle(ctx, inbound)
	}
}

// handle runs one inbound event through the router and reports any
// failure back on this connection only.
func (c *client) handle(ctx context.Context, inbound frame) {
	eventCtx := deliverycontext.WithLogger(ctx, c.srv.logger.With(
		slog.String("connectionID", c.connectionID),
		slog.String("event", inbound.Event)))

	if err := c.srv.router.Dispatch(eventCtx, c.actor, inbound.Event, inbound.Data); err != nil {
		c.enqueue(entity.ErrorEventName(inbound.Event), errorPayload(err))
	}
}

func errorPayload(err error) map[string]string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		payload := map[string]string{
			"error": appErr.Message(),
			"code":  appErr.ErrorCode(),
		}
		if appErr.Details() != "" {
			payload["details"] = appErr.Details()
		}

		return payload
	}

	return map[string]string{"error": "internal error"}
}

func (c *client) writePump() {
	ticker := time.NewTicker(c.srv.pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.srv.writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))

			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.srv.writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.srv.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
