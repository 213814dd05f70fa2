// Package ws is the realtime transport: it upgrades connections,
// authenticates them through the handshake usecase, routes inbound
// events to business handlers and fans bus messages out to the live
// sockets of their recipients.
package ws

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"iothub/config"
	"iothub/internal/delivery"
	deliverycontext "iothub/internal/delivery/context"
	"iothub/internal/domain/entity"
	domainerrors "iothub/internal/domain/errors"
	"iothub/internal/domain/lifecycle"
	"iothub/internal/domain/service"
	"iothub/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPort         = 8081
	defaultPath         = "/ws"
	defaultPingInterval = 30 * time.Second
	defaultPongWait     = 60 * time.Second
	defaultWriteWait    = 10 * time.Second
)

// WSParams holds dependencies for the websocket server, injected by Fx.
type WSParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Handshake usecase.HandshakeUsecase
	Presence  usecase.PresenceUsecase
	Bus       service.NotificationBus
	Router    *Router
}

type wsServer struct {
	cfg       *config.Config
	logger    *slog.Logger
	handshake usecase.HandshakeUsecase
	presence  usecase.PresenceUsecase
	bus       service.NotificationBus
	router    *Router

	hub      *hub
	upgrader websocket.Upgrader
	server   *http.Server

	port         int
	path         string
	pingInterval time.Duration
	pongWait     time.Duration
	writeWait    time.Duration
}

// NewServer is the constructor for the websocket delivery.
func NewServer(params WSParams) (delivery.Delivery, error) {
	srv := &wsServer{
		cfg:       params.Config,
		logger:    params.Logger,
		handshake: params.Handshake,
		presence:  params.Presence,
		bus:       params.Bus,
		router:    params.Router,
		hub:       newHub(),

		port:         defaultPort,
		path:         defaultPath,
		pingInterval: defaultPingInterval,
		pongWait:     defaultPongWait,
		writeWait:    defaultWriteWait,
	}

	wsCfg := params.Config.WebSocket
	if wsCfg != nil {
		if wsCfg.Port > 0 {
			srv.port = wsCfg.Port
		}
		if wsCfg.Path != "" {
			srv.path = wsCfg.Path
		}
		if wsCfg.PingInterval > 0 {
			srv.pingInterval = wsCfg.PingInterval
		}
		if wsCfg.PongWait > 0 {
			srv.pongWait = wsCfg.PongWait
		}
		if wsCfg.WriteWait > 0 {
			srv.writeWait = wsCfg.WriteWait
		}
	}

	srv.upgrader = websocket.Upgrader{
		CheckOrigin: originChecker(wsCfg),
	}
	if wsCfg != nil {
		srv.upgrader.ReadBufferSize = wsCfg.ReadBufferSize
		srv.upgrader.WriteBufferSize = wsCfg.WriteBufferSize
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go srv.consume()

			return nil
		},
		OnStop: srv.stop,
	})

	return srv, nil
}

func originChecker(wsCfg *config.WebSocketConfig) func(r *http.Request) bool {
	if wsCfg == nil || len(wsCfg.AllowedOrigins) == 0 {
		return func(*http.Request) bool { return true }
	}

	allowed := make(map[string]struct{}, len(wsCfg.AllowedOrigins))
	for _, origin := range wsCfg.AllowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowed[origin]

		return ok
	}
}

func (s *wsServer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Serve blocks listening for websocket upgrades until the server is
// shut down.
func (s *wsServer) Serve(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc(s.path, func(w http.ResponseWriter, r *http.Request) {
		s.handleUpgrade(ctx, w, r)
	})

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.server = &http.Server{
		Addr:              hostPort,
		Handler:           mux,
		ReadHeaderTimeout: s.writeWait,
	}

	s.logger.Info("Starting WebSocket server",
		slog.String("hostPort", hostPort),
		slog.String("path", s.path))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve websocket")
	}

	return nil
}

// handleUpgrade runs the connection handshake: upgrade first, then
// authenticate, so failures can be reported on the socket before it is
// closed.
func (s *wsServer) handleUpgrade(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	rawToken := credentialFromRequest(r)
	connectionID := uuid.New().String()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log(ctx).Warn("Upgrade failed", slog.Any("error", err))

		return
	}

	actor, err := s.handshake.Authenticate(ctx, rawToken, connectionID)
	if err != nil {
		s.rejectHandshake(ctx, conn, err)

		return
	}

	client := newClient(connectionID, *actor, conn, s)
	s.hub.add(client)

	s.log(ctx).Info("Connection established",
		slog.String("connectionID", connectionID),
		slog.String("kind", string(actor.Kind)),
		slog.String("identity", actor.Identity))

	client.enqueue(entity.EventConnected, connectedPayload(connectionID, *actor))

	go client.writePump()
	client.readPump(ctx)
}

// connectedPayload builds the CONNECTED event data: the connection id
// plus the authenticated actor's public projection. The entities carry
// no credential material; tokens and password hashes live elsewhere.
func connectedPayload(connectionID string, actor usecase.Actor) map[string]any {
	payload := map[string]any{
		"connectionId": connectionID,
		"kind":         actor.Kind,
		"identity":     actor.Identity,
	}
	if actor.Device != nil {
		payload["device"] = actor.Device
	}
	if actor.User != nil {
		payload["user"] = actor.User
	}

	return payload
}

// credentialFromRequest reads the device convention first (token query
// parameter), then the user convention (Authorization bearer header).
func credentialFromRequest(r *http.Request) string {
	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}

	header := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}

	return ""
}

func (s *wsServer) rejectHandshake(ctx context.Context, conn *websocket.Conn, err error) {
	payload := errorPayload(err)
	s.log(ctx).Warn("Handshake rejected", slog.String("reason", payload["error"]))

	_ = conn.SetWriteDeadline(time.Now().Add(s.writeWait))
	_ = conn.WriteJSON(outbound{Event: entity.ErrorEventName("connect"), Data: payload})
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, handshakeCloseReason(err)))
	_ = conn.Close()
}

func handshakeCloseReason(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return "HANDSHAKE_FAILED"
}

// consume drains the bus, fanning messages out to the live sockets of
// their recipients and honoring transport commands.
func (s *wsServer) consume() {
	ch := s.bus.Subscribe()
	for envelope := range ch {
		switch {
		case envelope.Message != nil:
			msg := envelope.Message
			for _, client := range s.hub.clientsFor(msg.Recipients) {
				client.enqueue(msg.Event, msg.Payload)
			}
		case envelope.Command != nil:
			if envelope.Command.Name == service.CommandShutdown {
				s.closeAll(context.Background())
			}
		}
	}
}

// disconnect runs the teardown path for one connection exactly once.
func (s *wsServer) disconnect(ctx context.Context, c *client) {
	if !s.hub.remove(c) {
		return
	}
	c.close()

	// The request context may already be gone; unregistering must still
	// reach the registry.
	unregisterCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.presence.Unregister(unregisterCtx, c.connectionID); err != nil {
		s.logger.Error("Failed to unregister connection",
			slog.String("connectionID", c.connectionID),
			slog.Any("error", err))
	}

	s.logger.Info("Connection closed", slog.String("connectionID", c.connectionID))
}

func (s *wsServer) closeAll(ctx context.Context) {
	for _, client := range s.hub.all() {
		s.disconnect(ctx, client)
	}
}

func (s *wsServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down WebSocket server")

	s.bus.PublishCommand(service.CommandShutdown)
	s.closeAll(shutdownCtx)

	if s.server == nil {
		return nil
	}

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
