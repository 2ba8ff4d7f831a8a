// Package ws carries the real-time side of the chat: one goroutine per
// connection, a session state machine per socket, and group fan-out
// through the runtime registry.
package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"duochat/auth"
	"duochat/contract"
	"duochat/domain"
	"duochat/observability"
	"duochat/repositories"
	"duochat/services"
)

// RateLimitConfig bounds how fast one connection may submit frames.
type RateLimitConfig struct {
	MessagesPerSecond rate.Limit
	Burst             int
	Enabled           bool
}

type Server struct {
	log        *slog.Logger
	identity   auth.IIdentityResolver
	threads    repositories.IThreadDirectory
	admission  services.IAdmissionController
	registry   contract.IRegistry
	sendBuffer int
	rateLimit  RateLimitConfig
	monitor    *observability.Monitor
	upgrader   websocket.Upgrader
}

func NewServer(log *slog.Logger, identity auth.IIdentityResolver,
	threads repositories.IThreadDirectory, admission services.IAdmissionController,
	registry contract.IRegistry, sendBuffer int, rateLimit RateLimitConfig,
	monitor *observability.Monitor) *Server {
	return &Server{
		log:        log,
		identity:   identity,
		threads:    threads,
		admission:  admission,
		registry:   registry,
		sendBuffer: sendBuffer,
		rateLimit:  rateLimit,
		monitor:    monitor,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleThread serves "GET /ws/threads/{id}". The bearer token rides
// the query string because browsers cannot set headers on websocket
// dials. Authentication happens after the upgrade so rejections reach
// the client as distinct close codes instead of opaque HTTP errors.
func (s *Server) HandleThread(w http.ResponseWriter, r *http.Request) {
	threadID := domain.ThreadID(r.PathValue("id"))
	token := r.URL.Query().Get("token")

	socket, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err)
		return
	}

	conn := NewConn(socket, s.log, s.sendBuffer)

	var limiter *rate.Limiter
	if s.rateLimit.Enabled {
		limiter = rate.NewLimiter(s.rateLimit.MessagesPerSecond, s.rateLimit.Burst)
	}

	session := NewSession(conn, s.log, s.identity, s.threads, s.admission, s.registry,
		limiter, s.monitor)
	go session.Run(token, threadID)
}
