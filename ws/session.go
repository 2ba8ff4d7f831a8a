package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"duochat/auth"
	"duochat/contract"
	"duochat/domain"
	"duochat/domain/event"
	apperrors "duochat/errors"
	"duochat/observability"
	"duochat/repositories"
	"duochat/services"
)

// State is the connection session's lifecycle position. Closed is
// terminal and reachable from every other state.
type State int

const (
	Connecting State = iota
	Authenticated
	Authorized
	Active
	Closed
)

// inboundFrame is the only message shape a client may send once
// Active: {"message": "..."}.
type inboundFrame struct {
	Message string `json:"message"`
}

// Session orchestrates one connection through
// Connecting -> Authenticated -> Authorized -> Active -> Closed.
// No inbound data is processed before Active; handshake failures close
// the connection with a distinct code and never register it in a group.
type Session struct {
	state  State
	conn   *Conn
	log    *slog.Logger
	user   domain.User
	thread domain.Thread

	identity  auth.IIdentityResolver
	threads   repositories.IThreadDirectory
	admission services.IAdmissionController
	registry  contract.IRegistry
	limiter   *rate.Limiter
	monitor   *observability.Monitor
}

func NewSession(conn *Conn, log *slog.Logger,
	identity auth.IIdentityResolver, threads repositories.IThreadDirectory,
	admission services.IAdmissionController, registry contract.IRegistry,
	limiter *rate.Limiter, monitor *observability.Monitor) *Session {
	return &Session{
		state:     Connecting,
		conn:      conn,
		log:       log,
		identity:  identity,
		threads:   threads,
		admission: admission,
		registry:  registry,
		limiter:   limiter,
		monitor:   monitor,
	}
}

// Run drives the session to completion. It returns once the connection
// is Closed; the deferred Leave runs on every exit path, and Leave
// itself tolerates a connection that never joined.
func (s *Session) Run(token string, threadID domain.ThreadID) {
	defer s.close()

	if !s.authenticate(token) {
		return
	}
	if !s.authorize(threadID) {
		return
	}

	s.registry.Join(s.thread.ID, s.conn.ID(), s.conn)
	defer s.registry.Leave(s.thread.ID, s.conn.ID())
	s.monitor.ConnectionOpened()
	defer s.monitor.ConnectionClosed()
	s.state = Active

	go s.conn.writePump()
	s.readLoop()
}

// authenticate: Connecting -> Authenticated, or Closed with 4401.
func (s *Session) authenticate(token string) bool {
	user, err := s.identity.Authenticate(token)
	if err != nil {
		s.log.Info("handshake rejected", "conn_id", s.conn.ID(), "error", err)
		s.conn.closeWith(CloseUnauthenticated, "authentication failed")
		s.state = Closed
		return false
	}
	s.user = user
	s.state = Authenticated
	return true
}

// authorize: Authenticated -> Authorized, or Closed with 4404/4403.
func (s *Session) authorize(threadID domain.ThreadID) bool {
	thread, err := s.threads.Resolve(threadID)
	if err != nil {
		s.log.Info("unknown thread", "conn_id", s.conn.ID(), "thread_id", threadID)
		s.conn.closeWith(CloseThreadNotFound, "thread not found")
		s.state = Closed
		return false
	}
	if !thread.IsParticipant(s.user.ID) {
		s.log.Info("not a participant",
			"conn_id", s.conn.ID(), "user_id", s.user.ID, "thread_id", threadID)
		s.conn.closeWith(CloseForbidden, "not a participant")
		s.state = Closed
		return false
	}
	s.thread = thread
	s.state = Authorized
	return true
}

// readLoop processes inbound frames until the client disconnects or a
// protocol violation closes the socket. Admission failures are
// per-message: they answer the sender and keep the session Active.
func (s *Session) readLoop() {
	s.conn.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.conn.SetPongHandler(func(string) error {
		return s.conn.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := s.conn.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debug("read error", "conn_id", s.conn.ID(), "error", err)
			}
			return
		}

		if s.limiter != nil && !s.limiter.Allow() {
			s.log.Warn("rate limit exceeded",
				"conn_id", s.conn.ID(), "user_id", s.user.ID)
			s.conn.closeWith(websocket.ClosePolicyViolation, "rate limit exceeded")
			return
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			// Malformed frames are ignored, same as empty ones.
			continue
		}
		s.handleMessage(frame.Message)
	}
}

// handleMessage runs one frame through the admission controller and
// reacts per the rejection taxonomy: broadcast on accept, sender-only
// notice on LimitReached or storage failure, silence on empty content.
func (s *Session) handleMessage(content string) {
	message, err := s.admission.Admit(s.thread, s.user.ID, content)
	switch {
	case err == nil:
		s.monitor.MessageAccepted()
		s.registry.Broadcast(s.thread.ID, event.ChatMessage{
			ID:      message.ID,
			Thread:  message.ThreadID,
			Sender:  s.user.Username,
			Content: message.Content,
			At:      message.CreatedAt,
		})
	case errors.Is(err, apperrors.ErrEmptyMessage):
		// Silent no-op: no frame back, nothing persisted.
	case errors.Is(err, apperrors.ErrLimitReached):
		s.monitor.MessageRejected()
		if err := s.conn.Deliver(event.LimitReached{
			Thread: s.thread.ID,
			Reason: "message limit reached for non-friends",
		}); err != nil {
			s.log.Warn("rejection notice dropped", "conn_id", s.conn.ID(), "error", err)
		}
	case errors.Is(err, apperrors.ErrNotAParticipant):
		// Cannot happen after authorization; treat as a protocol error.
		s.conn.closeWith(CloseForbidden, "not a participant")
	default:
		// Storage failure: at-most-once attempt, connection stays open.
		s.log.Error("message admission failed",
			"conn_id", s.conn.ID(), "thread_id", s.thread.ID, "error", err)
		if err := s.conn.Deliver(event.ErrorNotice{
			Thread: s.thread.ID,
			Reason: "message could not be stored",
		}); err != nil {
			s.log.Warn("error notice dropped", "conn_id", s.conn.ID(), "error", err)
		}
	}
}

func (s *Session) close() {
	s.conn.close()
	s.state = Closed
}
