package ws

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"duochat/domain/event"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Application close codes, in the 4000-4999 range reserved for private
// use. The client must be able to distinguish "who are you" from
// "you may not enter this thread".
const (
	CloseUnauthenticated = 4401
	CloseForbidden       = 4403
	CloseThreadNotFound  = 4404
)

// Conn wraps one websocket connection with a buffered outbound queue.
// All writes to the socket go through the write pump, so frames queued
// by Deliver reach the peer in queue order.
type Conn struct {
	id   string
	conn *websocket.Conn
	log  *slog.Logger
	send chan []byte

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

func NewConn(conn *websocket.Conn, log *slog.Logger, sendBuffer int) *Conn {
	return &Conn{
		id:   uuid.NewString(),
		conn: conn,
		log:  log,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

func (c *Conn) ID() string {
	return c.id
}

// Deliver encodes the frame and queues it for the write pump. It never
// blocks: when the connection is closed or its queue is full the frame
// is dropped and an error returned, which the registry logs and skips.
func (c *Conn) Deliver(frame event.Frame) error {
	data, err := event.Encode(frame)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("connection %s closed", c.id)
	}
	select {
	case c.send <- data:
		return nil
	default:
		return fmt.Errorf("send queue full for connection %s", c.id)
	}
}

// writePump serializes all socket writes: queued frames and the
// keepalive pings. It exits when the connection is closed.
func (c *Conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

// closeWith sends a close frame with the given application code and
// tears the socket down. Safe to call more than once.
func (c *Conn) closeWith(code int, reason string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.done)
	c.mu.Unlock()

	message := websocket.FormatCloseMessage(code, reason)
	deadline := time.Now().Add(time.Second)
	_ = c.conn.WriteControl(websocket.CloseMessage, message, deadline)
	_ = c.conn.Close()
}

func (c *Conn) close() {
	c.closeWith(websocket.CloseNormalClosure, "")
}
