// Package event defines the closed set of frames a session can push to
// a connected client. Dispatch is done on the concrete type, never on a
// string tag: the wire "type" field is produced at encoding time only.
package event

import (
	"encoding/json"
	"time"

	"duochat/domain"

	"github.com/google/uuid"
)

// Frame is a closed variant: ChatMessage, LimitReached or ErrorNotice.
type Frame interface {
	ThreadID() domain.ThreadID
	wire() any
}

// ChatMessage is broadcast to every subscriber of the thread,
// the sender included.
type ChatMessage struct {
	ID      uuid.UUID
	Thread  domain.ThreadID
	Sender  string
	Content string
	At      time.Time
}

func (m ChatMessage) ThreadID() domain.ThreadID { return m.Thread }

func (m ChatMessage) wire() any {
	return struct {
		Type      string `json:"type"`
		Message   string `json:"message"`
		Sender    string `json:"sender"`
		Timestamp string `json:"timestamp"`
	}{
		Type:      "chat.message",
		Message:   m.Content,
		Sender:    m.Sender,
		Timestamp: m.At.UTC().Format(time.RFC3339Nano),
	}
}

// LimitReached is sent to the originating connection only, never broadcast.
type LimitReached struct {
	Thread domain.ThreadID
	Reason string
}

func (l LimitReached) ThreadID() domain.ThreadID { return l.Thread }

func (l LimitReached) wire() any {
	return struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}{Type: "limit_reached", Message: l.Reason}
}

// ErrorNotice reports a storage failure to the sender. The connection
// stays active and the failed message is not retried.
type ErrorNotice struct {
	Thread domain.ThreadID
	Reason string
}

func (e ErrorNotice) ThreadID() domain.ThreadID { return e.Thread }

func (e ErrorNotice) wire() any {
	return struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}{Type: "error", Message: e.Reason}
}

// Encode renders a frame to its wire JSON.
func Encode(f Frame) ([]byte, error) {
	return json.Marshal(f.wire())
}
