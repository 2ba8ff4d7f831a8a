// Package domain contains core concepts of the chat system.
// This file defines Message events and related rules.
// Messages are immutable and validated by the domain.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat event inside a thread.
type Message struct {
	ID        uuid.UUID
	ThreadID  ThreadID
	SenderID  string
	Content   string
	CreatedAt time.Time
}
