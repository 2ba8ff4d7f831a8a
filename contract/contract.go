package contract

import (
	"duochat/domain"
	"duochat/domain/event"
)

// EventSink is one live connection's inbox. Deliver must not block the
// caller: implementations queue the frame and report a failure instead
// of waiting on a slow or dead peer.
type EventSink interface {
	Deliver(frame event.Frame) error
}

// IRegistry tracks which live connections are subscribed to which
// thread and fans accepted messages out to them.
type IRegistry interface {
	Join(threadID domain.ThreadID, connID string, sink EventSink)
	Leave(threadID domain.ThreadID, connID string)
	Broadcast(threadID domain.ThreadID, frame event.Frame)
}
