package runtime

import (
	"log/slog"
	"sync"

	"duochat/contract"
	"duochat/domain"
	"duochat/domain/event"
)

type group map[string]contract.EventSink

// Registry is the in-memory group membership map: thread id -> set of
// live connections. Process-lifetime state only; it starts empty after
// a restart and is rebuilt as clients reconnect.
type Registry struct {
	mu     sync.RWMutex
	log    *slog.Logger
	groups map[domain.ThreadID]group
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:    log,
		groups: make(map[domain.ThreadID]group),
	}
}

// Join subscribes a connection to a thread's group. Idempotent per
// connection: joining twice is a no-op.
func (r *Registry) Join(threadID domain.ThreadID, connID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.groups[threadID]
	if !ok {
		members = make(group)
		r.groups[threadID] = members
	}
	members[connID] = sink
}

// Leave removes a connection from a thread's group; no-op when the
// connection never joined. Empty groups are removed entirely so the
// map does not leak over connect/disconnect cycles.
func (r *Registry) Leave(threadID domain.ThreadID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.groups[threadID]
	if !ok {
		return
	}
	delete(members, connID)
	if len(members) == 0 {
		delete(r.groups, threadID)
	}
}

// Broadcast delivers a frame to every connection currently in the
// thread's group, the sender included. A failed delivery (peer closed,
// full send queue) is logged and skipped; it never blocks or fails
// delivery to the other members.
func (r *Registry) Broadcast(threadID domain.ThreadID, frame event.Frame) {
	r.mu.RLock()
	sinks := make(map[string]contract.EventSink, len(r.groups[threadID]))
	for connID, sink := range r.groups[threadID] {
		sinks[connID] = sink
	}
	r.mu.RUnlock()

	for connID, sink := range sinks {
		if err := sink.Deliver(frame); err != nil {
			r.log.Warn("dropping frame for connection",
				"conn_id", connID,
				"thread_id", threadID,
				"error", err)
		}
	}
}

// Members reports the current group size for a thread.
func (r *Registry) Members(threadID domain.ThreadID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groups[threadID])
}
