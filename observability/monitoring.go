package observability

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

// Monitor aggregates live counters for the chat runtime. Counters are
// atomic so sessions can increment them without coordination; the Run
// loop folds them into a periodic structured log line.
type Monitor struct {
	log      *slog.Logger
	interval time.Duration

	connectionsOpened atomic.Uint64
	connectionsClosed atomic.Uint64
	messagesAccepted  atomic.Uint64
	messagesRejected  atomic.Uint64
}

func NewMonitor(log *slog.Logger, interval time.Duration) *Monitor {
	return &Monitor{log: log, interval: interval}
}

// Nil receivers are allowed so callers can leave monitoring unwired.

func (m *Monitor) ConnectionOpened() {
	if m != nil {
		m.connectionsOpened.Add(1)
	}
}

func (m *Monitor) ConnectionClosed() {
	if m != nil {
		m.connectionsClosed.Add(1)
	}
}

func (m *Monitor) MessageAccepted() {
	if m != nil {
		m.messagesAccepted.Add(1)
	}
}

func (m *Monitor) MessageRejected() {
	if m != nil {
		m.messagesRejected.Add(1)
	}
}

// Run logs a snapshot every interval until the context is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var mem runtime.MemStats
			runtime.ReadMemStats(&mem)
			m.log.Info("runtime stats",
				"connections_active", m.connectionsOpened.Load()-m.connectionsClosed.Load(),
				"connections_total", m.connectionsOpened.Load(),
				"messages_accepted", m.messagesAccepted.Load(),
				"messages_rejected", m.messagesRejected.Load(),
				"alloc_mb", mem.Alloc/1024/1024,
				"num_gc", mem.NumGC,
				"goroutines", runtime.NumGoroutine(),
			)
		}
	}
}
