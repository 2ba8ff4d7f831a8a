package repositories

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"duochat/domain"
)

func TestMessageLedger_AppendAndList(t *testing.T) {
	req := require.New(t)
	ledger := NewMessageLedger(openTestDB(t), slog.Default())
	threadID := domain.NewThreadID()

	contents := []string{"first", "second", "third"}
	for _, content := range contents {
		message, err := ledger.Append(threadID, "u1", content)
		req.NoError(err)
		req.Equal(threadID, message.ThreadID)
		req.False(message.CreatedAt.IsZero())
	}

	messages, err := ledger.List(threadID)
	req.NoError(err)
	req.Len(messages, len(contents))

	// Ascending by timestamp, which here means insertion order.
	for i, message := range messages {
		req.Equal(contents[i], message.Content)
		if i > 0 {
			req.False(message.CreatedAt.Before(messages[i-1].CreatedAt))
		}
	}
}

func TestMessageLedger_CountExchanged(t *testing.T) {
	req := require.New(t)
	ledger := NewMessageLedger(openTestDB(t), slog.Default())
	threadID := domain.NewThreadID()
	otherThread := domain.NewThreadID()

	// Both directions count; other threads do not.
	_, err := ledger.Append(threadID, "u1", "hello")
	req.NoError(err)
	_, err = ledger.Append(threadID, "u2", "hi")
	req.NoError(err)
	_, err = ledger.Append(otherThread, "u3", "elsewhere")
	req.NoError(err)

	count, err := ledger.CountExchanged(threadID)
	req.NoError(err)
	req.Equal(2, count)

	count, err = ledger.CountExchanged(domain.NewThreadID())
	req.NoError(err)
	req.Equal(0, count)
}

func TestMessageLedger_ListEmptyThread(t *testing.T) {
	req := require.New(t)
	ledger := NewMessageLedger(openTestDB(t), slog.Default())

	messages, err := ledger.List(domain.NewThreadID())
	req.NoError(err)
	req.Empty(messages)
}
