//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_ledger.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"duochat/domain"
)

// IMessageLedger is the append-only, thread-scoped message store.
// Messages are never mutated once stored. A thread joins exactly one
// unordered user pair, so the per-thread count is the pair's total
// exchanged count in either direction.
type IMessageLedger interface {
	Append(threadID domain.ThreadID, senderID, content string) (domain.Message, error)
	List(threadID domain.ThreadID) ([]domain.Message, error)
	CountExchanged(threadID domain.ThreadID) (int, error)
}

type MessageLedger struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageLedger(db *badger.DB, log *slog.Logger) *MessageLedger {
	return &MessageLedger{db: db, log: log}
}

type diskMessage struct {
	ID       string    `cbor:"1,keyasint"`
	ThreadID string    `cbor:"2,keyasint"`
	SenderID string    `cbor:"3,keyasint"`
	Content  string    `cbor:"4,keyasint"`
	At       time.Time `cbor:"5,keyasint"`
}

// messageKey is "msg:{thread}:{timestamp_padded}:{uuid}":
//  1. The 19-digit zero padding keeps chronological order equal to
//     lexicographical key order.
//  2. The UUID suffix disambiguates two messages stored in the same
//     nanosecond.
func messageKey(threadID domain.ThreadID, at time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", threadID, at.UnixNano(), id))
}

func messagePrefix(threadID domain.ThreadID) []byte {
	return []byte(fmt.Sprintf("msg:%s:", threadID))
}

// Append assigns the message its identity and server-side timestamp
// and persists it. The write is durable before Append returns, so the
// caller may broadcast as soon as it gets the message back.
func (m *MessageLedger) Append(threadID domain.ThreadID, senderID, content string) (domain.Message, error) {
	message := domain.Message{
		ID:        uuid.New(),
		ThreadID:  threadID,
		SenderID:  senderID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	data, err := marshal(fromDomainMessage(message))
	if err != nil {
		return domain.Message{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(threadID, message.CreatedAt, message.ID), data)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

// List returns the thread's full history ascending by timestamp.
// Stateless: callers may re-list at any time.
func (m *MessageLedger) List(threadID domain.ThreadID) ([]domain.Message, error) {
	var records []diskMessage
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := messagePrefix(threadID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record diskMessage
			if err := it.Item().Value(func(val []byte) error {
				return cbor.Unmarshal(val, &record)
			}); err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	messages, convErr := convertMessages(records)
	if convErr != nil {
		m.log.Error("corrupt message record", "thread_id", threadID, "error", convErr)
		return nil, convErr
	}
	return messages, nil
}

// CountExchanged counts every message ever stored in the thread,
// both directions. Keys-only iteration, no value reads.
func (m *MessageLedger) CountExchanged(threadID domain.ThreadID) (int, error) {
	count := 0
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := messagePrefix(threadID)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func convertMessages(records []diskMessage) ([]domain.Message, error) {
	var convErr error
	messages := lo.Map(records, func(r diskMessage, _ int) domain.Message {
		message, err := toDomainMessage(r)
		if err != nil {
			convErr = err
		}
		return message
	})
	if convErr != nil {
		return nil, convErr
	}
	return messages, nil
}

func fromDomainMessage(message domain.Message) diskMessage {
	return diskMessage{
		ID:       message.ID.String(),
		ThreadID: string(message.ThreadID),
		SenderID: message.SenderID,
		Content:  message.Content,
		At:       message.CreatedAt,
	}
}

func toDomainMessage(record diskMessage) (domain.Message, error) {
	parsedID, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:        parsedID,
		ThreadID:  domain.ThreadID(record.ThreadID),
		SenderID:  record.SenderID,
		Content:   record.Content,
		CreatedAt: record.At.UTC(),
	}, nil
}
