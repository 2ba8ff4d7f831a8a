package domain

import (
	"time"

	"github.com/google/uuid"
)

type ThreadID string

// Thread is the single conversation between exactly two users.
// The unordered pair (UserA, UserB) is unique across all threads.
type Thread struct {
	ID        ThreadID
	UserA     string
	UserB     string
	CreatedAt time.Time
}

func NewThreadID() ThreadID {
	return ThreadID(uuid.NewString())
}

func (t Thread) IsParticipant(userID string) bool {
	return userID == t.UserA || userID == t.UserB
}

// OtherParticipant returns the peer of userID in the thread.
// The second return value is false when userID is not a participant.
func (t Thread) OtherParticipant(userID string) (string, bool) {
	switch userID {
	case t.UserA:
		return t.UserB, true
	case t.UserB:
		return t.UserA, true
	}
	return "", false
}

// PairKey is the canonical identifier of an unordered user pair.
// Both orderings of the same two users map to the same key.
func PairKey(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}
