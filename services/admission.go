package services

import (
	"fmt"
	"sync"

	"duochat/domain"
	apperrors "duochat/errors"
	"duochat/repositories"
)

// IAdmissionController decides whether a candidate message may enter a
// thread, and persists it when it may. Accepted messages are durable
// before Admit returns.
type IAdmissionController interface {
	Admit(thread domain.Thread, senderID, content string) (domain.Message, error)
}

// AdmissionController applies the friend-aware cap: friends may always
// talk, non-friends are limited to a configured number of exchanged
// messages (both directions) in their shared thread.
type AdmissionController struct {
	friends repositories.IFriendshipOracle
	ledger  repositories.IMessageLedger
	cap     int

	mu        sync.Mutex
	pairLocks map[string]*sync.Mutex
}

func NewAdmissionController(friends repositories.IFriendshipOracle,
	ledger repositories.IMessageLedger, messageCap int) *AdmissionController {
	return &AdmissionController{
		friends:   friends,
		ledger:    ledger,
		cap:       messageCap,
		pairLocks: make(map[string]*sync.Mutex),
	}
}

// Admit runs the admission algorithm:
//  1. the sender must be a participant of the thread,
//  2. empty content is rejected without persistence,
//  3. friends bypass the cap entirely,
//  4. otherwise the exchanged count must be below the cap.
//
// The count check and the append are serialized per unordered user
// pair, so two senders racing near the boundary cannot overshoot the
// cap. Locks are tiny and live for the process lifetime; the map is
// bounded by the number of active pairs.
func (c *AdmissionController) Admit(thread domain.Thread, senderID, content string) (domain.Message, error) {
	receiverID, ok := thread.OtherParticipant(senderID)
	if !ok {
		return domain.Message{}, apperrors.ErrNotAParticipant
	}

	if content == "" {
		return domain.Message{}, apperrors.ErrEmptyMessage
	}

	lock := c.pairLock(senderID, receiverID)
	lock.Lock()
	defer lock.Unlock()

	friends, err := c.friends.AreFriends(senderID, receiverID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("friendship lookup: %w", err)
	}

	if !friends {
		count, err := c.ledger.CountExchanged(thread.ID)
		if err != nil {
			return domain.Message{}, fmt.Errorf("exchanged count: %w", err)
		}
		if count >= c.cap {
			return domain.Message{}, apperrors.ErrLimitReached
		}
	}

	return c.ledger.Append(thread.ID, senderID, content)
}

func (c *AdmissionController) pairLock(a, b string) *sync.Mutex {
	first, second := domain.PairKey(a, b)
	key := first + ":" + second
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.pairLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		c.pairLocks[key] = lock
	}
	return lock
}
