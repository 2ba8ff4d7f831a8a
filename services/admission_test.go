package services

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"duochat/domain"
	apperrors "duochat/errors"
	"duochat/mocks"
	"duochat/repositories"
)

func testThread() domain.Thread {
	return domain.Thread{ID: domain.NewThreadID(), UserA: "u1", UserB: "u2"}
}

func TestAdmissionController_Admit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	friends := mocks.NewMockIFriendshipOracle(ctrl)
	ledger := mocks.NewMockIMessageLedger(ctrl)
	controller := NewAdmissionController(friends, ledger, 20)
	thread := testThread()

	t.Run("rejects a sender outside the thread", func(t *testing.T) {
		req := require.New(t)
		_, err := controller.Admit(thread, "intruder", "hello")
		req.ErrorIs(err, apperrors.ErrNotAParticipant)
	})

	t.Run("rejects empty content without persistence", func(t *testing.T) {
		req := require.New(t)
		ledger.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		_, err := controller.Admit(thread, "u1", "")
		req.ErrorIs(err, apperrors.ErrEmptyMessage)
	})

	t.Run("friends bypass the cap entirely", func(t *testing.T) {
		req := require.New(t)
		friends.EXPECT().AreFriends("u1", "u2").Return(true, nil)
		// No CountExchanged call expected.
		ledger.EXPECT().Append(thread.ID, "u1", "hello").
			Return(domain.Message{Content: "hello"}, nil)

		message, err := controller.Admit(thread, "u1", "hello")
		req.NoError(err)
		req.Equal("hello", message.Content)
	})

	t.Run("non-friends below the cap are accepted", func(t *testing.T) {
		req := require.New(t)
		friends.EXPECT().AreFriends("u1", "u2").Return(false, nil)
		ledger.EXPECT().CountExchanged(thread.ID).Return(19, nil)
		ledger.EXPECT().Append(thread.ID, "u1", "hello").
			Return(domain.Message{Content: "hello"}, nil)

		_, err := controller.Admit(thread, "u1", "hello")
		req.NoError(err)
	})

	t.Run("non-friends at the cap are rejected", func(t *testing.T) {
		req := require.New(t)
		friends.EXPECT().AreFriends("u2", "u1").Return(false, nil)
		ledger.EXPECT().CountExchanged(thread.ID).Return(20, nil)
		ledger.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := controller.Admit(thread, "u2", "hello")
		req.ErrorIs(err, apperrors.ErrLimitReached)
	})

	t.Run("storage failure surfaces to the caller", func(t *testing.T) {
		req := require.New(t)
		friends.EXPECT().AreFriends("u1", "u2").Return(true, nil)
		ledger.EXPECT().Append(thread.ID, "u1", "hello").
			Return(domain.Message{}, fmt.Errorf("disk full"))

		_, err := controller.Admit(thread, "u1", "hello")
		req.Error(err)
		req.NotErrorIs(err, apperrors.ErrLimitReached)
	})
}

// The cap must hold exactly under concurrent senders racing near the
// boundary: the count-then-append sequence is serialized per pair.
func TestAdmissionController_ConcurrentCap(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	friendships := repositories.NewFriendshipRepository(db)
	ledger := repositories.NewMessageLedger(db, slog.Default())
	messageCap := 20
	controller := NewAdmissionController(friendships, ledger, messageCap)
	thread := testThread()

	const senders = 2
	const perSender = 25
	var accepted, rejected int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for s := 0; s < senders; s++ {
		wg.Add(1)
		sender := []string{"u1", "u2"}[s]
		go func() {
			defer wg.Done()
			for i := 0; i < perSender; i++ {
				_, err := controller.Admit(thread, sender, fmt.Sprintf("%s-%d", sender, i))
				mu.Lock()
				if err == nil {
					accepted++
				} else {
					req.ErrorIs(err, apperrors.ErrLimitReached)
					rejected++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	req.EqualValues(messageCap, accepted)
	req.EqualValues(senders*perSender-messageCap, rejected)

	count, err := ledger.CountExchanged(thread.ID)
	req.NoError(err)
	req.Equal(messageCap, count)
}

// Scenario: the pair becomes friends mid-conversation; the cap stops
// applying no matter how many messages were already exchanged.
func TestAdmissionController_FriendshipLiftsCap(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	friendships := repositories.NewFriendshipRepository(db)
	ledger := repositories.NewMessageLedger(db, slog.Default())
	controller := NewAdmissionController(friendships, ledger, 20)
	thread := testThread()

	for i := 0; i < 10; i++ {
		_, err := controller.Admit(thread, "u1", fmt.Sprintf("msg-%d", i))
		req.NoError(err)
	}

	request, err := friendships.CreateRequest("u1", "u2")
	req.NoError(err)
	req.NoError(friendships.AcceptRequest(request.ID, "u2"))

	// 11 through 30: all accepted even though the total passes 20.
	for i := 10; i < 30; i++ {
		_, err := controller.Admit(thread, "u1", fmt.Sprintf("msg-%d", i))
		req.NoError(err)
	}

	count, err := ledger.CountExchanged(thread.ID)
	req.NoError(err)
	req.Equal(30, count)
}
