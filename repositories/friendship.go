//go:generate go run go.uber.org/mock/mockgen -source=friendship.go -destination=../mocks/mock_friendship.go -package=mocks
package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"duochat/domain"
	apperrors "duochat/errors"
)

// IFriendshipOracle answers the single question the admission path
// needs: are these two users friends. Symmetric by contract.
type IFriendshipOracle interface {
	AreFriends(userA, userB string) (bool, error)
}

// IFriendshipRepository is the full social-graph store: the oracle
// plus the friend-request workflow that mutates it.
type IFriendshipRepository interface {
	IFriendshipOracle
	CreateRequest(fromUser, toUser string) (domain.FriendRequest, error)
	AcceptRequest(id, toUser string) error
	RejectRequest(id, toUser string) error
	PendingRequests(toUser string) ([]domain.FriendRequest, error)
	FriendsOf(userID string) ([]string, error)
}

type FriendshipRepository struct {
	db *badger.DB
}

func NewFriendshipRepository(db *badger.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

type diskFriendRequest struct {
	ID        string    `cbor:"1,keyasint"`
	FromUser  string    `cbor:"2,keyasint"`
	ToUser    string    `cbor:"3,keyasint"`
	CreatedAt time.Time `cbor:"4,keyasint"`
}

// Friendship rows are directed on disk; AreFriends probes both
// directions so the relation stays symmetric regardless of which
// side accepted.
func friendKey(userID, friendID string) []byte {
	return []byte("friend:" + userID + ":" + friendID)
}

func requestKey(toUser, id string) []byte {
	return []byte("freq:" + toUser + ":" + id)
}

// requestPairKey guards against duplicate requests for the same
// directed pair.
func requestPairKey(fromUser, toUser string) []byte {
	return []byte("freqpair:" + fromUser + ":" + toUser)
}

func (f *FriendshipRepository) AreFriends(userA, userB string) (bool, error) {
	var friends bool
	err := f.db.View(func(txn *badger.Txn) error {
		if _, err := txn.Get(friendKey(userA, userB)); err == nil {
			friends = true
			return nil
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if _, err := txn.Get(friendKey(userB, userA)); err == nil {
			friends = true
			return nil
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return nil
	})
	return friends, err
}

// CreateRequest records a pending friend request. Self-requests and
// duplicates for the same directed pair are rejected.
func (f *FriendshipRepository) CreateRequest(fromUser, toUser string) (domain.FriendRequest, error) {
	if fromUser == toUser {
		return domain.FriendRequest{}, apperrors.ErrSelfFriendRequest
	}

	request := domain.FriendRequest{
		ID:        uuid.NewString(),
		FromUser:  fromUser,
		ToUser:    toUser,
		CreatedAt: time.Now().UTC(),
	}

	data, err := marshal(fromDomainRequest(request))
	if err != nil {
		return domain.FriendRequest{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = f.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(requestPairKey(fromUser, toUser)); err == nil {
			return apperrors.ErrRequestAlreadySent
		}
		if err := txn.Set(requestKey(toUser, request.ID), data); err != nil {
			return err
		}
		return txn.Set(requestPairKey(fromUser, toUser), []byte(request.ID))
	})
	if err != nil {
		return domain.FriendRequest{}, err
	}
	return request, nil
}

// AcceptRequest deletes the pending request and writes the two
// reciprocal friendship rows in the same transaction.
func (f *FriendshipRepository) AcceptRequest(id, toUser string) error {
	return f.db.Update(func(txn *badger.Txn) error {
		request, err := getRequest(txn, toUser, id)
		if err != nil {
			return err
		}
		if err := deleteRequest(txn, request); err != nil {
			return err
		}
		now, err := marshal(time.Now().UTC())
		if err != nil {
			return err
		}
		if err := txn.Set(friendKey(request.FromUser, request.ToUser), now); err != nil {
			return err
		}
		return txn.Set(friendKey(request.ToUser, request.FromUser), now)
	})
}

// RejectRequest deletes the pending request without touching the
// friendship rows.
func (f *FriendshipRepository) RejectRequest(id, toUser string) error {
	return f.db.Update(func(txn *badger.Txn) error {
		request, err := getRequest(txn, toUser, id)
		if err != nil {
			return err
		}
		return deleteRequest(txn, request)
	})
}

// PendingRequests lists requests addressed to a user, oldest first.
func (f *FriendshipRepository) PendingRequests(toUser string) ([]domain.FriendRequest, error) {
	var records []diskFriendRequest
	err := f.db.View(func(txn *badger.Txn) error {
		prefix := []byte("freq:" + toUser + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record diskFriendRequest
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
	requests := lo.Map(records, func(r diskFriendRequest, _ int) domain.FriendRequest {
		return toDomainRequest(r)
	})
	return requests, nil
}

// FriendsOf returns the ids of every user this user has a directed
// friendship row towards. Rows are reciprocal, so one direction is
// enough for listing.
func (f *FriendshipRepository) FriendsOf(userID string) ([]string, error) {
	var friends []string
	err := f.db.View(func(txn *badger.Txn) error {
		prefix := []byte("friend:" + userID + ":")
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			friends = append(friends, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	return friends, err
}

func getRequest(txn *badger.Txn, toUser, id string) (diskFriendRequest, error) {
	item, err := txn.Get(requestKey(toUser, id))
	if err != nil {
		return diskFriendRequest{}, apperrors.ErrRequestNotFound
	}
	var record diskFriendRequest
	if err := item.Value(func(val []byte) error {
		return cbor.Unmarshal(val, &record)
	}); err != nil {
		return diskFriendRequest{}, err
	}
	return record, nil
}

func deleteRequest(txn *badger.Txn, request diskFriendRequest) error {
	if err := txn.Delete(requestKey(request.ToUser, request.ID)); err != nil {
		return err
	}
	return txn.Delete(requestPairKey(request.FromUser, request.ToUser))
}

func fromDomainRequest(r domain.FriendRequest) diskFriendRequest {
	return diskFriendRequest{ID: r.ID, FromUser: r.FromUser, ToUser: r.ToUser, CreatedAt: r.CreatedAt}
}

func toDomainRequest(r diskFriendRequest) domain.FriendRequest {
	return domain.FriendRequest{ID: r.ID, FromUser: r.FromUser, ToUser: r.ToUser, CreatedAt: r.CreatedAt}
}
