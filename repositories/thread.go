package repositories

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/samber/lo"

	"duochat/domain"
	apperrors "duochat/errors"
)

// IThreadDirectory resolves thread ids to their two participants.
// Threads are created once and never mutated afterwards.
type IThreadDirectory interface {
	CreateThread(userA, userB string) (domain.Thread, error)
	Resolve(id domain.ThreadID) (domain.Thread, error)
	ThreadsOf(userID string) ([]domain.Thread, error)
}

type ThreadDirectory struct {
	db *badger.DB
}

func NewThreadDirectory(db *badger.DB) *ThreadDirectory {
	return &ThreadDirectory{db: db}
}

type diskThread struct {
	ID        string    `cbor:"1,keyasint"`
	UserA     string    `cbor:"2,keyasint"`
	UserB     string    `cbor:"3,keyasint"`
	CreatedAt time.Time `cbor:"4,keyasint"`
}

func threadKey(id domain.ThreadID) []byte { return []byte("thread:" + string(id)) }

// pairKey indexes the unordered participant pair so that no second
// thread can ever be created for the same two users.
func pairKey(a, b string) []byte {
	first, second := domain.PairKey(a, b)
	return []byte("threadpair:" + first + ":" + second)
}

func memberKey(userID string, id domain.ThreadID) []byte {
	return []byte("threadmember:" + userID + ":" + string(id))
}

// CreateThread persists a new two-party thread. It fails with
// ErrSelfThread for a degenerate pair and ErrThreadAlreadyExists when
// the unordered pair already has a thread.
func (d *ThreadDirectory) CreateThread(userA, userB string) (domain.Thread, error) {
	if userA == userB {
		return domain.Thread{}, apperrors.ErrSelfThread
	}

	thread := domain.Thread{
		ID:        domain.NewThreadID(),
		UserA:     userA,
		UserB:     userB,
		CreatedAt: time.Now().UTC(),
	}

	data, err := marshal(fromDomainThread(thread))
	if err != nil {
		return domain.Thread{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = d.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(pairKey(userA, userB)); err == nil {
			return apperrors.ErrThreadAlreadyExists
		}
		if err := txn.Set(threadKey(thread.ID), data); err != nil {
			return err
		}
		if err := txn.Set(pairKey(userA, userB), []byte(thread.ID)); err != nil {
			return err
		}
		if err := txn.Set(memberKey(userA, thread.ID), nil); err != nil {
			return err
		}
		return txn.Set(memberKey(userB, thread.ID), nil)
	})
	if err != nil {
		return domain.Thread{}, err
	}
	return thread, nil
}

// Resolve loads a thread by id. Unknown ids yield ErrThreadNotFound.
func (d *ThreadDirectory) Resolve(id domain.ThreadID) (domain.Thread, error) {
	var record diskThread
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(threadKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cbor.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return domain.Thread{}, apperrors.ErrThreadNotFound
	}
	return toDomainThread(record), nil
}

// ThreadsOf lists every thread the user participates in, via the
// member index then a point lookup per thread.
func (d *ThreadDirectory) ThreadsOf(userID string) ([]domain.Thread, error) {
	var records []diskThread
	err := d.db.View(func(txn *badger.Txn) error {
		prefix := []byte("threadmember:" + userID + ":")
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			threadID := it.Item().Key()[len(prefix):]
			item, err := txn.Get(threadKey(domain.ThreadID(threadID)))
			if err != nil {
				return err
			}
			var record diskThread
			if err := item.Value(func(val []byte) error {
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
	return lo.Map(records, func(r diskThread, _ int) domain.Thread {
		return toDomainThread(r)
	}), nil
}

func fromDomainThread(t domain.Thread) diskThread {
	return diskThread{
		ID:        string(t.ID),
		UserA:     t.UserA,
		UserB:     t.UserB,
		CreatedAt: t.CreatedAt,
	}
}

func toDomainThread(r diskThread) domain.Thread {
	return domain.Thread{
		ID:        domain.ThreadID(r.ID),
		UserA:     r.UserA,
		UserB:     r.UserB,
		CreatedAt: r.CreatedAt,
	}
}
