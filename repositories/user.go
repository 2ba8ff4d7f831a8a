//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"duochat/domain"
	apperrors "duochat/errors"
)

type IUserRepository interface {
	CreateUser(username, email, hashedPassword string) (string, error)
	GetUserByUsername(username string) (User, error)
	GetUserByID(id string) (domain.User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

// User is the repository-level representation of an account,
// including the credential hash the domain never sees.
type User struct {
	ID           string    `cbor:"1,keyasint"`
	Username     string    `cbor:"2,keyasint"`
	Email        string    `cbor:"3,keyasint"`
	PasswordHash string    `cbor:"4,keyasint"`
	CreatedAt    time.Time `cbor:"5,keyasint"`
}

func userKey(username string) []byte { return []byte("user:name:" + username) }
func userIDKey(id string) []byte     { return []byte("user:id:" + id) }

// CreateUser persists a new account under both its username and id keys.
// The username key doubles as the uniqueness guard.
func (u *UserRepository) CreateUser(username, email, hashedPassword string) (string, error) {
	record := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	data, err := marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(userKey(username)); err == nil {
			return apperrors.ErrUserAlreadyExists
		}
		if err := txn.Set(userKey(username), data); err != nil {
			return err
		}
		return txn.Set(userIDKey(record.ID), []byte(username))
	})
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetUserByUsername returns the full account record, hash included.
// Used by the login path only.
func (u *UserRepository) GetUserByUsername(username string) (User, error) {
	var record User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(username))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cbor.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return User{}, err
	}
	return record, nil
}

// GetUserByID resolves an id (the JWT subject) to a domain user.
func (u *UserRepository) GetUserByID(id string) (domain.User, error) {
	var record User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userIDKey(id))
		if err != nil {
			return err
		}
		var username []byte
		if err := item.Value(func(val []byte) error {
			username = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return err
		}
		item, err = txn.Get(userKey(string(username)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cbor.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return domain.User{}, err
	}
	return toDomainUser(record), nil
}

func toDomainUser(record User) domain.User {
	return domain.User{
		ID:        record.ID,
		Username:  record.Username,
		CreatedAt: record.CreatedAt,
	}
}
