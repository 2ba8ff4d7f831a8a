package services

import (
	"duochat/domain"
	apperrors "duochat/errors"
	"duochat/repositories"
)

type IThreadService interface {
	Create(creatorID, otherUserID string) (domain.Thread, error)
	ThreadsOf(userID string) ([]domain.Thread, error)
	History(threadID domain.ThreadID, userID string) ([]domain.Message, error)
}

type ThreadService struct {
	threads repositories.IThreadDirectory
	ledger  repositories.IMessageLedger
	users   repositories.IUserRepository
}

func NewThreadService(threads repositories.IThreadDirectory,
	ledger repositories.IMessageLedger, users repositories.IUserRepository) *ThreadService {
	return &ThreadService{threads: threads, ledger: ledger, users: users}
}

func (s *ThreadService) Create(creatorID, otherUserID string) (domain.Thread, error) {
	if creatorID == otherUserID {
		return domain.Thread{}, apperrors.ErrSelfThread
	}
	if _, err := s.users.GetUserByID(otherUserID); err != nil {
		return domain.Thread{}, apperrors.ErrUserNotFound
	}
	return s.threads.CreateThread(creatorID, otherUserID)
}

func (s *ThreadService) ThreadsOf(userID string) ([]domain.Thread, error) {
	return s.threads.ThreadsOf(userID)
}

// History returns the thread's messages ascending by timestamp, after
// checking the caller is one of the two participants.
func (s *ThreadService) History(threadID domain.ThreadID, userID string) ([]domain.Message, error) {
	thread, err := s.threads.Resolve(threadID)
	if err != nil {
		return nil, err
	}
	if !thread.IsParticipant(userID) {
		return nil, apperrors.ErrNotAParticipant
	}
	return s.ledger.List(threadID)
}
