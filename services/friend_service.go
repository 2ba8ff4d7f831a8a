package services

import (
	"duochat/domain"
	apperrors "duochat/errors"
	"duochat/repositories"

	"github.com/samber/lo"
)

type IFriendService interface {
	SendRequest(fromUser, toUser string) (domain.FriendRequest, error)
	Accept(requestID, toUser string) error
	Reject(requestID, toUser string) error
	PendingRequests(toUser string) ([]domain.FriendRequest, error)
	Friends(userID string) ([]domain.User, error)
}

// FriendService drives the request workflow that flips a pair from
// non-friend to friend. Once Accept returns, the admission cap no
// longer applies to the pair.
type FriendService struct {
	friendships repositories.IFriendshipRepository
	users       repositories.IUserRepository
}

func NewFriendService(friendships repositories.IFriendshipRepository,
	users repositories.IUserRepository) *FriendService {
	return &FriendService{friendships: friendships, users: users}
}

func (s *FriendService) SendRequest(fromUser, toUser string) (domain.FriendRequest, error) {
	// The recipient must exist before a request is recorded.
	if _, err := s.users.GetUserByID(toUser); err != nil {
		return domain.FriendRequest{}, apperrors.ErrUserNotFound
	}
	return s.friendships.CreateRequest(fromUser, toUser)
}

func (s *FriendService) Accept(requestID, toUser string) error {
	return s.friendships.AcceptRequest(requestID, toUser)
}

func (s *FriendService) Reject(requestID, toUser string) error {
	return s.friendships.RejectRequest(requestID, toUser)
}

func (s *FriendService) PendingRequests(toUser string) ([]domain.FriendRequest, error) {
	return s.friendships.PendingRequests(toUser)
}

// Friends resolves the friend id list to user identities, skipping ids
// that no longer resolve.
func (s *FriendService) Friends(userID string) ([]domain.User, error) {
	ids, err := s.friendships.FriendsOf(userID)
	if err != nil {
		return nil, err
	}
	users := lo.FilterMap(ids, func(id string, _ int) (domain.User, bool) {
		user, err := s.users.GetUserByID(id)
		return user, err == nil
	})
	return users, nil
}
