package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "duochat/errors"
)

func TestFriendshipRepository_RequestWorkflow(t *testing.T) {
	req := require.New(t)
	repository := NewFriendshipRepository(openTestDB(t))

	request, err := repository.CreateRequest("u1", "u2")
	req.NoError(err)
	req.Equal("u1", request.FromUser)
	req.Equal("u2", request.ToUser)

	pending, err := repository.PendingRequests("u2")
	req.NoError(err)
	req.Len(pending, 1)

	friends, err := repository.AreFriends("u1", "u2")
	req.NoError(err)
	req.False(friends)

	req.NoError(repository.AcceptRequest(request.ID, "u2"))

	// Accept is symmetric and consumes the request.
	friends, err = repository.AreFriends("u1", "u2")
	req.NoError(err)
	req.True(friends)
	friends, err = repository.AreFriends("u2", "u1")
	req.NoError(err)
	req.True(friends)

	pending, err = repository.PendingRequests("u2")
	req.NoError(err)
	req.Empty(pending)
}

func TestFriendshipRepository_Reject(t *testing.T) {
	req := require.New(t)
	repository := NewFriendshipRepository(openTestDB(t))

	request, err := repository.CreateRequest("u1", "u2")
	req.NoError(err)
	req.NoError(repository.RejectRequest(request.ID, "u2"))

	friends, err := repository.AreFriends("u1", "u2")
	req.NoError(err)
	req.False(friends)

	// A rejected request may be sent again.
	_, err = repository.CreateRequest("u1", "u2")
	req.NoError(err)
}

func TestFriendshipRepository_RequestGuards(t *testing.T) {
	req := require.New(t)
	repository := NewFriendshipRepository(openTestDB(t))

	_, err := repository.CreateRequest("u1", "u1")
	req.ErrorIs(err, apperrors.ErrSelfFriendRequest)

	_, err = repository.CreateRequest("u1", "u2")
	req.NoError(err)
	_, err = repository.CreateRequest("u1", "u2")
	req.ErrorIs(err, apperrors.ErrRequestAlreadySent)

	err = repository.AcceptRequest("no-such-id", "u2")
	req.ErrorIs(err, apperrors.ErrRequestNotFound)

	// Responding as anyone but the recipient must not find the request.
	pending, err := repository.PendingRequests("u2")
	req.NoError(err)
	req.Len(pending, 1)
	err = repository.AcceptRequest(pending[0].ID, "u3")
	req.ErrorIs(err, apperrors.ErrRequestNotFound)
}

func TestFriendshipRepository_FriendsOf(t *testing.T) {
	req := require.New(t)
	repository := NewFriendshipRepository(openTestDB(t))

	first, err := repository.CreateRequest("u2", "u1")
	req.NoError(err)
	req.NoError(repository.AcceptRequest(first.ID, "u1"))
	second, err := repository.CreateRequest("u3", "u1")
	req.NoError(err)
	req.NoError(repository.AcceptRequest(second.ID, "u1"))

	friends, err := repository.FriendsOf("u1")
	req.NoError(err)
	req.ElementsMatch([]string{"u2", "u3"}, friends)
}
