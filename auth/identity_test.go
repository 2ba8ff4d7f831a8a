package auth

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"duochat/domain"
	apperrors "duochat/errors"
	"duochat/mocks"
)

func TestIdentityResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := NewTokenManager("test-secret-keep-it-long-enough", "duochat", time.Hour)
	users := mocks.NewMockIUserRepository(ctrl)
	resolver := NewIdentityResolver(manager, users)

	t.Run("resolves a valid token to its user", func(t *testing.T) {
		req := require.New(t)
		token, err := manager.Generate("user-1", "alice")
		req.NoError(err)

		users.EXPECT().GetUserByID("user-1").
			Return(domain.User{ID: "user-1", Username: "alice"}, nil)

		user, err := resolver.Authenticate(token)
		req.NoError(err)
		req.Equal("user-1", user.ID)
		req.Equal("alice", user.Username)
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		req := require.New(t)
		_, err := resolver.Authenticate("")
		req.ErrorIs(err, apperrors.ErrInvalidToken)
	})

	t.Run("rejects a token whose subject is gone", func(t *testing.T) {
		req := require.New(t)
		token, err := manager.Generate("ghost", "ghost")
		req.NoError(err)

		users.EXPECT().GetUserByID("ghost").
			Return(domain.User{}, fmt.Errorf("key not found"))

		_, err = resolver.Authenticate(token)
		req.ErrorIs(err, apperrors.ErrUnknownUser)
	})
}
