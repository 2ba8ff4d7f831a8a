package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"duochat/auth"
	apperrors "duochat/errors"
	"duochat/mocks"
	"duochat/repositories"
)

func testTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret-keep-it-long-enough", "duochat", 24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, testTokenManager())

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		username := "alice"
		email := "test@example.com"
		password := "ComplexPass123!"
		expectedUserID := "user-uuid"

		// Expect CreateUser to be called with a hashed password (not the plain one)
		mockRepo.EXPECT().
			CreateUser(username, email, gomock.Not(password)).
			Return(expectedUserID, nil).
			Times(1)

		token, err := svc.Register(username, email, password)

		req.NoError(err)
		req.NotEmpty(token)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)

		// Repository should NEVER be called
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		token, err := svc.Register("alice", "test@example.com", "simple")

		req.Error(err)
		req.ErrorIs(err, apperrors.ErrInvalidPassword)
		req.Empty(token)
	})

	t.Run("should fail when user already exists in repository", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			CreateUser("alice", "duplicate@example.com", gomock.Any()).
			Return("", apperrors.ErrUserAlreadyExists)

		token, err := svc.Register("alice", "duplicate@example.com", "ComplexPass123!")

		req.ErrorIs(err, apperrors.ErrUserAlreadyExists)
		req.Empty(token)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	tokens := testTokenManager()
	svc := NewAuthService(mockRepo, tokens)

	password := "ComplexPass123!"
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	t.Run("should log in with correct credentials", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetUserByUsername("alice").
			Return(repositories.User{ID: "user-1", Username: "alice", PasswordHash: hash}, nil)

		token, err := svc.Login("alice", password)
		req.NoError(err)

		claims, err := tokens.Validate(string(token))
		req.NoError(err)
		req.Equal("user-1", claims.UserID)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetUserByUsername("alice").
			Return(repositories.User{ID: "user-1", Username: "alice", PasswordHash: hash}, nil)

		_, err := svc.Login("alice", "WrongPassword1!")
		req.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	t.Run("should reject an unknown user with the same error", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetUserByUsername("nobody").
			Return(repositories.User{}, apperrors.ErrUserNotFound)

		_, err := svc.Login("nobody", password)
		req.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})
}
