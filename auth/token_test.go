package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "duochat/errors"
)

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("test-secret-keep-it-long-enough", "duochat", time.Hour)

	token, err := manager.Generate("user-1", "alice")
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := manager.Validate(token)
	req.NoError(err)
	req.Equal("user-1", claims.UserID)
	req.Equal("alice", claims.Username)
	req.Equal("duochat", claims.Issuer)
}

func TestTokenExpired(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("test-secret-keep-it-long-enough", "duochat", -time.Minute)

	token, err := manager.Generate("user-1", "alice")
	req.NoError(err)

	_, err = manager.Validate(token)
	req.ErrorIs(err, apperrors.ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	req := require.New(t)
	issuing := NewTokenManager("secret-a-secret-a-secret-a", "duochat", time.Hour)
	validating := NewTokenManager("secret-b-secret-b-secret-b", "duochat", time.Hour)

	token, err := issuing.Generate("user-1", "alice")
	req.NoError(err)

	_, err = validating.Validate(token)
	req.ErrorIs(err, apperrors.ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	req := require.New(t)
	manager := NewTokenManager("test-secret-keep-it-long-enough", "duochat", time.Hour)

	_, err := manager.Validate("not-a-jwt")
	req.ErrorIs(err, apperrors.ErrInvalidToken)
}
