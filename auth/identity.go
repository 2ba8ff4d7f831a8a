package auth

import (
	"duochat/domain"
	apperrors "duochat/errors"
	"duochat/repositories"
)

// IIdentityResolver turns an opaque bearer token into a user identity.
// Safe for concurrent use; no side effects.
type IIdentityResolver interface {
	Authenticate(token string) (domain.User, error)
}

type IdentityResolver struct {
	tokens *TokenManager
	users  repositories.IUserRepository
}

func NewIdentityResolver(tokens *TokenManager, users repositories.IUserRepository) *IdentityResolver {
	return &IdentityResolver{tokens: tokens, users: users}
}

// Authenticate validates the JWT and resolves its subject against the
// user store. An expired or malformed token yields ErrInvalidToken, a
// valid token whose subject no longer exists yields ErrUnknownUser.
func (r *IdentityResolver) Authenticate(token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, apperrors.ErrInvalidToken
	}
	claims, err := r.tokens.Validate(token)
	if err != nil {
		return domain.User{}, apperrors.ErrInvalidToken
	}
	user, err := r.users.GetUserByID(claims.UserID)
	if err != nil {
		return domain.User{}, apperrors.ErrUnknownUser
	}
	return user, nil
}
