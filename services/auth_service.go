package services

import (
	"fmt"

	"duochat/auth"
	apperrors "duochat/errors"
	"duochat/repositories"
)

type IAuthService interface {
	Register(username, email, password string) (Token, error)
	Login(username, password string) (Token, error)
}

type AuthService struct {
	users  repositories.IUserRepository
	tokens *auth.TokenManager
}

type Token string

func NewAuthService(users repositories.IUserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(username, email, password string) (Token, error) {
	valReq := auth.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	// 1. Validate business rules (username, email format, password complexity)
	// before any expensive cryptographic operation.
	if err := auth.ValidateRegister(valReq); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidPassword, err)
	}

	// 2. Hash the password with Argon2id. Done here to keep the
	// repository unaware of plain passwords.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	userID, err := s.users.CreateUser(username, email, hashedPassword)
	if err != nil {
		return "", err // Propagates ErrUserAlreadyExists when the username is taken
	}

	token, err := s.tokens.Generate(userID, username)
	if err != nil {
		return "", apperrors.ErrTokenGeneration
	}
	return Token(token), nil
}

func (s *AuthService) Login(username, password string) (Token, error) {
	user, err := s.users.GetUserByUsername(username)
	if err != nil {
		// Generic error to prevent user enumeration attacks
		return "", apperrors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return "", apperrors.ErrTokenGeneration
	}
	return Token(token), nil
}
