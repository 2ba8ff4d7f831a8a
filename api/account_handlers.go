package api

import (
	"errors"
	"net/http"

	apperrors "duochat/errors"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := s.accounts.Register(req.Username, req.Email, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, tokenResponse{Token: string(token)})
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		writeError(w, http.StatusConflict, "username already taken")
	case errors.Is(err, apperrors.ErrInvalidPassword):
		writeError(w, http.StatusBadRequest, "invalid registration data")
	default:
		s.log.Error("registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "registration failed")
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := s.accounts.Login(req.Username, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, tokenResponse{Token: string(token)})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	default:
		s.log.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
	}
}
