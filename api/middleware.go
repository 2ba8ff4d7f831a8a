package api

import (
	"context"
	"net/http"
	"strings"

	"duochat/domain"
)

type contextKey string

const userKey contextKey = "user"

// requireAuth validates the "Authorization: Bearer <token>" header and
// injects the resolved user id into the request context. Register and
// login are the only routes mounted without it.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "authorization token is missing")
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")
		user, err := s.identity.Authenticate(tokenStr)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		ctx := context.WithValue(r.Context(), userKey, user)
		next(w, r.WithContext(ctx))
	}
}

func caller(r *http.Request) domain.User {
	user, _ := r.Context().Value(userKey).(domain.User)
	return user
}

func callerID(r *http.Request) string {
	return caller(r).ID
}
