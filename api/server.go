// Package api exposes the account, social graph, and thread endpoints
// as a JSON HTTP API next to the websocket endpoint.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"duochat/auth"
	"duochat/contract"
	"duochat/repositories"
	"duochat/services"
	"duochat/ws"
)

type Server struct {
	log       *slog.Logger
	identity  auth.IIdentityResolver
	accounts  services.IAuthService
	friends   services.IFriendService
	threads   services.IThreadService
	directory repositories.IThreadDirectory
	admission services.IAdmissionController
	registry  contract.IRegistry
}

func NewServer(log *slog.Logger, identity auth.IIdentityResolver,
	accounts services.IAuthService, friends services.IFriendService,
	threads services.IThreadService, directory repositories.IThreadDirectory,
	admission services.IAdmissionController, registry contract.IRegistry) *Server {
	return &Server{
		log:       log,
		identity:  identity,
		accounts:  accounts,
		friends:   friends,
		threads:   threads,
		directory: directory,
		admission: admission,
		registry:  registry,
	}
}

// Routes mounts every HTTP route, the websocket endpoint included, on
// a fresh mux.
func (s *Server) Routes(socket *ws.Server) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)

	mux.HandleFunc("POST /api/friend-requests", s.requireAuth(s.handleSendFriendRequest))
	mux.HandleFunc("POST /api/friend-requests/{id}/respond", s.requireAuth(s.handleRespondFriendRequest))
	mux.HandleFunc("GET /api/friend-requests", s.requireAuth(s.handleListFriendRequests))
	mux.HandleFunc("GET /api/friends", s.requireAuth(s.handleListFriends))

	mux.HandleFunc("POST /api/threads", s.requireAuth(s.handleCreateThread))
	mux.HandleFunc("GET /api/threads", s.requireAuth(s.handleListThreads))
	mux.HandleFunc("GET /api/threads/{id}/messages", s.requireAuth(s.handleListMessages))
	mux.HandleFunc("POST /api/threads/{id}/messages", s.requireAuth(s.handleSendMessage))

	mux.HandleFunc("GET /ws/threads/{id}", socket.HandleThread)

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
