package api

import (
	"errors"
	"net/http"
	"time"

	"duochat/domain"
	apperrors "duochat/errors"

	"github.com/samber/lo"
)

type friendRequestResponse struct {
	ID        string `json:"id"`
	FromUser  string `json:"from_user"`
	ToUser    string `json:"to_user"`
	CreatedAt string `json:"created_at"`
}

func toFriendRequestResponse(r domain.FriendRequest) friendRequestResponse {
	return friendRequestResponse{
		ID:        r.ID,
		FromUser:  r.FromUser,
		ToUser:    r.ToUser,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func (s *Server) handleSendFriendRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ToUserID string `json:"to_user_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ToUserID == "" {
		writeError(w, http.StatusBadRequest, "to_user_id is required")
		return
	}

	request, err := s.friends.SendRequest(callerID(r), req.ToUserID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, toFriendRequestResponse(request))
	case errors.Is(err, apperrors.ErrSelfFriendRequest):
		writeError(w, http.StatusBadRequest, "cannot send a friend request to yourself")
	case errors.Is(err, apperrors.ErrRequestAlreadySent):
		writeError(w, http.StatusBadRequest, "friend request already sent")
	case errors.Is(err, apperrors.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	default:
		s.log.Error("friend request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "friend request failed")
	}
}

func (s *Server) handleRespondFriendRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action string `json:"action"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	requestID := r.PathValue("id")

	var err error
	switch req.Action {
	case "accept":
		err = s.friends.Accept(requestID, callerID(r))
	case "reject":
		err = s.friends.Reject(requestID, callerID(r))
	default:
		writeError(w, http.StatusBadRequest, "invalid action")
		return
	}

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"detail": "friend request " + req.Action + "ed"})
	case errors.Is(err, apperrors.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, "friend request not found")
	default:
		s.log.Error("friend request response failed", "error", err)
		writeError(w, http.StatusInternalServerError, "friend request response failed")
	}
}

func (s *Server) handleListFriendRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := s.friends.PendingRequests(callerID(r))
	if err != nil {
		s.log.Error("listing friend requests failed", "error", err)
		writeError(w, http.StatusInternalServerError, "listing friend requests failed")
		return
	}
	responses := lo.Map(requests, func(req domain.FriendRequest, _ int) friendRequestResponse {
		return toFriendRequestResponse(req)
	})
	writeJSON(w, http.StatusOK, responses)
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := s.friends.Friends(callerID(r))
	if err != nil {
		s.log.Error("listing friends failed", "error", err)
		writeError(w, http.StatusInternalServerError, "listing friends failed")
		return
	}
	responses := lo.Map(friends, func(u domain.User, _ int) userResponse {
		return userResponse{ID: u.ID, Username: u.Username}
	})
	writeJSON(w, http.StatusOK, responses)
}
