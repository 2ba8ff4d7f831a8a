package api

import (
	"errors"
	"net/http"
	"time"

	"duochat/domain"
	"duochat/domain/event"
	apperrors "duochat/errors"

	"github.com/samber/lo"
)

type threadResponse struct {
	ID        string `json:"id"`
	UserA     string `json:"user_a"`
	UserB     string `json:"user_b"`
	CreatedAt string `json:"created_at"`
}

func toThreadResponse(t domain.Thread) threadResponse {
	return threadResponse{
		ID:        string(t.ID),
		UserA:     t.UserA,
		UserB:     t.UserB,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

type messageResponse struct {
	ID        string `json:"id"`
	SenderID  string `json:"sender_id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID.String(),
		SenderID:  m.SenderID,
		Content:   m.Content,
		Timestamp: m.CreatedAt.Format(time.RFC3339Nano),
	}
}

func (s *Server) handleCreateThread(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	thread, err := s.threads.Create(callerID(r), req.UserID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, toThreadResponse(thread))
	case errors.Is(err, apperrors.ErrSelfThread):
		writeError(w, http.StatusBadRequest, "cannot create a thread with yourself")
	case errors.Is(err, apperrors.ErrThreadAlreadyExists):
		writeError(w, http.StatusBadRequest, "thread already exists")
	case errors.Is(err, apperrors.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	default:
		s.log.Error("thread creation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "thread creation failed")
	}
}

func (s *Server) handleListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := s.threads.ThreadsOf(callerID(r))
	if err != nil {
		s.log.Error("listing threads failed", "error", err)
		writeError(w, http.StatusInternalServerError, "listing threads failed")
		return
	}
	responses := lo.Map(threads, func(t domain.Thread, _ int) threadResponse {
		return toThreadResponse(t)
	})
	writeJSON(w, http.StatusOK, responses)
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	threadID := domain.ThreadID(r.PathValue("id"))

	messages, err := s.threads.History(threadID, callerID(r))
	switch {
	case err == nil:
		responses := lo.Map(messages, func(m domain.Message, _ int) messageResponse {
			return toMessageResponse(m)
		})
		writeJSON(w, http.StatusOK, responses)
	case errors.Is(err, apperrors.ErrThreadNotFound):
		writeError(w, http.StatusNotFound, "thread not found")
	case errors.Is(err, apperrors.ErrNotAParticipant):
		writeError(w, http.StatusForbidden, "you are not a participant of this thread")
	default:
		s.log.Error("listing messages failed", "error", err)
		writeError(w, http.StatusInternalServerError, "listing messages failed")
	}
}

// handleSendMessage pushes a message through the same admission
// controller as the websocket path, then fans it out to whoever is
// connected live.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	threadID := domain.ThreadID(r.PathValue("id"))

	thread, err := s.directory.Resolve(threadID)
	if err != nil {
		writeError(w, http.StatusNotFound, "thread not found")
		return
	}

	sender := caller(r)
	message, err := s.admission.Admit(thread, sender.ID, req.Content)
	switch {
	case err == nil:
		s.registry.Broadcast(thread.ID, event.ChatMessage{
			ID:      message.ID,
			Thread:  message.ThreadID,
			Sender:  sender.Username,
			Content: message.Content,
			At:      message.CreatedAt,
		})
		writeJSON(w, http.StatusCreated, toMessageResponse(message))
	case errors.Is(err, apperrors.ErrNotAParticipant):
		writeError(w, http.StatusForbidden, "you are not a participant of this thread")
	case errors.Is(err, apperrors.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, "message content is required")
	case errors.Is(err, apperrors.ErrLimitReached):
		writeError(w, http.StatusForbidden, "message limit reached for non-friends")
	default:
		s.log.Error("message send failed", "error", err)
		writeError(w, http.StatusInternalServerError, "message send failed")
	}
}
