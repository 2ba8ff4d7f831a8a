package errors

import "fmt"

// Handshake failures. Each one terminates the connection before any
// message is processed.
var (
	ErrInvalidToken     = fmt.Errorf("invalid or expired token")
	ErrUnknownUser      = fmt.Errorf("token subject does not resolve to a user")
	ErrThreadNotFound   = fmt.Errorf("thread not found")
	ErrNotAParticipant  = fmt.Errorf("user is not a participant of the thread")
)

// Admission rejections. Non-fatal: the connection stays active.
var (
	ErrEmptyMessage = fmt.Errorf("empty message")
	ErrLimitReached = fmt.Errorf("message limit reached for non-friends")
)

// Account and social graph failures surfaced by the HTTP API.
var (
	ErrUserNotFound          = fmt.Errorf("user not found")
	ErrUserAlreadyExists     = fmt.Errorf("user already exists")
	ErrInvalidPassword       = fmt.Errorf("password does not meet complexity rules")
	ErrInvalidCredentials    = fmt.Errorf("invalid credentials")
	ErrTokenGeneration       = fmt.Errorf("token generation failed")
	ErrSelfFriendRequest     = fmt.Errorf("cannot send a friend request to yourself")
	ErrRequestAlreadySent    = fmt.Errorf("friend request already sent")
	ErrRequestNotFound       = fmt.Errorf("friend request not found")
	ErrSelfThread            = fmt.Errorf("cannot create a thread with yourself")
	ErrThreadAlreadyExists   = fmt.Errorf("thread already exists for this pair")
)
