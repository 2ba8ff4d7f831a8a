package domain

import "time"

// Friendship is one directed row of the symmetric friend relation.
// Accepting a request materializes two reciprocal rows, but readers
// must treat a single row in either direction as "friends".
type Friendship struct {
	UserID    string
	FriendID  string
	CreatedAt time.Time
}

// FriendRequest is a pending invitation from one user to another.
// Accepting it creates the reciprocal Friendship rows and deletes
// the request; rejecting it deletes the request.
type FriendRequest struct {
	ID        string
	FromUser  string
	ToUser    string
	CreatedAt time.Time
}
