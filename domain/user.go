// Package domain contains core concepts of the chat system.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// User is the identity a token resolves to. Owned by the account
// service; read-only for the messaging core.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}
