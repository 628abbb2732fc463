package models

import "time"

// Session is one issued login. Deleting the row revokes the token that
// references it.
type Session struct {
	ID        string
	AccountID string
	ExpiresAt time.Time
	CreatedAt time.Time
}
