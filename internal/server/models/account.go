package models

import "time"

// Account is a registered identity. PasswordHash is a bcrypt hash and never
// leaves the server.
type Account struct {
	ID           string
	Email        string
	Name         string
	Phone        string
	PasswordHash []byte
	CreatedAt    time.Time
}
