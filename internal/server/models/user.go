// Package models contains the persistent data structures of the server.
package models

import "time"

// User is a registered account. The password digest is never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
