// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered member of the directory.
// Email is unique across all users. PasswordHash is the only field
// that changes after registration; users are never deleted.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthContext carries the verified identity of the acting user
// through a request's context after the auth middleware has run.
type AuthContext struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}
