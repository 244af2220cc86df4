// Package model defines domain entities for the application.
package model

import "time"

// User represents an account in the directory.
// PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser constructs a User with a fresh id and creation timestamp.
// The password hash must already be computed by the caller.
func NewUser(nome, email, passwordHash string) *User {
	return &User{
		ID:           NewID(),
		Nome:         nome,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
