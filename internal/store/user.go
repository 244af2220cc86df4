package store

import (
	"context"
	"errors"

	"github.com/recadario/recadario/internal/model"
)

// Common errors for user store operations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
)

// CreateUser inserts a new user. The duplicate-email check and the
// insert happen under one write-lock acquisition, so two concurrent
// creations with the same email cannot both succeed.
func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrEmailExists
		}
	}

	stored := *user
	s.users = append(s.users, &stored)
	return nil
}

// GetUserByEmail retrieves a user by exact email match.
// Callers receive a copy; mutations never reach the stored record.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}

	return nil, ErrUserNotFound
}

// GetUserByID retrieves a user by id.
func (s *Store) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}

	return nil, ErrUserNotFound
}
