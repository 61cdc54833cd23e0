package repository

import (
	"context"
	"errors"

	"github.com/weconnect/weconnect/internal/model"
)

// Common errors for user store operations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")
)

// CreateUser appends a new user record. The duplicate-email check and
// the append happen under one lock, so two registrations with the same
// email cannot both pass the check.
func (s *Store) CreateUser(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == user.Email {
			return ErrEmailExists
		}
	}

	s.users = append(s.users, user)
	return nil
}

// GetUserByEmail returns a copy of the user with the given email.
// At most one record can match because CreateUser enforces uniqueness.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}

	return nil, ErrUserNotFound
}

// UpdateUserPassword replaces the stored password hash for the user
// with the given email. The hash is swapped whole: the record holds
// either the previous hash or the new one, never anything in between.
func (s *Store) UpdateUserPassword(ctx context.Context, email, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			s.users[i].PasswordHash = passwordHash
			return nil
		}
	}

	return ErrUserNotFound
}
