// Package memory provides the reference in-memory user store. Contents
// live for the process lifetime and are lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aichat/backend/internal/models"
	"github.com/aichat/backend/internal/password"
	"github.com/aichat/backend/internal/storage"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

// Store keeps users in creation order behind a mutex. IDs are assigned
// monotonically starting at 1 and never reused.
type Store struct {
	mu     sync.RWMutex
	users  []models.User
	lastID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Create hashes the password, then checks both uniqueness invariants and
// appends the new user as one critical section. The key derivation is
// deliberately slow, so it runs before the lock is taken.
func (s *Store) Create(ctx context.Context, username, email, plaintext string) (models.User, error) {
	hash, err := password.Hash(plaintext)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, storage.ErrEmailTaken
		}
	}
	for _, u := range s.users {
		if u.Username == username {
			return models.User{}, storage.ErrUsernameTaken
		}
	}

	s.lastID++
	user := models.User{
		ID:           s.lastID,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	s.users = append(s.users, user)

	return user.Public(), nil
}

// FindByEmail returns the user with the exact email, credential record
// included.
func (s *Store) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// FindByUsername returns the user with the exact username, credential
// record included.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

// ListAll returns every user in creation order with credential records
// cleared.
func (s *Store) ListAll(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Public())
	}
	return out, nil
}

// VerifyPassword reports whether the supplied password matches the user's
// stored credential record.
func (s *Store) VerifyPassword(user models.User, supplied string) bool {
	return password.Verify(user.PasswordHash, supplied)
}
