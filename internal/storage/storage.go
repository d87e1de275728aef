package storage

import (
	"context"
	"errors"

	"github.com/aichat/backend/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrEmailTaken indicates another user already holds the email address.
var ErrEmailTaken = errors.New("email already registered")

// ErrUsernameTaken indicates another user already holds the username.
var ErrUsernameTaken = errors.New("username already taken")

// UserStore captures the persistence operations needed by handlers.
//
// Create hashes the plaintext password and enforces both uniqueness
// invariants atomically, checking email before username. Find results
// retain the stored credential record (needed by login); Create and
// ListAll return users with the record cleared.
type UserStore interface {
	Create(ctx context.Context, username, email, password string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
	VerifyPassword(user models.User, supplied string) bool
}
