package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aichat/backend/internal/storage"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	alice, err := store.Create(ctx, "alice", "a@x.com", "secret123")
	require.NoError(t, err)
	bob, err := store.Create(ctx, "bob", "b@x.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, int64(1), alice.ID)
	assert.Equal(t, int64(2), bob.ID)
	assert.False(t, alice.CreatedAt.IsZero())
	assert.Empty(t, alice.PasswordHash, "create must not return the credential record")
}

func TestCreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Create(ctx, "alice", "a@x.com", "secret123")
	require.NoError(t, err)

	_, err = store.Create(ctx, "bob", "a@x.com", "secret123")
	assert.ErrorIs(t, err, storage.ErrEmailTaken)

	users, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

func TestCreateDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Create(ctx, "alice", "a@x.com", "secret123")
	require.NoError(t, err)

	_, err = store.Create(ctx, "alice", "b@x.com", "secret123")
	assert.ErrorIs(t, err, storage.ErrUsernameTaken)
}

func TestCreateChecksEmailBeforeUsername(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Create(ctx, "alice", "a@x.com", "secret123")
	require.NoError(t, err)

	// Both invariants violated: the email conflict wins.
	_, err = store.Create(ctx, "alice", "a@x.com", "secret123")
	assert.ErrorIs(t, err, storage.ErrEmailTaken)
}

func TestLookupsAreExactMatch(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Create(ctx, "alice", "a@x.com", "secret123")
	require.NoError(t, err)

	found, err := store.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.NotEmpty(t, found.PasswordHash, "lookups retain the record for login")

	_, err = store.FindByEmail(ctx, "A@X.COM")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	_, err = store.FindByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListAllOrderAndRedaction(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	names := []string{"alice", "bob", "carol"}
	for _, name := range names {
		_, err := store.Create(ctx, name, name+"@x.com", "secret123")
		require.NoError(t, err)
	}

	users, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i, u := range users {
		assert.Equal(t, names[i], u.Username)
		assert.Equal(t, int64(i+1), u.ID)
		assert.Empty(t, u.PasswordHash)
	}
}

func TestVerifyPassword(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Create(ctx, "alice", "a@x.com", "secret123")
	require.NoError(t, err)
	stored, err := store.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	assert.True(t, store.VerifyPassword(stored, "secret123"))
	assert.False(t, store.VerifyPassword(stored, "wrong"))
}

func TestConcurrentCreateSameEmail(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	const n = 16
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.Create(ctx, "alice", "a@x.com", "secret123")
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			conflicted++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one registration wins")
	assert.Equal(t, n-1, conflicted)

	users, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
