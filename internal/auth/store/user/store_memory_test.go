package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consentd/internal/auth/models"
	id "consentd/pkg/domain"
	"consentd/pkg/platform/sentinel"
)

func newTestUser(username string) *models.User {
	return &models.User{
		ID:           id.NewUserID(),
		Username:     username,
		PasswordHash: "$2a$08$fakehashfakehashfakehash",
		CreatedAt:    time.Now(),
	}
}

func TestInMemoryStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and finds a user", func(t *testing.T) {
		store := New()
		user := newTestUser("alice")
		require.NoError(t, store.Save(ctx, user))

		found, err := store.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, user.PasswordHash, found.PasswordHash)
	})

	t.Run("duplicate username", func(t *testing.T) {
		store := New()
		require.NoError(t, store.Save(ctx, newTestUser("alice")))

		err := store.Save(ctx, newTestUser("alice"))
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel.ErrAlreadyUsed)
	})

	t.Run("nil user", func(t *testing.T) {
		store := New()
		assert.Error(t, store.Save(ctx, nil))
	})

	t.Run("missing fields", func(t *testing.T) {
		store := New()
		err := store.Save(ctx, &models.User{ID: id.NewUserID(), Username: "alice"})
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel.ErrInvalidInput)
	})

	t.Run("stores a copy", func(t *testing.T) {
		store := New()
		user := newTestUser("alice")
		require.NoError(t, store.Save(ctx, user))

		user.PasswordHash = "mutated"

		found, err := store.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", found.PasswordHash)
	})
}

func TestInMemoryStore_FindByUsername(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.FindByUsername(ctx, "nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
