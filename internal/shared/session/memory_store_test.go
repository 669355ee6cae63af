package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := New(1, "admin", "admin")
	require.NotEmpty(t, sess.ID)

	require.NoError(t, store.Save(ctx, sess, time.Minute))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "admin", got.Username)
}

func TestMemoryStoreMiss(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := New(1, "admin", "admin")
	require.NoError(t, store.Save(ctx, sess, -time.Second))

	_, err := store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := New(1, "admin", "admin")
	require.NoError(t, store.Save(ctx, sess, time.Minute))
	require.NoError(t, store.Delete(ctx, sess.ID))

	_, err := store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(ctx, sess.ID))
}

func TestNewSessionsGetUniqueIDs(t *testing.T) {
	a := New(1, "admin", "admin")
	b := New(1, "admin", "admin")
	assert.NotEqual(t, a.ID, b.ID)
}
