package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroline/astroline-server/internal/model"
)

func TestSessionStore_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(time.Hour)
	defer store.Stop()

	session := model.Session{
		ID:        "sess-1",
		UserID:    1,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Create(ctx, session))

	got, err := store.GetByID(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	_, err = store.GetByID(ctx, "sess-1")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSessionStore_ExpiredBeforePrune(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(time.Hour)
	defer store.Stop()

	require.NoError(t, store.Create(ctx, model.Session{
		ID:        "sess-1",
		UserID:    1,
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-time.Hour),
	}))

	_, err := store.GetByID(ctx, "sess-1")
	assert.ErrorIs(t, err, model.ErrSessionExpired)
}

func TestSessionStore_PruneDropsExpired(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(10 * time.Millisecond)
	defer store.Stop()

	require.NoError(t, store.Create(ctx, model.Session{
		ID:        "stale",
		UserID:    1,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))
	require.NoError(t, store.Create(ctx, model.Session{
		ID:        "fresh",
		UserID:    2,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		_, stale := store.sessions["stale"]
		_, fresh := store.sessions["fresh"]
		return !stale && fresh
	}, time.Second, 10*time.Millisecond)
}
