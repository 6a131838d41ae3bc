package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locket-admin/internal/core/domain"
)

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()
	now := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Save(ctx, domain.Session{ID: "s1", Token: "a", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, store.Save(ctx, domain.Session{ID: "s2", Token: "b", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, store.Save(ctx, domain.Session{ID: "s3", Token: "c"}))
	require.NoError(t, store.Save(ctx, domain.Session{ID: "s2", Token: "b", DarkMode: true, ExpiresAt: now.Add(time.Hour)}))

	got, err := store.Get(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, got.DarkMode)

	n, err := store.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.Get(ctx, "s3")
	assert.NoError(t, err, "sessions without expiry are kept")

	require.NoError(t, store.Delete(ctx, "s3"))
	assert.ErrorIs(t, store.Delete(ctx, "s3"), domain.ErrNotFound)
}
