package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	_, err = store.Get(ctx, KeyLanguage)
	assert.ErrorIs(t, err, ErrNoValue)

	require.NoError(t, store.Put(ctx, KeyLanguage, "ar"))

	value, err := store.Get(ctx, KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "ar", value)

	// Overwrite keeps a single row per key.
	require.NoError(t, store.Put(ctx, KeyLanguage, "en"))
	value, err = store.Get(ctx, KeyLanguage)
	require.NoError(t, err)
	assert.Equal(t, "en", value)
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, KeyToken, "opaque-session-marker"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "opaque-session-marker", value)
}

func TestStoreDeleteIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put(ctx, KeyUser, `{"id":"1"}`))
	require.NoError(t, store.Delete(ctx, KeyUser))
	require.NoError(t, store.Delete(ctx, KeyUser))

	_, err = store.Get(ctx, KeyUser)
	assert.ErrorIs(t, err, ErrNoValue)
}

func TestMemoryImplementsKV(t *testing.T) {
	var _ KV = NewMemory()
	var _ KV = (*Store)(nil)

	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrNoValue)

	require.NoError(t, m.Put(ctx, KeyToken, "t"))
	value, err := m.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "t", value)

	require.NoError(t, m.Delete(ctx, KeyToken))
	require.NoError(t, m.Delete(ctx, KeyToken))
}
