package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	storage, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })
	return storage
}

func TestSQLiteStorage_Token(t *testing.T) {
	storage := newTestStorage(t)

	token, err := storage.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, storage.SaveToken("tok1"))
	token, err = storage.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "tok1", token)

	// Saving again overwrites.
	require.NoError(t, storage.SaveToken("tok2"))
	token, err = storage.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "tok2", token)

	require.NoError(t, storage.ClearToken())
	token, err = storage.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSQLiteStorage_NoteCache(t *testing.T) {
	storage := newTestStorage(t)

	now := time.Now().UTC().Truncate(time.Second)
	expiry := now.Add(time.Hour)

	notes := []Note{
		{ID: 1, Title: "first", Content: "a", CreatedAt: now.Add(-time.Minute), UpdatedAt: now, Version: 1},
		{ID: 2, Title: "second", Content: "b", CreatedAt: now, UpdatedAt: now, ExpiryTime: &expiry, Version: 3},
	}
	require.NoError(t, storage.CacheNotes(notes))

	got, err := storage.CachedNote(2)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Title)
	assert.Equal(t, 3, got.Version)
	require.NotNil(t, got.ExpiryTime)
	assert.True(t, got.ExpiryTime.Equal(expiry))

	all, err := storage.CachedNotes()
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest first.
	assert.Equal(t, int64(2), all[0].ID)

	// Re-caching an updated note replaces the row.
	notes[0].Content = "updated"
	notes[0].Version = 2
	require.NoError(t, storage.CacheNote(notes[0]))
	got, err = storage.CachedNote(1)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Content)
	assert.Equal(t, 2, got.Version)

	require.NoError(t, storage.RemoveNote(1))
	_, err = storage.CachedNote(1)
	assert.Error(t, err)
}
