package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestSaveAndLoad(t *testing.T) {
	store := tempStore(t)
	saved := State{
		Patterns: []string{"he", "she"},
		TextFile: "text.txt",
		SavedAt:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.Save(saved))
	assert.True(t, store.Exists())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSaveStampsTime(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(State{Patterns: []string{"x"}}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.False(t, loaded.SavedAt.IsZero())
}

func TestSaveEmptyDeletes(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(State{Patterns: []string{"x"}}))

	require.NoError(t, store.Save(State{}))
	assert.False(t, store.Exists())
}

func TestLoadMissing(t *testing.T) {
	store := tempStore(t)

	state, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Patterns)
	assert.NoError(t, store.Delete(), "deleting a missing session is not an error")
}

func TestLoadCorrupt(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, os.WriteFile(store.Path, []byte("{not json"), 0644))

	_, err := store.Load()
	assert.Error(t, err)
}

func TestNewStoreDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, NewStore("").Path)
}
