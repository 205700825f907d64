package session

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_EmptyWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path, testLogger())

	_, ok := store.Token()
	assert.False(t, ok)
	_, ok = store.Login()
	assert.False(t, ok)
	assert.False(t, store.Active())
}

func TestStore_SavePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := NewStore(path, testLogger())
	require.NoError(t, first.Save("tok-123", "alice"))

	second := NewStore(path, testLogger())
	token, ok := second.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)
	login, ok := second.Login()
	require.True(t, ok)
	assert.Equal(t, "alice", login)
	assert.True(t, second.Active())
}

func TestStore_ClearRemovesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewStore(path, testLogger())
	require.NoError(t, store.Save("tok", "alice"))
	require.NoError(t, store.Clear())

	_, ok := store.Token()
	assert.False(t, ok)
	assert.False(t, store.Active())

	reopened := NewStore(path, testLogger())
	assert.False(t, reopened.Active())
}

func TestStore_SaveReplacesPreviousSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewStore(path, testLogger())
	require.NoError(t, store.Save("old", "alice"))
	require.NoError(t, store.Save("new", "bob"))

	token, _ := store.Token()
	assert.Equal(t, "new", token)
	login, _ := store.Login()
	assert.Equal(t, "bob", login)
}

func TestStore_CorruptFileStartsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewStore(path, testLogger())

	assert.False(t, store.Active())

	// A corrupt file does not block a fresh login.
	require.NoError(t, store.Save("tok", "alice"))
	assert.True(t, store.Active())
}

func TestStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")

	store := NewStore(path, testLogger())
	require.NoError(t, store.Save("tok", "alice"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
