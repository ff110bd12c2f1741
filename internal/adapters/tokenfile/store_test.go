package tokenfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "botpanel", "token"))
	require.NoError(t, err)
	return store
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := New("  ")
	assert.ErrorContains(t, err, "path is required")
}

func TestStore_LoadAbsent(t *testing.T) {
	store := newTestStore(t)

	token, err := store.Load()

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Store("tok1"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok1", token)

	// The slot holds the token verbatim (modulo trailing newline).
	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "tok1\n", string(raw))
}

func TestStore_Overwrite(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Store("tok1"))
	require.NoError(t, store.Store("tok2"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok2", token)
}

func TestStore_RejectsEmptyToken(t *testing.T) {
	store := newTestStore(t)

	assert.ErrorContains(t, store.Store("   "), "token is required")
}

func TestStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Store("tok1"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Store("tok1"))

	require.NoError(t, store.Clear())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing an absent slot is not an error.
	assert.NoError(t, store.Clear())
}

func TestStore_TrimsWhitespaceOnLoad(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o700))
	require.NoError(t, os.WriteFile(store.Path(), []byte("  tok1\n\n"), 0o600))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok1", token)
}
