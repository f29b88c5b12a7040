package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTokenRoundTrip(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Token()
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.SetToken("first"))
	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "first", token)

	// A new login replaces the previous credential.
	require.NoError(t, store.SetToken("second"))
	token, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}

func TestDeleteToken(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.SetToken("tok"))
	require.NoError(t, store.DeleteToken())

	_, err := store.Token()
	assert.ErrorIs(t, err, ErrNoToken)

	// Deleting when nothing is stored is not an error.
	require.NoError(t, store.DeleteToken())
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("tok"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}
