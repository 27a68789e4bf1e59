package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abid327/distrib/internal/storage"
	"github.com/abid327/distrib/internal/storage/sqlite"
)

// newTestStore opens a fresh on-disk database per test.
func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}
