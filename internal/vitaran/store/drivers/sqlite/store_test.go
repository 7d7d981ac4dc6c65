package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitaran/vitaran/internal/vitaran/store"
	"github.com/vitaran/vitaran/internal/vitaran/store/drivers/sqlite"
	"github.com/vitaran/vitaran/internal/vitaran/store/storetest"
)

func newMemoryStore(t *testing.T) store.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSQLiteStore(t *testing.T) {
	storetest.Run(t, newMemoryStore)
}

func TestSQLiteStoreFileDSN(t *testing.T) {
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "vitaran.db")
	storetest.Run(t, func(t *testing.T) store.Store {
		// Each subtest gets its own file so state does not leak between them.
		st, err := sqlite.NewStore(dsn + "." + filepath.Base(t.Name()))
		require.NoError(t, err)
		require.NoError(t, st.ApplyMigrations())
		t.Cleanup(func() { _ = st.Close() })
		return st
	})
}

func TestSQLiteApplyMigrationsIsIdempotent(t *testing.T) {
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.ApplyMigrations())
}
