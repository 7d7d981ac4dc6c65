package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrateURL(t *testing.T) {
	require.Equal(t, "pgx5://u:p@db:5432/vitaran?sslmode=disable",
		migrateURL("postgres://u:p@db:5432/vitaran?sslmode=disable"))
	require.Equal(t, "pgx5://u@db/vitaran", migrateURL("postgresql://u@db/vitaran"))
	require.Equal(t, "pgx5://already", migrateURL("pgx5://already"))
}
