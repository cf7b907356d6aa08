package migrations

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations_CreatesRecordsTable(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, RunMigrations(db))

	_, err := db.Exec(`INSERT INTO records (key, value, updated_at) VALUES ('k', 'v', '2024-06-02T00:00:00Z')`)
	assert.NoError(t, err, "records table should exist after migrations")
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 1, count, "each migration should be recorded exactly once")
}
