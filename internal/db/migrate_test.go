package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesHourEntries(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='hour_entries'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "hour_entries", name)

	for _, idx := range []string{"idx_hour_entries_position", "idx_hour_entries_month"} {
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_RejectsNegativeHours(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO hour_entries (date, hours, position, updated_at) VALUES ('2024-05-10', -1, 1, '')`)
	assert.Error(t, err)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tally.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO hour_entries (date, hours, position, updated_at) VALUES ('2024-05-10', 3, 1, '')`)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
