package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/tally/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestCSVPath returns a path to a not-yet-created hours file in a temp dir.
func NewTestCSVPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "hours.csv")
}

// NewTestCSV writes content to a fresh hours file and returns its path.
func NewTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := NewTestCSVPath(t)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test csv: %v", err)
	}
	return path
}

// ReadFile returns the contents of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
