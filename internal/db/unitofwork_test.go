package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertEntry(ctx context.Context, tx db.DBTX, date string, hours float64) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO hour_entries (date, hours, position, updated_at) VALUES (?, ?, 1, '')`, date, hours)
	return err
}

func countEntries(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM hour_entries`).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertEntry(ctx, tx, "2024-05-10", 3)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countEntries(t, database))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertEntry(ctx, tx, "2024-05-10", 3); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.Equal(t, 0, countEntries(t, database))
}

func TestWithinTx_RollbackOnConstraintViolation(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertEntry(ctx, tx, "2024-05-10", 3); err != nil {
			return err
		}
		return insertEntry(ctx, tx, "2024-05-11", -2)
	})
	require.Error(t, err)
	assert.Equal(t, 0, countEntries(t, database))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertEntry(ctx, tx, "2024-05-10", 3)
			panic("boom")
		})
	})
	assert.Equal(t, 0, countEntries(t, database))
}
