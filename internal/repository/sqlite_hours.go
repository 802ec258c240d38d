package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/domain"
)

// SQLiteHoursRepo implements HoursRepo on the hour_entries table.
type SQLiteHoursRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteHoursRepo creates a SQLiteHoursRepo. Bulk upserts run in a single
// transaction.
func NewSQLiteHoursRepo(database *sql.DB) *SQLiteHoursRepo {
	return &SQLiteHoursRepo{db: database, uow: db.NewSQLiteUnitOfWork(database)}
}

// NewSQLiteHoursRepoWithUoW creates a SQLiteHoursRepo whose bulk upserts run
// through uow.
func NewSQLiteHoursRepoWithUoW(database db.DBTX, uow db.UnitOfWork) *SQLiteHoursRepo {
	return &SQLiteHoursRepo{db: database, uow: uow}
}

// newTxHoursRepo scopes a repo to an open transaction.
func newTxHoursRepo(tx db.DBTX) *SQLiteHoursRepo {
	return &SQLiteHoursRepo{db: tx}
}

func (r *SQLiteHoursRepo) Get(ctx context.Context, date string) (float64, error) {
	var hours float64
	err := r.db.QueryRowContext(ctx, `SELECT hours FROM hour_entries WHERE date = ?`, date).Scan(&hours)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("loading hours for %s: %w", date, err)
	}
	return hours, nil
}

func (r *SQLiteHoursRepo) Upsert(ctx context.Context, date string, hours float64) error {
	if err := validateEntry(date, hours); err != nil {
		return err
	}
	query := `INSERT INTO hour_entries (date, hours, position, updated_at)
		VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM hour_entries), ?)
		ON CONFLICT(date) DO UPDATE SET hours = excluded.hours, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, date, hours, nowUTC()); err != nil {
		return fmt.Errorf("upserting hours for %s: %w", date, err)
	}
	return nil
}

// UpsertMany writes all entries or none of them.
func (r *SQLiteHoursRepo) UpsertMany(ctx context.Context, entries []domain.Entry) error {
	for _, e := range entries {
		if err := validateEntry(e.Date, e.Hours); err != nil {
			return err
		}
	}
	if len(entries) == 0 {
		return nil
	}

	apply := func(ctx context.Context, tx db.DBTX) error {
		txRepo := newTxHoursRepo(tx)
		for _, e := range entries {
			if err := txRepo.Upsert(ctx, e.Date, e.Hours); err != nil {
				return err
			}
		}
		return nil
	}
	if r.uow == nil {
		return apply(ctx, r.db)
	}
	return r.uow.WithinTx(ctx, apply)
}

func (r *SQLiteHoursRepo) SumTotal(ctx context.Context) (float64, error) {
	var sum float64
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(hours), 0) FROM hour_entries`).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing hours: %w", err)
	}
	return sum, nil
}

func (r *SQLiteHoursRepo) SumMonth(ctx context.Context, yearMonth string) (float64, error) {
	var sum float64
	query := `SELECT COALESCE(SUM(hours), 0) FROM hour_entries WHERE substr(date, 1, 7) = ?`
	if err := r.db.QueryRowContext(ctx, query, yearMonth).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing hours for %s: %w", yearMonth, err)
	}
	return sum, nil
}

func (r *SQLiteHoursRepo) List(ctx context.Context) ([]domain.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date, hours FROM hour_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing hours: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func (r *SQLiteHoursRepo) ListMonth(ctx context.Context, yearMonth string) ([]domain.Entry, error) {
	query := `SELECT date, hours FROM hour_entries WHERE substr(date, 1, 7) = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, yearMonth)
	if err != nil {
		return nil, fmt.Errorf("listing hours for %s: %w", yearMonth, err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]domain.Entry, error) {
	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.Date, &e.Hours); err != nil {
			return nil, fmt.Errorf("scanning hour entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hour entries: %w", err)
	}
	return entries, nil
}
