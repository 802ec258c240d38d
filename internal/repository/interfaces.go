package repository

import (
	"context"

	"github.com/alexanderramin/tally/internal/domain"
)

// HoursRepo persists the hours worked per calendar day.
//
// Reads never fail on malformed data: rows whose hours do not parse are
// skipped. A store that has never been written reads as empty.
type HoursRepo interface {
	Get(ctx context.Context, date string) (float64, error)
	Upsert(ctx context.Context, date string, hours float64) error
	UpsertMany(ctx context.Context, entries []domain.Entry) error
	SumTotal(ctx context.Context) (float64, error)
	SumMonth(ctx context.Context, yearMonth string) (float64, error)
	List(ctx context.Context) ([]domain.Entry, error)
	ListMonth(ctx context.Context, yearMonth string) ([]domain.Entry, error)
}

// Compile-time verification that both backends satisfy HoursRepo.
var (
	_ HoursRepo = (*CSVHoursRepo)(nil)
	_ HoursRepo = (*SQLiteHoursRepo)(nil)
)
