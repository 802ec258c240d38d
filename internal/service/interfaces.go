package service

import (
	"context"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/domain"
)

// HoursService is the single entry point front ends use to read and record hours.
type HoursService interface {
	Get(ctx context.Context, date string) (float64, error)
	Record(ctx context.Context, date string, hours float64) (*app.RecordResult, error)
	Total(ctx context.Context) (float64, error)
	MonthTotal(ctx context.Context, yearMonth string) (float64, error)
	MonthSummary(ctx context.Context, req app.MonthSummaryRequest) (*app.MonthSummary, error)
	List(ctx context.Context, yearMonth string) ([]domain.Entry, error)
	Import(ctx context.Context, filePath string) (*app.ImportResult, error)
}

var (
	_ app.RecordHoursUseCase  = HoursService(nil)
	_ app.MonthSummaryUseCase = HoursService(nil)
	_ app.ImportHoursUseCase  = HoursService(nil)
)
