package app

import "context"

type RecordHoursUseCase interface {
	Record(ctx context.Context, date string, hours float64) (*RecordResult, error)
}

type MonthSummaryUseCase interface {
	MonthSummary(ctx context.Context, req MonthSummaryRequest) (*MonthSummary, error)
}

type ImportHoursUseCase interface {
	Import(ctx context.Context, filePath string) (*ImportResult, error)
}
