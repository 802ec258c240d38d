package app

import "github.com/alexanderramin/tally/internal/domain"

// RecordResult is returned after hours are recorded for a day.
type RecordResult struct {
	Date     string
	Hours    float64
	Previous float64
	Created  bool
	Total    float64
}

type MonthSummaryRequest struct {
	YearMonth string
	// Target overrides the configured monthly target when > 0.
	Target float64
}

// MonthSummary aggregates one calendar month for display.
type MonthSummary struct {
	YearMonth string
	// ByDay maps day of month to hours. A day with duplicate rows holds the
	// first one; Total still counts every row.
	ByDay      map[int]float64
	Entries    []domain.Entry
	Total      float64
	DaysWorked int
	Target     float64
	// Progress is Total/Target, or 0 when no target is set.
	Progress   float64
	GrandTotal float64
}

type ImportResult struct {
	Source   string
	Imported int
	Created  int
	Updated  int
	Skipped  int
	Total    float64
}
