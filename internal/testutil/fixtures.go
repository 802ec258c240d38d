package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// EntryOption adjusts a generated entry.
type EntryOption func(*domain.Entry)

// WithHours overrides the hours of a generated entry.
func WithHours(h float64) EntryOption {
	return func(e *domain.Entry) {
		e.Hours = h
	}
}

// NewTestEntry creates an 8-hour entry for date.
func NewTestEntry(date string, opts ...EntryOption) domain.Entry {
	e := domain.Entry{Date: date, Hours: 8}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// MonthOfEntries returns one entry per day for the first n days of yearMonth,
// where day d gets d hours.
func MonthOfEntries(yearMonth string, n int) []domain.Entry {
	entries := make([]domain.Entry, 0, n)
	for d := 1; d <= n; d++ {
		entries = append(entries, domain.Entry{
			Date:  fmt.Sprintf("%s-%02d", yearMonth, d),
			Hours: float64(d),
		})
	}
	return entries
}

// FixedNow returns a stable reference time, a Wednesday in mid May 2024.
func FixedNow() time.Time {
	return time.Date(2024, 5, 15, 9, 30, 0, 0, time.UTC)
}
