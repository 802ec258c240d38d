package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// entryFromRecord converts a raw two-field row into an Entry.
// Rows with fewer than two fields or unusable hours are rejected.
func entryFromRecord(rec []string) (domain.Entry, bool) {
	if len(rec) < 2 {
		return domain.Entry{}, false
	}
	h, err := domain.ParseStoredHours(rec[1])
	if err != nil {
		return domain.Entry{}, false
	}
	return domain.Entry{Date: strings.TrimSpace(rec[0]), Hours: h}, true
}

// recordDate returns the trimmed date field of a raw row, or "" for an empty row.
func recordDate(rec []string) string {
	if len(rec) == 0 {
		return ""
	}
	return strings.TrimSpace(rec[0])
}

// validateEntry checks the date key and hours of an entry before it is written.
func validateEntry(date string, hours float64) error {
	if err := domain.ValidateDate(date); err != nil {
		return fmt.Errorf("%q: %w", date, err)
	}
	if err := domain.ValidateHours(hours); err != nil {
		return fmt.Errorf("%s: %w", date, err)
	}
	return nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
