package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

// resolveDate turns a DATE argument into a date key. It accepts YYYY-MM-DD,
// "today" and "yesterday".
func resolveDate(input string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "today":
		return domain.DateKey(now), nil
	case "yesterday":
		return domain.DateKey(now.AddDate(0, 0, -1)), nil
	}
	if err := domain.ValidateDate(input); err != nil {
		return "", fmt.Errorf("%q is not a date (want YYYY-MM-DD, today or yesterday): %w", input, err)
	}
	return input, nil
}

// resolveMonth turns an optional YYYY-MM argument into a month key,
// defaulting to the month of now.
func resolveMonth(input string, now time.Time) (string, error) {
	if input == "" {
		return domain.MonthKey(now), nil
	}
	if err := domain.ValidateMonth(input); err != nil {
		return "", fmt.Errorf("%q is not a month (want YYYY-MM): %w", input, err)
	}
	return input, nil
}

// monthStart parses a month key into the first day of that month.
func monthStart(yearMonth string) time.Time {
	t, err := time.Parse(domain.MonthLayout, yearMonth)
	if err != nil {
		return time.Time{}
	}
	return t
}
