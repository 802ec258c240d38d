package cli

import (
	"fmt"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/cli/formatter"
)

// recordMessage describes the outcome of recording hours for a day.
func recordMessage(res *app.RecordResult) string {
	day := formatter.HumanDate(res.Date)
	if res.Created {
		return fmt.Sprintf("Recorded %sh for %s", formatter.FormatHours(res.Hours), day)
	}
	return fmt.Sprintf("Updated %s: %sh → %sh", day, formatter.FormatHours(res.Previous), formatter.FormatHours(res.Hours))
}

// monthSumMessage reports the hours recorded in one month.
func monthSumMessage(yearMonth string, total float64) string {
	return fmt.Sprintf("Hours in %s: %s", yearMonth, formatter.FormatHours(total))
}

// plural formats a count with word, adding an "s" unless n is 1.
func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
