package formatter

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FormatHours renders an hours value with two decimals, e.g. "7.50".
func FormatHours(h float64) string {
	return fmt.Sprintf("%.2f", h)
}

// CompactHours renders h rounded to one decimal with an "h" suffix, e.g. "7.5h".
func CompactHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*10)/10, 'f', -1, 64) + "h"
}

// HoursValue renders hours for a table cell, green when any were worked.
func HoursValue(h float64) string {
	if h <= 0 {
		return StyleDim.Render(FormatHours(h))
	}
	return StyleGreen.Render(FormatHours(h))
}

// MonthTitle renders "May 2024" for a time in that month.
func MonthTitle(t time.Time) string {
	return t.Format("January 2006")
}

// HumanDate renders a date key as "Fri, 10 May 2024". Keys that do not parse
// are returned unchanged.
func HumanDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon, 2 Jan 2006")
}
