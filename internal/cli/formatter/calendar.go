package formatter

import (
	"fmt"
	"strings"
	"time"
)

// cellWidth is the width of one day column in the month grid.
const cellWidth = 7

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// CalendarMonth describes one month grid to render.
type CalendarMonth struct {
	Year  int
	Month time.Month
	// Hours maps day of month to hours recorded.
	Hours map[int]float64
	// Selected is the highlighted day, 0 for none.
	Selected int
	// Today is the current day if it falls in this month, 0 otherwise.
	Today int
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks returns how many Monday-first grid cells precede day 1.
func LeadingBlanks(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return (int(first.Weekday()) + 6) % 7
}

// RenderCalendar renders a Monday-first month grid. Each week takes two
// lines: day numbers, then hours for days that have any. Days with hours
// are green; the selected day is bracketed.
func RenderCalendar(c CalendarMonth) string {
	var b strings.Builder

	var header strings.Builder
	for _, label := range weekdayLabels {
		header.WriteString(padStyled(StyleHeader.Render(label), len(label)))
	}
	b.WriteString(strings.TrimRight(header.String(), " "))
	b.WriteString("\n")

	days := DaysIn(c.Year, c.Month)
	blanks := LeadingBlanks(c.Year, c.Month)

	var dayLine, hoursLine strings.Builder
	flush := func() {
		b.WriteString(strings.TrimRight(dayLine.String(), " "))
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(hoursLine.String(), " "))
		b.WriteString("\n")
		dayLine.Reset()
		hoursLine.Reset()
	}

	for i := 0; i < blanks; i++ {
		dayLine.WriteString(padCell(""))
		hoursLine.WriteString(padCell(""))
	}
	for day := 1; day <= days; day++ {
		h := c.Hours[day]
		dayLine.WriteString(renderDayCell(day, h, day == c.Selected, day == c.Today))
		if h > 0 {
			label := " " + CompactHours(h)
			hoursLine.WriteString(padStyled(StyleDim.Render(label), len(label)))
		} else {
			hoursLine.WriteString(padCell(""))
		}
		if (blanks+day)%7 == 0 {
			flush()
		}
	}
	if (blanks+days)%7 != 0 {
		flush()
	}

	return b.String()
}

func renderDayCell(day int, hours float64, selected, today bool) string {
	text := fmt.Sprintf(" %2d ", day)
	if selected {
		text = fmt.Sprintf("[%2d]", day)
	}

	style := StyleFg
	switch {
	case selected:
		style = StyleSelected
	case hours > 0:
		style = StyleWorked
	case today:
		style = StyleYellow
	}
	return padStyled(style.Render(text), len(text))
}

// padCell pads plain text to the cell width.
func padCell(s string) string {
	return padStyled(s, len(s))
}

// padStyled pads an already styled string whose visible width is width.
func padStyled(styled string, width int) string {
	if width >= cellWidth {
		return styled
	}
	return styled + strings.Repeat(" ", cellWidth-width)
}
