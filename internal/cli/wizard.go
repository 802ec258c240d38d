package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tallyHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func tallyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

var errHoursInput = errors.New("enter a non-negative number of hours")

// validateHoursInput keeps the form open until the input parses as hours.
func validateHoursInput(s string) error {
	if _, err := domain.ParseHours(s); err != nil {
		return errHoursInput
	}
	return nil
}

// hoursForm asks for the hours worked on date. The input starts empty;
// current is shown in the description when the day already has hours.
func hoursForm(date string, current float64, input *string) *huh.Form {
	desc := formatter.HumanDate(date)
	if current > 0 {
		desc += fmt.Sprintf(" · currently %sh", formatter.FormatHours(current))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hours").
				Description(desc).
				Placeholder("e.g. 7.5").
				Value(input).
				Validate(validateHoursInput),
		),
	).WithTheme(tallyHuhTheme()).WithShowHelp(false)
}

// recordHoursCmd records input for date and reports the outcome as a notice.
// Input that does not parse is reported and nothing is written.
func recordHoursCmd(app *App, date, input string) tea.Cmd {
	return func() tea.Msg {
		hours, err := domain.ParseHours(input)
		if err != nil {
			return cmdOutputMsg{output: formatter.Failure("Enter a valid number of hours.")}
		}
		res, err := app.recordUseCase().Record(context.Background(), date, hours)
		if err != nil {
			return cmdOutputMsg{output: formatter.Failure(err.Error())}
		}
		return cmdOutputMsg{output: formatter.Success(recordMessage(res)) +
			formatter.Dim(fmt.Sprintf("  Total: %sh", formatter.FormatHours(res.Total)))}
	}
}
