package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// monthLoadedMsg carries the summary of one month.
type monthLoadedMsg struct {
	yearMonth string
	summary   *app.MonthSummary
	err       error
}

// calendarView is the home screen of the TUI: a month grid with a day
// cursor. Hours are entered for the selected day.
type calendarView struct {
	state    *SharedState
	selected time.Time // midnight UTC of the selected day
	today    time.Time
	summary  *app.MonthSummary
	loading  bool
	err      error
}

func newCalendarView(state *SharedState) *calendarView {
	today := dayOf(state.App.now())
	return &calendarView{
		state:    state,
		selected: today,
		today:    today,
		loading:  true,
	}
}

// dayOf truncates t to its calendar day in UTC so day arithmetic is not
// affected by daylight saving changes.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// shiftMonth moves t by n months, clamping the day to the target month.
func shiftMonth(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	day := min(t.Day(), formatter.DaysIn(first.Year(), first.Month()))
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

func (v *calendarView) ID() ViewID    { return ViewCalendar }
func (v *calendarView) Title() string { return "Calendar" }

func (v *calendarView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("←→↑↓", "day")),
		key.NewBinding(key.WithKeys("[", "]", "p", "n"), key.WithHelp("[ ]", "month")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "hours")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "month sum")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *calendarView) Init() tea.Cmd {
	return v.loadMonth()
}

func (v *calendarView) yearMonth() string {
	return domain.MonthKey(v.selected)
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *calendarView) loadMonth() tea.Cmd {
	a := v.state.App
	yearMonth := v.yearMonth()
	return func() tea.Msg {
		summary, err := a.monthSummaryUseCase().MonthSummary(context.Background(), app.MonthSummaryRequest{
			YearMonth: yearMonth,
			Target:    a.monthlyTarget(),
		})
		return monthLoadedMsg{yearMonth: yearMonth, summary: summary, err: err}
	}
}

func (v *calendarView) monthSum() tea.Cmd {
	hours := v.state.App.Hours
	yearMonth := v.yearMonth()
	return func() tea.Msg {
		total, err := hours.MonthTotal(context.Background(), yearMonth)
		if err != nil {
			return cmdOutputMsg{output: formatter.Failure(err.Error())}
		}
		return cmdOutputMsg{output: monthSumMessage(yearMonth, total)}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case monthLoadedMsg:
		// Drop results for a month the cursor has already left.
		if msg.yearMonth != v.yearMonth() {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.summary = msg.summary
		}
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadMonth()

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			return v, v.moveTo(v.selected.AddDate(0, 0, -1))
		case "right", "l":
			return v, v.moveTo(v.selected.AddDate(0, 0, 1))
		case "up", "k":
			return v, v.moveTo(v.selected.AddDate(0, 0, -7))
		case "down", "j":
			return v, v.moveTo(v.selected.AddDate(0, 0, 7))
		case "[", "p":
			return v, v.moveTo(shiftMonth(v.selected, -1))
		case "]", "n":
			return v, v.moveTo(shiftMonth(v.selected, 1))
		case "t":
			v.today = dayOf(v.state.App.now())
			return v, v.moveTo(v.today)
		case "enter", "e":
			return v, v.editSelected()
		case "s":
			return v, v.monthSum()
		case "r":
			v.loading = true
			return v, v.loadMonth()
		}
	}
	return v, nil
}

// moveTo selects day and reloads when it lies in another month.
func (v *calendarView) moveTo(day time.Time) tea.Cmd {
	prev := v.yearMonth()
	v.selected = day
	if v.yearMonth() == prev {
		return nil
	}
	v.summary = nil
	v.loading = true
	return v.loadMonth()
}

func (v *calendarView) selectedHours() float64 {
	if v.summary == nil {
		return 0
	}
	return v.summary.ByDay[v.selected.Day()]
}

func (v *calendarView) editSelected() tea.Cmd {
	date := domain.DateKey(v.selected)
	input := new(string)
	form := hoursForm(date, v.selectedHours(), input)
	a := v.state.App
	return startWizardCmd(v.state, "Hours", form, func() tea.Cmd {
		return recordHoursCmd(a, date, *input)
	})
}

// ── view ─────────────────────────────────────────────────────────────────────

func (v *calendarView) View() string {
	if v.err != nil {
		return "\n  " + formatter.Failure(v.err.Error()) + "\n"
	}
	if v.summary == nil {
		return "\n  " + formatter.Dim("Loading...") + "\n"
	}

	today := 0
	if domain.MonthKey(v.today) == v.yearMonth() {
		today = v.today.Day()
	}

	var b strings.Builder
	b.WriteString(renderMonth(v.summary, v.selected.Day(), today))
	fmt.Fprintf(&b, "\n%s %sh\n",
		formatter.Bold(formatter.HumanDate(domain.DateKey(v.selected))+":"),
		formatter.FormatHours(v.selectedHours()))
	return b.String()
}
