package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newCalCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cal [YYYY-MM]",
		Short: "Show a month calendar with the hours of each day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			now := a.now()
			yearMonth, err := resolveMonth(input, now)
			if err != nil {
				return err
			}

			summary, err := a.monthSummaryUseCase().MonthSummary(cmd.Context(), app.MonthSummaryRequest{
				YearMonth: yearMonth,
				Target:    a.monthlyTarget(),
			})
			if err != nil {
				return err
			}

			today := 0
			if domain.MonthKey(now) == yearMonth {
				today = now.Day()
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMonth(summary, 0, today))
			return nil
		},
	}
}

// renderMonth renders a month summary as a titled calendar followed by the
// month and overall totals. selected and today are days of the month; 0
// marks none.
func renderMonth(s *app.MonthSummary, selected, today int) string {
	start := monthStart(s.YearMonth)

	var b strings.Builder
	b.WriteString(formatter.Header(formatter.MonthTitle(start)))
	b.WriteString("\n")
	b.WriteString(formatter.RenderCalendar(formatter.CalendarMonth{
		Year:     start.Year(),
		Month:    start.Month(),
		Hours:    s.ByDay,
		Selected: selected,
		Today:    today,
	}))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s\n",
		formatter.Dim("Month:"),
		formatter.RenderTargetLine(s.Total, s.Target, 20),
		formatter.Dim("("+plural(s.DaysWorked, "day")+")"))
	fmt.Fprintf(&b, "%s %sh\n", formatter.Dim("Total:"), formatter.FormatHours(s.GrandTotal))
	return b.String()
}
