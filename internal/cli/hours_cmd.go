package cli

import (
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "add DATE HOURS",
		Aliases: []string{"set"},
		Short:   "Add or edit the hours for a day",
		Long: `Record HOURS for DATE, replacing any value already stored for that day.

DATE is YYYY-MM-DD, "today" or "yesterday". HOURS accepts a dot or a comma
as decimal separator.`,
		Example: `  tally add 2024-05-10 8
  tally add today 7,5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(args[0], app.now())
			if err != nil {
				return err
			}
			hours, err := domain.ParseHours(args[1])
			if err != nil {
				return fmt.Errorf("%q is not a valid number of hours: %w", args[1], err)
			}

			res, err := app.recordUseCase().Record(cmd.Context(), date, hours)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Success(recordMessage(res)))
			fmt.Fprintf(out, "Total: %sh\n", formatter.FormatHours(res.Total))
			return nil
		},
	}
}

func newGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get DATE",
		Short: "Show the hours recorded for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(args[0], app.now())
			if err != nil {
				return err
			}
			hours, err := app.Hours.Get(cmd.Context(), date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %sh\n", formatter.HumanDate(date), formatter.FormatHours(hours))
			return nil
		},
	}
}

func newSumCmd(app *App) *cobra.Command {
	var month string
	var thisMonth bool

	cmd := &cobra.Command{
		Use:   "sum",
		Short: "Show total hours, overall or for one month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if month == "" && !thisMonth {
				total, err := app.Hours.Total(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Total: %sh\n", formatter.FormatHours(total))
				return nil
			}

			yearMonth, err := resolveMonth(month, app.now())
			if err != nil {
				return err
			}
			total, err := app.Hours.MonthTotal(ctx, yearMonth)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %sh\n", yearMonth, formatter.FormatHours(total))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "sum one month (YYYY-MM)")
	cmd.Flags().BoolVar(&thisMonth, "this-month", false, "sum the current month")
	cmd.MarkFlagsMutuallyExclusive("month", "this-month")

	return cmd
}

func newListCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != "" {
				if err := domain.ValidateMonth(month); err != nil {
					return fmt.Errorf("%q is not a month (want YYYY-MM): %w", month, err)
				}
			}
			entries, err := app.Hours.List(cmd.Context(), month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, formatter.Dim("No hours recorded."))
				return nil
			}

			var total float64
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				total += e.Hours
				rows = append(rows, []string{
					e.Date,
					formatter.HumanDate(e.Date),
					formatter.HoursValue(e.Hours),
				})
			}
			fmt.Fprint(out, formatter.RenderTableAligned([]string{"DATE", "DAY", "HOURS"}, rows, 2))
			fmt.Fprintf(out, "\n%s %sh across %s\n", formatter.Dim("Total:"), formatter.FormatHours(total), plural(len(entries), "day"))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "only list one month (YYYY-MM)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import PATH",
		Short: "Merge hours from another date,hours file",
		Long: `Read a headerless date,hours file and record every usable row.
Rows that do not parse are skipped; imported days replace stored values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.importUseCase().Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Success(fmt.Sprintf("Imported %s from %s", plural(res.Imported, "day"), res.Source)))
			fmt.Fprintf(out, "  %d new, %d updated, %d skipped\n", res.Created, res.Updated, res.Skipped)
			fmt.Fprintf(out, "Total: %sh\n", formatter.FormatHours(res.Total))
			return nil
		},
	}
}
