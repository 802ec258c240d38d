package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/config"
	"github.com/alexanderramin/tally/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// OpenFunc wires a HoursService for cfg. The returned Closer releases the
// backing store and may be nil.
type OpenFunc func(ctx context.Context, cfg *config.Config) (service.HoursService, io.Closer, error)

// App holds the services and settings used by CLI commands.
type App struct {
	Hours service.HoursService

	// Optional use-case overrides; nil falls back to Hours.
	RecordHours  app.RecordHoursUseCase
	MonthSummary app.MonthSummaryUseCase
	ImportHours  app.ImportHoursUseCase

	Config *config.Config

	// Open is called once flags are parsed when Hours has not been set.
	Open OpenFunc

	// IsInteractive reports whether a bare "tally" should start the TUI.
	IsInteractive func() bool

	// Now returns the current time; nil means time.Now.
	Now func() time.Time

	closer io.Closer
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// watchPath returns the file the TUI watches for outside edits, or "" when
// there is nothing to watch.
func (a *App) watchPath() string {
	if a.Config == nil {
		return ""
	}
	if a.Config.Backend == config.BackendSQLite {
		return a.Config.DB
	}
	return a.Config.File
}

func (a *App) monthlyTarget() float64 {
	if a.Config == nil {
		return 0
	}
	return a.Config.MonthlyTarget
}

// NewRootCmd creates the top-level "tally" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var file, backend string

	root := &cobra.Command{
		Use:   "tally",
		Short: "Record hours worked per day",
		Long: `tally keeps a per-day record of hours worked in a plain date,hours file
and reports running and monthly totals.

Run without arguments in a terminal to open the calendar.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return app.connect(cmd.Context(), cmd.Flags(), file, backend)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&file, "file", "", "hours file (csv backend)")
	root.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: csv or sqlite")

	root.AddCommand(
		newAddCmd(app),
		newGetCmd(app),
		newSumCmd(app),
		newCalCmd(app),
		newListCmd(app),
		newImportCmd(app),
	)

	return root
}

// connect applies command-line overrides to the config and opens the store
// unless a service was injected.
func (a *App) connect(ctx context.Context, flags *pflag.FlagSet, file, backend string) error {
	if a.Config != nil {
		if flags.Changed("file") {
			a.Config.File = file
		}
		if flags.Changed("backend") {
			a.Config.Backend = config.Backend(backend)
		}
		if err := a.Config.Validate(); err != nil {
			return err
		}
	}

	if a.Hours != nil {
		return nil
	}
	if a.Open == nil || a.Config == nil {
		return fmt.Errorf("hours store is not configured")
	}
	hours, closer, err := a.Open(ctx, a.Config)
	if err != nil {
		return err
	}
	a.Hours = hours
	a.closer = closer
	return nil
}

// Close releases the store opened by Open, if any.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}
