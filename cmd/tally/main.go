package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/tally/internal/cli"
	"github.com/alexanderramin/tally/internal/config"
	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir, config.DefaultPath(dir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := &cli.App{
		Config: cfg,
		Open:   openStore,
	}
	defer app.Close()

	// Detect interactive terminal for the calendar entrypoint.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}

// openStore wires the hours service for the configured backend.
func openStore(ctx context.Context, cfg *config.Config) (service.HoursService, io.Closer, error) {
	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	switch cfg.Backend {
	case config.BackendSQLite:
		database, err := db.OpenDB(cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		repo := repository.NewSQLiteHoursRepo(database)
		return service.NewHoursService(repo, cfg.MonthlyTarget, observers...), database, nil
	default:
		repo := repository.NewCSVHoursRepo(cfg.File)
		return service.NewHoursService(repo, cfg.MonthlyTarget, observers...), nil, nil
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
