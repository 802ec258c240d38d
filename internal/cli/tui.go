package cli

import (
	"context"

	"github.com/alexanderramin/tally/internal/watch"
	tea "github.com/charmbracelet/bubbletea"
)

// runTUI starts the full-screen calendar. When the backing file can be
// watched, edits made outside the TUI are reloaded as they happen.
func runTUI(ctx context.Context, app *App) error {
	var w *watch.Watcher
	if path := app.watchPath(); path != "" {
		// Without a watcher the calendar still reloads on "r".
		if fw, err := watch.New(path); err == nil {
			w = fw
			defer w.Close()
		}
	}

	p := tea.NewProgram(newAppModel(app, w), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
