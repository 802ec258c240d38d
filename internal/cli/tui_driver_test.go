package cli

import (
	"testing"

	"github.com/alexanderramin/tally/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection methods for the app model.
// It provides access to appModel internals (view stack, calendar state,
// notice) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel without a file watcher, sets terminal size,
// and drains Init() so the first month is loaded.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app, nil)
	d := teatest.New(t, m, teatest.WithSize(100, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Calendar returns the calendar view at the bottom of the stack.
func (d *TestDriver) Calendar() *calendarView {
	d.T.Helper()
	m := d.appModel()
	cal, ok := m.viewStack[0].(*calendarView)
	if !ok {
		d.T.Fatalf("bottom view is %T, want *calendarView", m.viewStack[0])
	}
	return cal
}

// SelectedDate returns the date key under the calendar cursor.
func (d *TestDriver) SelectedDate() string {
	d.T.Helper()
	return d.Calendar().selected.Format("2006-01-02")
}

// Notice returns the current notice line without styling.
func (d *TestDriver) Notice() string {
	return plain(d.appModel().notice)
}
