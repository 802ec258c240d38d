package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }
func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

type failingSummary struct {
	err error
}

func (f failingSummary) MonthSummary(context.Context, app.MonthSummaryRequest) (*app.MonthSummary, error) {
	return nil, f.err
}

func TestNewAppModelStartsAtCalendar(t *testing.T) {
	m := newAppModel(testApp(t), nil)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewCalendar, m.activeView().ID())
}

func TestAppModel_PushAndEscPop(t *testing.T) {
	m := newAppModel(testApp(t), nil)
	form := newStubView(ViewCalendar, "Other", "other view")
	form.initCmd = func() tea.Msg { return nil }

	model, cmd := m.Update(pushViewMsg{view: form})
	m = model.(appModel)
	require.NotNil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, form, m.activeView())

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)

	// Esc on the root view is a no-op.
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_WizardCompletePopsAndRunsFollowUp(t *testing.T) {
	m := newAppModel(testApp(t), nil)
	under := newStubView(ViewCalendar, "Under", "under")
	wizard := newStubView(ViewForm, "Form", "form")
	m.viewStack = []View{under, wizard}

	model, cmd := m.Update(wizardCompleteOutput("done"))
	m = model.(appModel)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, under, m.activeView())
	require.NotNil(t, cmd)
}

func TestAppModel_RefreshBroadcastsToAllViews(t *testing.T) {
	m := newAppModel(testApp(t), nil)
	a := newStubView(ViewCalendar, "A", "a")
	b := newStubView(ViewForm, "B", "b")
	m.viewStack = []View{a, b}

	m.Update(refreshViewMsg{})

	assert.Contains(t, a.updateSeen, tea.Msg(refreshViewMsg{}))
	assert.Contains(t, b.updateSeen, tea.Msg(refreshViewMsg{}))
}

func TestAppModel_FileChangeRefreshesViews(t *testing.T) {
	m := newAppModel(testApp(t), nil)
	a := newStubView(ViewCalendar, "A", "a")
	m.viewStack = []View{a}

	m.Update(fileChangedMsg{})

	assert.Contains(t, a.updateSeen, tea.Msg(refreshViewMsg{}))
}

func TestAppModel_NoticeShownUntilNextKey(t *testing.T) {
	m := newAppModel(testApp(t), nil)
	m.viewStack = []View{newStubView(ViewCalendar, "Cal", "grid")}

	model, _ := m.Update(cmdOutputMsg{output: "saved"})
	m = model.(appModel)
	assert.Contains(t, m.View(), "saved")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = model.(appModel)
	assert.NotContains(t, m.View(), "saved")
}

func TestAppModel_ViewPadsToHeightAndShowsHints(t *testing.T) {
	m := newAppModel(testApp(t), nil)
	stub := newStubView(ViewCalendar, "Cal", "grid")
	stub.shortHelp = []key.Binding{key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "month sum"))}
	m.viewStack = []View{stub}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = model.(appModel)

	out := plain(m.View())
	assert.Equal(t, 20, strings.Count(out, "\n")+1)
	assert.Contains(t, out, "s: month sum")
	assert.Contains(t, out, "q: quit")
	assert.Contains(t, out, "tally › Cal")
}

func TestAppModel_QuittingRendersNothing(t *testing.T) {
	m := newAppModel(testApp(t), nil)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = model.(appModel)

	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
