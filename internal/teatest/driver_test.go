package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type stepMsg string

// logModel records every stepMsg it sees, in order.
type logModel struct {
	seen []string
}

func (m logModel) Init() tea.Cmd { return nil }

func (m logModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		m.seen = append(m.seen, string(msg))
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, tea.Sequence(step("a"), step("b"), step("c"))
		case "b":
			return m, tea.Batch(step("x"), step("y"))
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m logModel) View() string { return "\x1b[1mbold\x1b[0m" }

func step(s string) tea.Cmd {
	return func() tea.Msg { return stepMsg(s) }
}

func TestDriver_RunsSequenceInOrder(t *testing.T) {
	d := New(t, logModel{})
	d.PressKey('s')
	assert.Equal(t, []string{"a", "b", "c"}, d.Model.(logModel).seen)
}

func TestDriver_RunsBatch(t *testing.T) {
	d := New(t, logModel{})
	d.PressKey('b')
	assert.ElementsMatch(t, []string{"x", "y"}, d.Model.(logModel).seen)
}

func TestDriver_QuitStopsFurtherInput(t *testing.T) {
	d := New(t, logModel{})
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d.PressKey('s')
	assert.Empty(t, d.Model.(logModel).seen)
}

func TestDriver_PlainView(t *testing.T) {
	d := New(t, logModel{})
	assert.Equal(t, "bold", d.PlainView())
}
