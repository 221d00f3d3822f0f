package actions

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaspreet-dot-casa/sysup/pkg/app"
	"github.com/jaspreet-dot-casa/sysup/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries() []catalog.Entry {
	return []catalog.Entry{
		{Name: "System Update", RequiresPkgManager: true},
		{Name: "Clear Temp Files"},
		{Name: "Trim Journal"},
	}
}

func press(m *Model, s string) tea.Cmd {
	var msg tea.KeyMsg
	if s == "enter" {
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	} else if s == "space" {
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	} else {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestNew(t *testing.T) {
	m := New(entries())

	assert.Equal(t, app.TabActions, m.ID())
	assert.Equal(t, "Actions", m.Name())
	assert.Equal(t, "1", m.ShortKey())
	assert.Empty(t, m.Selection())
}

func TestToggleAndSelection(t *testing.T) {
	m := New(entries())

	press(m, "space")
	press(m, "j")
	press(m, "space")

	sel := m.Selection()
	require.Len(t, sel, 2)
	assert.Equal(t, "System Update", sel[0].Name)
	assert.Equal(t, "Clear Temp Files", sel[1].Name)

	// Toggling again deselects.
	press(m, "space")
	assert.Len(t, m.Selection(), 1)
}

func TestCursorStaysInBounds(t *testing.T) {
	m := New(entries())

	press(m, "k")
	assert.Equal(t, 0, m.cursor)

	for range 10 {
		press(m, "j")
	}
	assert.Equal(t, 2, m.cursor)
}

func TestConfirmEmitsSelectionFinalized(t *testing.T) {
	m := New(entries())
	press(m, "space")

	cmd := press(m, "enter")

	require.NotNil(t, cmd)
	msg, ok := cmd().(app.SelectionFinalizedMsg)
	require.True(t, ok)
	require.Len(t, msg.Entries, 1)
	assert.Equal(t, "System Update", msg.Entries[0].Name)
}

func TestConfirmWithoutSelectionIsNoop(t *testing.T) {
	m := New(entries())

	assert.Nil(t, press(m, "enter"))
}

func TestView(t *testing.T) {
	m := New(entries())
	m.Focus()
	press(m, "space")

	view := m.View()

	assert.Contains(t, view, "[x] System Update")
	assert.Contains(t, view, "[ ] Clear Temp Files")
	assert.Contains(t, view, "1 selected")
}

func TestView_Empty(t *testing.T) {
	m := New(nil)

	assert.Contains(t, m.View(), "No actions available")
}

func TestKeyBindings(t *testing.T) {
	m := New(entries())

	bindings := m.KeyBindings()

	assert.Contains(t, bindings, "[space] toggle")
	assert.Contains(t, bindings, "[Enter] run selected")
}
