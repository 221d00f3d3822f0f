// Package actions provides the action browser tab: a multi-select list
// over the catalog entries usable on the detected system.
package actions

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaspreet-dot-casa/sysup/pkg/app"
	"github.com/jaspreet-dot-casa/sysup/pkg/catalog"
)

// Model is the actions tab.
type Model struct {
	app.BaseTab

	entries  []catalog.Entry
	cursor   int
	selected map[int]bool

	keys app.ActionsKeyMap
}

// New creates the actions tab over the given (already filtered) entries.
func New(entries []catalog.Entry) *Model {
	base := app.NewBaseTab(app.TabActions, "Actions", "1")
	return &Model{
		BaseTab:  base,
		entries:  entries,
		selected: make(map[int]bool),
		keys:     app.DefaultActionsKeyMap(),
	}
}

// Init implements app.Tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements app.Tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, app.Keys().Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, app.Keys().Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if len(m.entries) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case key.Matches(keyMsg, m.keys.Confirm):
		picked := m.Selection()
		if len(picked) > 0 {
			return m, func() tea.Msg {
				return app.SelectionFinalizedMsg{Entries: picked}
			}
		}
	}

	return m, nil
}

// Selection returns the selected entries in list order.
func (m *Model) Selection() []catalog.Entry {
	var picked []catalog.Entry
	for i, entry := range m.entries {
		if m.selected[i] {
			picked = append(picked, entry)
		}
	}
	return picked
}

// View implements app.Tab.
func (m *Model) View() string {
	if len(m.entries) == 0 {
		return app.DimStyle.Render("No actions available for this system.")
	}

	var sb strings.Builder
	for i, entry := range m.entries {
		mark := "[ ]"
		if m.selected[i] {
			mark = "[x]"
		}

		line := fmt.Sprintf("%s %s", mark, entry.Name)
		if entry.Description != "" {
			line += app.DimStyle.Render("  " + entry.Description)
		}

		if i == m.cursor && m.IsFocused() {
			line = app.SelectedRowStyle.Render("> " + line)
		} else {
			line = "  " + line
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	count := len(m.Selection())
	sb.WriteString("\n")
	sb.WriteString(app.DimStyle.Render(fmt.Sprintf("%d selected", count)))

	return sb.String()
}

// KeyBindings implements app.Tab.
func (m *Model) KeyBindings() []string {
	return []string{
		"[j/k] move",
		"[space] toggle",
		"[Enter] run selected",
	}
}
