// Package app provides the full-screen TUI for browsing and running
// maintenance actions. It follows the Bubble Tea architecture with tabs
// for different features and a single floating dialog slot for modals.
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jaspreet-dot-casa/sysup/pkg/catalog"
	"github.com/jaspreet-dot-casa/sysup/pkg/sysinfo"
)

// SelectionFinalizedMsg is emitted by the actions view when the user
// finalizes a multi-selection. The app responds by opening the
// confirmation prompt (or confirming immediately when configured to skip
// it).
type SelectionFinalizedMsg struct {
	Entries []catalog.Entry
}

// Model is the main application model.
type Model struct {
	tabs      []Tab
	activeTab int
	width     int
	height    int
	quitting  bool

	// float is the active modal dialog; while set it captures all input.
	float   FloatContent
	pending []catalog.Entry

	confirmed   []catalog.Entry
	skipConfirm bool

	system *sysinfo.System
}

// New creates a new application model for the probed system.
func New(sys *sysinfo.System, skipConfirm bool) Model {
	return Model{
		system:      sys,
		skipConfirm: skipConfirm,
	}
}

// WithTabs sets the tabs for the application.
func (m Model) WithTabs(tabs ...Tab) Model {
	m.tabs = tabs
	return m
}

// System returns the shared read-only system descriptor.
func (m Model) System() *sysinfo.System {
	return m.system
}

// Confirmed returns the entries the user confirmed for execution, in
// selection order. Empty until a confirmation happened.
func (m Model) Confirmed() []catalog.Entry {
	return m.confirmed
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.tabs {
		if cmd := m.tabs[i].Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - headerHeight - footerHeight
		for i := range m.tabs {
			m.tabs[i].SetSize(m.width, contentHeight)
		}
		return m, nil

	case SelectionFinalizedMsg:
		if len(msg.Entries) == 0 {
			return m, nil
		}
		if m.skipConfirm {
			m.confirmed = msg.Entries
			m.quitting = true
			return m, tea.Quit
		}
		m.pending = msg.Entries
		names := make([]string, len(msg.Entries))
		for i, e := range msg.Entries {
			names[i] = e.Name
		}
		m.float = NewConfirmPrompt(names)
		return m, nil
	}

	// Forward to active tab
	if len(m.tabs) > 0 && m.activeTab < len(m.tabs) {
		var cmd tea.Cmd
		m.tabs[m.activeTab], cmd = m.tabs[m.activeTab].Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyMsg processes key events.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow Ctrl+C to quit, even over a modal.
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// A modal captures input exclusively until it yields an outcome.
	if m.float != nil {
		switch m.float.HandleKey(msg) {
		case FloatConfirm:
			m.confirmed = m.pending
			m.pending = nil
			m.float = nil
			m.quitting = true
			return m, tea.Quit
		case FloatAbort:
			m.pending = nil
			m.float = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.float = m.helpFloat()
		return m, nil

	case key.Matches(msg, keys.Tab1):
		return m.switchTab(0)
	case key.Matches(msg, keys.Tab2):
		return m.switchTab(1)

	case key.Matches(msg, keys.NextTab):
		if len(m.tabs) == 0 {
			return m, nil
		}
		return m.switchTab((m.activeTab + 1) % len(m.tabs))
	case key.Matches(msg, keys.PrevTab):
		if len(m.tabs) == 0 {
			return m, nil
		}
		idx := m.activeTab - 1
		if idx < 0 {
			idx = len(m.tabs) - 1
		}
		return m.switchTab(idx)
	}

	// Forward to active tab
	if len(m.tabs) > 0 && m.activeTab < len(m.tabs) {
		var cmd tea.Cmd
		m.tabs[m.activeTab], cmd = m.tabs[m.activeTab].Update(msg)
		return m, cmd
	}

	return m, nil
}

// helpFloat builds the help overlay for the active tab's context.
func (m Model) helpFloat() *HelpFloat {
	title := "Key bindings"
	var bindings []string
	if len(m.tabs) > 0 && m.activeTab < len(m.tabs) {
		tab := m.tabs[m.activeTab]
		title = tab.Name() + " keys"
		bindings = append(bindings, tab.KeyBindings()...)
	}
	bindings = append(bindings, GlobalBindings()...)
	return NewHelpFloat(title, bindings)
}

// switchTab changes the active tab.
func (m Model) switchTab(idx int) (tea.Model, tea.Cmd) {
	if idx >= 0 && idx < len(m.tabs) {
		if m.activeTab != idx && m.activeTab < len(m.tabs) {
			m.tabs[m.activeTab].Blur()
		}
		m.activeTab = idx
		if cmd := m.tabs[m.activeTab].Focus(); cmd != nil {
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	header := renderHeader(m.tabs, m.activeTab, m.width)
	content := m.renderContent()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// renderContent renders the active tab's content, or the floating dialog
// centered over it when one is open.
func (m Model) renderContent() string {
	contentHeight := m.height - headerHeight - footerHeight

	if m.float != nil {
		panel := m.float.Draw(m.width*2/3, contentHeight)
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, panel)
	}

	if len(m.tabs) == 0 || m.activeTab >= len(m.tabs) {
		return ""
	}

	return lipgloss.NewStyle().
		Height(contentHeight).
		Width(m.width).
		Render(m.tabs[m.activeTab].View())
}

// renderFooter renders the footer with key bindings.
func (m Model) renderFooter() string {
	if m.float != nil {
		_, shortcuts := m.float.Shortcuts()
		return renderFooter(ShortcutBindings(shortcuts), m.width)
	}

	var tabBindings []string
	if len(m.tabs) > 0 && m.activeTab < len(m.tabs) {
		tabBindings = m.tabs[m.activeTab].KeyBindings()
	}
	return renderFooter(tabBindings, m.width)
}

// ActiveTab returns the currently active tab index.
func (m Model) ActiveTab() int {
	return m.activeTab
}
