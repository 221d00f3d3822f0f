// Package system provides the read-only tab showing the probed host
// identity.
package system

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaspreet-dot-casa/sysup/pkg/app"
	"github.com/jaspreet-dot-casa/sysup/pkg/sysinfo"
)

// Model is the system info tab.
type Model struct {
	app.BaseTab

	system *sysinfo.System
}

// New creates the system tab for the probed descriptor.
func New(sys *sysinfo.System) *Model {
	base := app.NewBaseTab(app.TabSystem, "System", "2")
	return &Model{
		BaseTab: base,
		system:  sys,
	}
}

// Init implements app.Tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements app.Tab. The tab is read-only.
func (m *Model) Update(_ tea.Msg) (app.Tab, tea.Cmd) {
	return m, nil
}

// View implements app.Tab.
func (m *Model) View() string {
	manager := app.WarningStyle.Render("none detected")
	note := "Package-manager actions are hidden."
	if m.system.PackageManager != nil {
		manager = app.SuccessStyle.Render(m.system.PackageManager.Name())
		note = "All actions are available."
	}

	var sb strings.Builder
	sb.WriteString(app.BoldStyle.Render("Detected system"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  %s %s\n", app.DimStyle.Render("Name:"), m.system.PrettyName))
	sb.WriteString(fmt.Sprintf("  %s %s\n", app.DimStyle.Render("ID:  "), m.system.ID))
	sb.WriteString(fmt.Sprintf("  %s %s\n", app.DimStyle.Render("Pkg: "), manager))
	sb.WriteString("\n")
	sb.WriteString(app.DimStyle.Render(note))

	return sb.String()
}

// KeyBindings implements app.Tab.
func (m *Model) KeyBindings() []string {
	return nil
}
