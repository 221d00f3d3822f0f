package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	helpTitleStyle = lipgloss.NewStyle().Bold(true)
)

// HelpFloat is the modal overlay listing the key bindings active in the
// current context.
type HelpFloat struct {
	title    string
	bindings []string
}

// NewHelpFloat creates the overlay for the given context name and its
// "[key] action" binding strings.
func NewHelpFloat(title string, bindings []string) *HelpFloat {
	return &HelpFloat{title: title, bindings: bindings}
}

// HandleKey implements FloatContent. The key that opened the overlay also
// dismisses it.
func (h *HelpFloat) HandleKey(msg tea.KeyMsg) FloatEvent {
	switch msg.String() {
	case "?", "esc", "q":
		return FloatAbort
	}
	return FloatNone
}

// Draw implements FloatContent.
func (h *HelpFloat) Draw(width, height int) string {
	var sb strings.Builder
	sb.WriteString(helpTitleStyle.Render(h.title))
	sb.WriteString("\n\n")
	for _, b := range h.bindings {
		sb.WriteString(formatBinding(b))
		sb.WriteString("\n")
	}
	return helpBorderStyle.Width(width - 2).Render(strings.TrimRight(sb.String(), "\n"))
}

// IsFinished implements FloatContent.
func (h *HelpFloat) IsFinished() bool {
	return true
}

// Shortcuts implements FloatContent.
func (h *HelpFloat) Shortcuts() (string, []Shortcut) {
	return h.title, []Shortcut{
		{Action: "Close help", Keys: []string{"?", "esc"}},
	}
}
