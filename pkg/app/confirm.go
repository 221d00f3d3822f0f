package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				Padding(0, 1)

	confirmTitleStyle = lipgloss.NewStyle().Bold(true)
)

// ConfirmPrompt is the modal dialog that reviews a finalized selection and
// yields confirm or abort. It is finished as soon as it is constructed;
// the only state that moves is the scroll offset.
type ConfirmPrompt struct {
	labels []string
	offset int
}

// NewConfirmPrompt builds the prompt from the raw selection names,
// producing 1-indexed display labels in order.
func NewConfirmPrompt(names []string) *ConfirmPrompt {
	labels := make([]string, len(names))
	for i, name := range names {
		labels[i] = fmt.Sprintf("%d. %s", i+1, name)
	}
	return &ConfirmPrompt{labels: labels}
}

// Labels returns the display labels.
func (p *ConfirmPrompt) Labels() []string {
	return p.labels
}

// Offset returns the current scroll offset.
func (p *ConfirmPrompt) Offset() int {
	return p.offset
}

// ScrollDown moves the view down one label, stopping at the last.
func (p *ConfirmPrompt) ScrollDown() {
	if p.offset < len(p.labels)-1 {
		p.offset++
	}
}

// ScrollUp moves the view up one label, stopping at the first.
func (p *ConfirmPrompt) ScrollUp() {
	if p.offset > 0 {
		p.offset--
	}
}

// HandleKey implements FloatContent.
func (p *ConfirmPrompt) HandleKey(msg tea.KeyMsg) FloatEvent {
	switch msg.String() {
	case "y", "Y":
		return FloatConfirm
	case "n", "N", "esc":
		return FloatAbort
	case "j":
		p.ScrollDown()
	case "k":
		p.ScrollUp()
	}
	return FloatNone
}

// Draw implements FloatContent. The visible body is the tail of the label
// list from the current offset, recomputed each draw.
func (p *ConfirmPrompt) Draw(width, height int) string {
	body := strings.Join(p.labels[p.offset:], "\n")

	title := confirmTitleStyle.Render(" Confirm selections ")
	panel := confirmBorderStyle.Width(width - 2).Render(body)

	// Center the title on the top border.
	lines := strings.Split(panel, "\n")
	if len(lines) > 0 {
		top := lines[0]
		titleWidth := lipgloss.Width(title)
		topWidth := lipgloss.Width(top)
		if titleWidth < topWidth-2 {
			at := (topWidth - titleWidth) / 2
			lines[0] = overlayAt(top, title, at)
		}
		panel = strings.Join(lines, "\n")
	}

	return panel
}

// overlayAt splices overlay into base at the given cell position.
func overlayAt(base, overlay string, at int) string {
	runes := []rune(base)
	width := lipgloss.Width(overlay)
	if at+width > len(runes) {
		return base
	}
	return string(runes[:at]) + overlay + string(runes[at+width:])
}

// IsFinished implements FloatContent. The prompt has a single state, so it
// is finished from construction.
func (p *ConfirmPrompt) IsFinished() bool {
	return true
}

// Shortcuts implements FloatContent. The quit binding is handled by the
// app, not the prompt; it is listed here for the help overlay.
func (p *ConfirmPrompt) Shortcuts() (string, []Shortcut) {
	return "Confirmation prompt", []Shortcut{
		{Action: "Continue", Keys: []string{"Y", "y"}},
		{Action: "Abort", Keys: []string{"N", "n"}},
		{Action: "Scroll down", Keys: []string{"j"}},
		{Action: "Scroll up", Keys: []string{"k"}},
		{Action: "Close sysup", Keys: []string{"CTRL-c", "q"}},
	}
}
