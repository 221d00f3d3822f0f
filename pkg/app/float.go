package app

import tea "github.com/charmbracelet/bubbletea"

// FloatEvent is the outcome a floating dialog surfaces to the app.
type FloatEvent int

const (
	// FloatNone means the input changed nothing the app needs to act on.
	FloatNone FloatEvent = iota

	// FloatConfirm means the user accepted the dialog's proposition.
	FloatConfirm

	// FloatAbort means the user rejected or dismissed the dialog.
	FloatAbort
)

// Shortcut documents one key binding for help overlays.
type Shortcut struct {
	Action string
	Keys   []string
}

// FloatContent is a modal dialog variant. The app owns exactly one float
// at a time; while it is set, all key input is routed here and nowhere
// else. The confirmation prompt is one implementation; other dialog
// variants plug in through the same interface.
type FloatContent interface {
	// Draw renders the dialog panel at the given size.
	Draw(width, height int) string

	// HandleKey processes one key event and reports the outcome. FloatNone
	// means the dialog stays open.
	HandleKey(msg tea.KeyMsg) FloatEvent

	// IsFinished reports whether the dialog has no further steps pending.
	IsFinished() bool

	// Shortcuts returns the dialog's title and key bindings for the help
	// overlay. The list may document bindings handled elsewhere (e.g. the
	// global quit key) purely for display.
	Shortcuts() (string, []Shortcut)
}
