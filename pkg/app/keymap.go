package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the application.
type KeyMap struct {
	// Navigation
	Quit    key.Binding
	Help    key.Binding
	NextTab key.Binding
	PrevTab key.Binding

	// Tab shortcuts
	Tab1 key.Binding
	Tab2 key.Binding

	// Common actions
	Up   key.Binding
	Down key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "prev tab"),
		),
		Tab1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Actions"),
		),
		Tab2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "System"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
	}
}

// keys is the global key map instance.
var keys = DefaultKeyMap()

// Keys returns the global key map.
func Keys() KeyMap {
	return keys
}

// ActionsKeyMap defines key bindings specific to the actions list.
type ActionsKeyMap struct {
	Toggle  key.Binding
	Confirm key.Binding
}

// DefaultActionsKeyMap returns default actions list key bindings.
func DefaultActionsKeyMap() ActionsKeyMap {
	return ActionsKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run selected"),
		),
	}
}
