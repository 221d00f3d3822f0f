package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalBindings(t *testing.T) {
	bindings := GlobalBindings()

	assert.Contains(t, bindings, "[?] help")
	assert.Contains(t, bindings, "[Tab] next")
	assert.Contains(t, bindings, "[q] quit")
}

func TestShortcutBindings(t *testing.T) {
	got := ShortcutBindings([]Shortcut{
		{Action: "Continue", Keys: []string{"Y", "y"}},
		{Action: "Scroll up", Keys: []string{"k"}},
	})

	assert.Equal(t, []string{"[Y/y] Continue", "[k] Scroll up"}, got)
}
