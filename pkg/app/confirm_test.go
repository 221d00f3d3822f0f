package app

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewConfirmPrompt_Labels(t *testing.T) {
	p := NewConfirmPrompt([]string{"a", "b", "c"})

	assert.Equal(t, []string{"1. a", "2. b", "3. c"}, p.Labels())
	assert.Equal(t, 0, p.Offset())
}

func TestConfirmPrompt_Confirm(t *testing.T) {
	p := NewConfirmPrompt([]string{"a"})

	assert.Equal(t, FloatConfirm, p.HandleKey(keyMsg("y")))
	assert.Equal(t, FloatConfirm, p.HandleKey(keyMsg("Y")))
}

func TestConfirmPrompt_Abort(t *testing.T) {
	p := NewConfirmPrompt([]string{"a", "b", "c"})

	assert.Equal(t, FloatAbort, p.HandleKey(keyMsg("n")))
	assert.Equal(t, FloatAbort, p.HandleKey(keyMsg("N")))
	assert.Equal(t, FloatAbort, p.HandleKey(keyMsg("esc")))

	// Outcome is independent of the scroll offset.
	p.ScrollDown()
	p.ScrollDown()
	assert.Equal(t, FloatAbort, p.HandleKey(keyMsg("n")))
	assert.Equal(t, FloatConfirm, p.HandleKey(keyMsg("y")))
}

func TestConfirmPrompt_Scroll(t *testing.T) {
	p := NewConfirmPrompt([]string{"a", "b", "c"})

	assert.Equal(t, FloatNone, p.HandleKey(keyMsg("j")))
	assert.Equal(t, 1, p.Offset())

	assert.Equal(t, FloatNone, p.HandleKey(keyMsg("k")))
	assert.Equal(t, 0, p.Offset())

	// No-op at the top.
	p.HandleKey(keyMsg("k"))
	assert.Equal(t, 0, p.Offset())

	// Clamped at the bottom.
	for range 10 {
		p.HandleKey(keyMsg("j"))
	}
	assert.Equal(t, 2, p.Offset())
}

func TestConfirmPrompt_OffsetStaysInBounds(t *testing.T) {
	const n = 7
	names := make([]string, n)
	for i := range names {
		names[i] = "entry"
	}
	p := NewConfirmPrompt(names)

	rng := rand.New(rand.NewSource(1))
	for range 500 {
		if rng.Intn(2) == 0 {
			p.HandleKey(keyMsg("j"))
		} else {
			p.HandleKey(keyMsg("k"))
		}
		require.GreaterOrEqual(t, p.Offset(), 0)
		require.Less(t, p.Offset(), n)
	}
}

func TestConfirmPrompt_OtherKeysIgnored(t *testing.T) {
	p := NewConfirmPrompt([]string{"a", "b"})
	p.ScrollDown()

	for _, s := range []string{"x", "q", "1", "J", "K"} {
		assert.Equal(t, FloatNone, p.HandleKey(keyMsg(s)), s)
		assert.Equal(t, 1, p.Offset(), s)
	}
}

func TestConfirmPrompt_DrawShowsTailFromOffset(t *testing.T) {
	p := NewConfirmPrompt([]string{"a", "b", "c"})

	full := p.Draw(40, 10)
	assert.Contains(t, full, "1. a")
	assert.Contains(t, full, "2. b")
	assert.Contains(t, full, "Confirm selections")

	p.HandleKey(keyMsg("j"))
	scrolled := p.Draw(40, 10)
	assert.NotContains(t, scrolled, "1. a")
	assert.Contains(t, scrolled, "2. b")
	assert.Contains(t, scrolled, "3. c")
}

func TestConfirmPrompt_IsFinished(t *testing.T) {
	// Single-state modal: finished from construction.
	assert.True(t, NewConfirmPrompt([]string{"a"}).IsFinished())
}

func TestConfirmPrompt_Shortcuts(t *testing.T) {
	title, shortcuts := NewConfirmPrompt([]string{"a"}).Shortcuts()

	assert.Equal(t, "Confirmation prompt", title)

	var actions []string
	for _, s := range shortcuts {
		actions = append(actions, s.Action)
	}
	// Documents the global quit binding it does not handle itself.
	assert.Contains(t, strings.Join(actions, ","), "Close sysup")
}
