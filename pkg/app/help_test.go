package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpFloat_CloseKeys(t *testing.T) {
	h := NewHelpFloat("Actions keys", []string{"[space] toggle"})

	assert.Equal(t, FloatAbort, h.HandleKey(keyMsg("?")))
	assert.Equal(t, FloatAbort, h.HandleKey(keyMsg("esc")))
	assert.Equal(t, FloatAbort, h.HandleKey(keyMsg("q")))
}

func TestHelpFloat_OtherKeysIgnored(t *testing.T) {
	h := NewHelpFloat("Actions keys", []string{"[space] toggle"})

	for _, s := range []string{"y", "n", "j", "k", "1"} {
		assert.Equal(t, FloatNone, h.HandleKey(keyMsg(s)), s)
	}
}

func TestHelpFloat_Draw(t *testing.T) {
	h := NewHelpFloat("Actions keys", []string{"[space] toggle", "[q] quit"})

	view := h.Draw(40, 10)

	assert.Contains(t, view, "Actions keys")
	assert.Contains(t, view, "toggle")
	assert.Contains(t, view, "quit")
}

func TestHelpFloat_IsFinished(t *testing.T) {
	assert.True(t, NewHelpFloat("x", nil).IsFinished())
}
