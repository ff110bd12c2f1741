package console

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func keyRunes(s string) []tea.KeyMsg {
	var msgs []tea.KeyMsg
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func TestTextInput_TypingAndEditing(t *testing.T) {
	input := NewTextInput("Email")
	for _, msg := range keyRunes("a@x.cmo") {
		input.Update(msg)
	}

	// Fix the transposed suffix: cmo -> com.
	input.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	input.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	input.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	for _, msg := range keyRunes("com") {
		input.Update(msg)
	}

	assert.Equal(t, "a@x.com", input.Value())
}

func TestTextInput_CursorMovementAndInsert(t *testing.T) {
	input := NewTextInput("Name")
	for _, msg := range keyRunes("bt") {
		input.Update(msg)
	}

	input.Update(tea.KeyMsg{Type: tea.KeyLeft})
	for _, msg := range keyRunes("o") {
		input.Update(msg)
	}

	assert.Equal(t, "bot", input.Value())
}

func TestTextInput_CtrlUClearsToStart(t *testing.T) {
	input := NewTextInput("Name")
	for _, msg := range keyRunes("discard") {
		input.Update(msg)
	}

	input.Update(tea.KeyMsg{Type: tea.KeyCtrlU})

	assert.Empty(t, input.Value())
}

func TestTextInput_MaskedViewHidesContent(t *testing.T) {
	input := NewTextInput("Password")
	input.Masked = true
	input.SetValue("hunter2")

	view := input.View(DefaultTheme, false)

	assert.NotContains(t, view, "hunter2")
	assert.Contains(t, view, "•")
}
