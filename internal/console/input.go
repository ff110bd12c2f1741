package console

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInput is a single-line text field with cursor tracking. Masked
// inputs render bullets instead of the typed runes (passwords).
type TextInput struct {
	Label  string
	Masked bool

	value  []rune
	cursor int
}

// NewTextInput creates an empty input with the given label.
func NewTextInput(label string) TextInput {
	return TextInput{Label: label}
}

// Value returns the current content.
func (input TextInput) Value() string {
	return string(input.value)
}

// SetValue replaces the content and puts the cursor at the end.
func (input *TextInput) SetValue(value string) {
	input.value = []rune(value)
	input.cursor = len(input.value)
}

// Reset clears the content.
func (input *TextInput) Reset() {
	input.value = nil
	input.cursor = 0
}

// Update processes a key message for the input.
func (input *TextInput) Update(message tea.KeyMsg) {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			input.value = append(input.value[:input.cursor], append([]rune{character}, input.value[input.cursor:]...)...)
			input.cursor++
		}

	case tea.KeyBackspace:
		if input.cursor > 0 {
			input.value = append(input.value[:input.cursor-1], input.value[input.cursor:]...)
			input.cursor--
		}

	case tea.KeyDelete:
		if input.cursor < len(input.value) {
			input.value = append(input.value[:input.cursor], input.value[input.cursor+1:]...)
		}

	case tea.KeyLeft:
		if input.cursor > 0 {
			input.cursor--
		}

	case tea.KeyRight:
		if input.cursor < len(input.value) {
			input.cursor++
		}

	case tea.KeyHome, tea.KeyCtrlA:
		input.cursor = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		input.cursor = len(input.value)

	case tea.KeyCtrlU:
		input.value = append([]rune{}, input.value[input.cursor:]...)
		input.cursor = 0
	}
}

// View renders the input. The cursor block is drawn only when focused.
func (input TextInput) View(theme Theme, focused bool) string {
	display := input.value
	if input.Masked {
		display = []rune(strings.Repeat("•", len(input.value)))
	}

	var builder strings.Builder
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	if focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	}
	builder.WriteString(labelStyle.Render(input.Label + ": "))

	textStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	cursorStyle := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.InputCursor)

	if !focused {
		builder.WriteString(textStyle.Render(string(display)))
		return builder.String()
	}

	builder.WriteString(textStyle.Render(string(display[:input.cursor])))
	if input.cursor < len(display) {
		builder.WriteString(cursorStyle.Render(string(display[input.cursor])))
		builder.WriteString(textStyle.Render(string(display[input.cursor+1:])))
	} else {
		builder.WriteString(cursorStyle.Render(" "))
	}
	return builder.String()
}
