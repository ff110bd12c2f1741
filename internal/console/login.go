package console

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/se1dhe/botpanel/internal/errors"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

// loginView is the sign-in form. While a submission is pending the form
// ignores further submits; the session service does not deduplicate
// concurrent logins, so the form must not issue them.
type loginView struct {
	email    TextInput
	password TextInput
	focus    int

	submitting bool
	errText    string
}

func newLoginView() loginView {
	password := NewTextInput("Password")
	password.Masked = true
	return loginView{
		email:    NewTextInput("Email"),
		password: password,
	}
}

// reset clears the form, including any typed password.
func (v *loginView) reset() {
	v.email.Reset()
	v.password.Reset()
	v.focus = loginFieldEmail
	v.submitting = false
	v.errText = ""
}

func (v *loginView) updateKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		return v.submit(m)
	case tea.KeyTab, tea.KeyDown:
		v.focus = (v.focus + 1) % loginFieldCount
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		v.focus = (v.focus + loginFieldCount - 1) % loginFieldCount
		return nil
	}

	if v.submitting {
		return nil
	}
	v.errText = ""
	switch v.focus {
	case loginFieldEmail:
		v.email.Update(msg)
	case loginFieldPassword:
		v.password.Update(msg)
	}
	return nil
}

func (v *loginView) submit(m *Model) tea.Cmd {
	if v.submitting {
		return nil
	}
	email := strings.TrimSpace(v.email.Value())
	password := v.password.Value()
	if email == "" || password == "" {
		v.errText = "invalid credentials"
		return nil
	}

	v.submitting = true
	v.errText = ""
	return func() tea.Msg {
		return loginResultMsg{err: m.session.Login(context.Background(), email, password)}
	}
}

func (v *loginView) onResult(m *Model, msg loginResultMsg) tea.Cmd {
	v.submitting = false
	if msg.err == nil {
		// Navigation happens on the session transition message.
		return nil
	}

	// The form shows one generic message for rejected credentials and a
	// separate one for backend trouble; neither says which field was wrong.
	if apperrors.IsInvalidCredentials(msg.err) {
		v.errText = "invalid credentials"
	} else {
		v.errText = "sign-in failed, try again"
	}
	v.password.Reset()
	return nil
}

func (v *loginView) view(m *Model) string {
	title := lipgloss.NewStyle().
		Foreground(m.theme.HeaderForeground).
		Bold(true).
		Render("Bot Panel — Sign in")

	lines := []string{
		title,
		"",
		v.email.View(m.theme, v.focus == loginFieldEmail && !v.submitting),
		v.password.View(m.theme, v.focus == loginFieldPassword && !v.submitting),
		"",
	}

	switch {
	case v.submitting:
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.FaintText).Render("Signing in…"))
	case v.errText != "":
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.ErrorText).Render(v.errText))
	default:
		lines = append(lines, m.helpBar("tab switch field", "enter sign in", "ctrl+c quit"))
	}

	form := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))

	if m.width == 0 || m.height == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}
