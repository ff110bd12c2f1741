package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	domainauth "github.com/se1dhe/botpanel/internal/domain/auth"
	"github.com/se1dhe/botpanel/internal/domain/model"
	"github.com/se1dhe/botpanel/internal/routing"
	"github.com/se1dhe/botpanel/internal/util"
)

// userListPageSize caps one listing fetch.
const userListPageSize = 200

// usersView is the admin-only user management table. Reaching it at all
// requires an admin session; the guard redirects everyone else.
type usersView struct {
	users   []model.User
	cursor  int
	loading bool
	err     error
	notice  string

	deleteArmed bool
}

func newUsersView() usersView {
	return usersView{}
}

func (v *usersView) listOptions() model.UsersListOptions {
	return model.UsersListOptions{Limit: userListPageSize}
}

func (v *usersView) onLoaded(msg usersLoadedMsg) {
	v.loading = false
	v.err = msg.err
	if msg.err == nil {
		v.users = msg.users
		if v.cursor >= len(v.users) {
			v.cursor = max(0, len(v.users)-1)
		}
	}
}

func (v *usersView) onMutationDone(m *Model, msg mutationDoneMsg) tea.Cmd {
	v.err = msg.err
	if msg.err == nil {
		v.notice = msg.notice
		return m.loadRoute(routing.RouteUsers)
	}
	return nil
}

func (v *usersView) updateKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	v.notice = ""
	armed := v.deleteArmed
	v.deleteArmed = false

	switch {
	case key.Matches(msg, m.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if v.cursor < len(v.users)-1 {
			v.cursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		return m.loadRoute(routing.RouteUsers)
	case key.Matches(msg, m.keys.Toggle):
		if user := v.selected(); user != nil {
			return v.toggleActiveCmd(m, *user)
		}
	case key.Matches(msg, m.keys.Edit):
		if user := v.selected(); user != nil {
			return v.toggleRoleCmd(m, *user)
		}
	case key.Matches(msg, m.keys.Delete):
		if user := v.selected(); user != nil {
			if !armed {
				v.deleteArmed = true
				return nil
			}
			return v.deleteCmd(m, user.ID)
		}
	}
	return nil
}

func (v *usersView) toggleActiveCmd(m *Model, user model.User) tea.Cmd {
	active := !user.IsActive
	req := &model.UpdateUserRequest{IsActive: &active}
	notice := "user deactivated"
	if active {
		notice = "user activated"
	}
	return func() tea.Msg {
		_, err := m.users.Update(context.Background(), user.ID, req)
		return mutationDoneMsg{notice: notice, err: err}
	}
}

func (v *usersView) toggleRoleCmd(m *Model, user model.User) tea.Cmd {
	role := domainauth.RoleAdmin
	notice := "user promoted to admin"
	if user.Role == domainauth.RoleAdmin {
		role = domainauth.RoleUser
		notice = "admin role removed"
	}
	req := &model.UpdateUserRequest{Role: &role}
	return func() tea.Msg {
		_, err := m.users.Update(context.Background(), user.ID, req)
		return mutationDoneMsg{notice: notice, err: err}
	}
}

func (v *usersView) deleteCmd(m *Model, id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.users.Delete(context.Background(), id)
		return mutationDoneMsg{notice: "user deleted", err: err}
	}
}

func (v *usersView) selected() *model.User {
	if v.cursor < 0 || v.cursor >= len(v.users) {
		return nil
	}
	return &v.users[v.cursor]
}

func (v *usersView) view(m *Model) string {
	if v.loading && v.users == nil {
		return m.centered("Loading…")
	}

	var rows []string
	rows = append(rows, lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(
		fmt.Sprintf("  %-20s %-28s %-7s %-7s %s", "NAME", "EMAIL", "ROLE", "ACTIVE", "JOINED")))

	for i, user := range v.users {
		roleStyle := lipgloss.NewStyle().Foreground(m.theme.NormalText)
		if user.Role == domainauth.RoleAdmin {
			roleStyle = lipgloss.NewStyle().Foreground(m.theme.RoleAdmin)
		}
		activeStyle := lipgloss.NewStyle().Foreground(m.theme.StatusInactive)
		activeLabel := "no"
		if user.IsActive {
			activeStyle = lipgloss.NewStyle().Foreground(m.theme.StatusActive)
			activeLabel = "yes"
		}

		line := fmt.Sprintf("  %-20s %-28s ", clip(user.Name, 20), clip(user.Email, 28))
		line += roleStyle.Render(fmt.Sprintf("%-7s", user.Role)) + " " + activeStyle.Render(fmt.Sprintf("%-7s", activeLabel))
		line += " " + lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(util.FormatAge(user.CreatedAt))

		if i == v.cursor {
			line = lipgloss.NewStyle().
				Background(m.theme.SelectedBackground).
				Foreground(m.theme.SelectedForeground).
				Render(line)
		}
		rows = append(rows, line)
	}
	if len(v.users) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(m.theme.FaintText).Render("  No users found."))
	}

	footer := m.helpBar("t toggle active", "e toggle role", "d delete", "r refresh", "q quit")
	if v.deleteArmed {
		footer = lipgloss.NewStyle().Foreground(m.theme.ErrorText).Render("Press d again to delete the selected user.")
	} else if v.err != nil {
		footer = m.errorLine(v.err)
	} else if v.notice != "" {
		footer = lipgloss.NewStyle().Foreground(m.theme.SuccessText).Render(v.notice)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		strings.Join(rows, "\n"),
		"",
		footer,
	)
}
