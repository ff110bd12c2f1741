package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	domainauth "github.com/se1dhe/botpanel/internal/domain/auth"
	"github.com/se1dhe/botpanel/internal/routing"
	"github.com/se1dhe/botpanel/internal/service"
)

// dashboardView shows aggregate statistics over bots and, for admins, users.
type dashboardView struct {
	stats   *service.DashboardStats
	loading bool
	err     error
}

func (v *dashboardView) onLoaded(msg statsLoadedMsg) {
	v.loading = false
	v.err = msg.err
	if msg.err == nil {
		v.stats = msg.stats
	}
}

func (v *dashboardView) updateKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Refresh) {
		return m.loadRoute(routing.RouteDashboard)
	}
	return nil
}

func (v *dashboardView) view(m *Model, snap domainauth.Snapshot) string {
	if v.loading && v.stats == nil {
		return m.centered("Loading…")
	}
	if v.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.errorLine(v.err),
			m.helpBar("r retry", "q quit"),
		)
	}
	if v.stats == nil {
		return m.centered("No data yet.")
	}

	cards := []string{
		v.card(m, "Bots", fmt.Sprintf("%d", v.stats.TotalBots),
			fmt.Sprintf("%d active / %d inactive", v.stats.ActiveBots, v.stats.InactiveBots)),
		v.card(m, "Subscribers", fmt.Sprintf("%d", v.stats.TotalSubscribers), "across all bots"),
	}
	if v.stats.UserStatsIncluded {
		cards = append(cards, v.card(m, "Users", fmt.Sprintf("%d", v.stats.TotalUsers),
			fmt.Sprintf("%d active", v.stats.ActiveUsers)))
	}

	greeting := ""
	if snap.Identity != nil {
		greeting = lipgloss.NewStyle().Foreground(m.theme.FaintText).
			Render("Welcome back, " + snap.Identity.Name + ".")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		greeting,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		m.helpBar("r refresh", "ctrl+l log out", "q quit"),
	)
}

func (v *dashboardView) card(m *Model, title, value, caption string) string {
	content := strings.Join([]string{
		lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(title),
		lipgloss.NewStyle().Foreground(m.theme.HeaderForeground).Bold(true).Render(value),
		lipgloss.NewStyle().Foreground(m.theme.HelpText).Render(caption),
	}, "\n")

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 2).
		MarginRight(2).
		Render(content)
}
