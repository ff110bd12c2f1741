package console

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	domainauth "github.com/se1dhe/botpanel/internal/domain/auth"
	"github.com/se1dhe/botpanel/internal/routing"
	"github.com/se1dhe/botpanel/internal/service"
)

// sessionEventBuffer bounds the transition queue between the session
// service and the message loop. Transitions are rare (login, logout,
// rejection); the buffer only absorbs bursts while a frame renders.
const sessionEventBuffer = 16

// ModelOptions groups dependencies for the root console model.
type ModelOptions struct {
	Session   *service.SessionService
	Bots      *service.BotService
	Users     *service.UserService
	Dashboard *service.DashboardService
}

// Model is the root bubbletea model. It owns the current route, runs every
// navigation through the guard, and dispatches messages to the per-route
// views.
type Model struct {
	session   *service.SessionService
	bots      *service.BotService
	users     *service.UserService
	dashboard *service.DashboardService

	keys  KeyMap
	theme Theme

	route   routing.Route
	pending routing.Route // navigation deferred until hydration resolves

	width  int
	height int

	sessionEvents chan domainauth.Snapshot

	loginView     loginView
	dashboardView dashboardView
	botsView      botsView
	usersView     usersView

	quitting bool
}

// NewModel constructs the root model. The session service must not be
// hydrated yet; Init triggers hydration.
func NewModel(opts ModelOptions) (*Model, error) {
	if opts.Session == nil {
		return nil, errors.New("session service is required")
	}
	if opts.Bots == nil {
		return nil, errors.New("bot service is required")
	}
	if opts.Users == nil {
		return nil, errors.New("user service is required")
	}
	if opts.Dashboard == nil {
		return nil, errors.New("dashboard service is required")
	}

	m := &Model{
		session:       opts.Session,
		bots:          opts.Bots,
		users:         opts.Users,
		dashboard:     opts.Dashboard,
		keys:          DefaultKeyMap,
		theme:         DefaultTheme,
		route:         routing.RouteDashboard,
		pending:       routing.RouteDashboard,
		sessionEvents: make(chan domainauth.Snapshot, sessionEventBuffer),
		loginView:     newLoginView(),
		botsView:      newBotsView(),
		usersView:     newUsersView(),
	}

	// Transitions are forwarded into the message loop. The send never
	// blocks the mutating goroutine; if the buffer is full the next
	// snapshot read supersedes the dropped one anyway.
	opts.Session.Subscribe(func(snap domainauth.Snapshot) {
		select {
		case m.sessionEvents <- snap:
		default:
		}
	})

	return m, nil
}

// Init starts hydration and the session event pump.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.hydrateCmd(), m.waitForSessionEvent())
}

func (m *Model) hydrateCmd() tea.Cmd {
	return func() tea.Msg {
		m.session.Hydrate(context.Background())
		return nil
	}
}

func (m *Model) waitForSessionEvent() tea.Cmd {
	return func() tea.Msg {
		return sessionChangedMsg{snapshot: <-m.sessionEvents}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionChangedMsg:
		cmd := m.onSessionChanged(msg.snapshot)
		return m, tea.Batch(cmd, m.waitForSessionEvent())

	case loginResultMsg:
		return m, m.loginView.onResult(m, msg)

	case logoutDoneMsg:
		// The transition already arrived via the session subscription;
		// nothing more to do here.
		return m, nil

	case statsLoadedMsg:
		m.dashboardView.onLoaded(msg)
		return m, nil

	case botsLoadedMsg:
		m.botsView.onLoaded(msg)
		return m, nil

	case usersLoadedMsg:
		m.usersView.onLoaded(msg)
		return m, nil

	case mutationDoneMsg:
		return m, m.onMutationDone(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always exits, regardless of focus.
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	snap := m.session.Snapshot()

	// Until hydration resolves there is nothing to interact with.
	if snap.State == domainauth.StateUnresolved {
		return m, nil
	}

	if m.activeRoute(snap) == routing.RouteLogin {
		return m, m.loginView.updateKey(m, msg)
	}

	// Form-owning views capture all input while a form is open.
	if m.route == routing.RouteBots && m.botsView.formOpen() {
		return m, m.botsView.updateKey(m, msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Logout):
		return m, m.logoutCmd()
	case key.Matches(msg, m.keys.GoDashboard):
		return m, m.navigate(routing.RouteDashboard)
	case key.Matches(msg, m.keys.GoBots):
		return m, m.navigate(routing.RouteBots)
	case key.Matches(msg, m.keys.GoUsers):
		return m, m.navigate(routing.RouteUsers)
	}

	switch m.route {
	case routing.RouteDashboard:
		return m, m.dashboardView.updateKey(m, msg)
	case routing.RouteBots:
		return m, m.botsView.updateKey(m, msg)
	case routing.RouteUsers:
		return m, m.usersView.updateKey(m, msg)
	}
	return m, nil
}

// onSessionChanged re-runs the guard after every session transition, so a
// login lands on the deferred route and a rejection mid-flight bounces to
// the sign-in view.
func (m *Model) onSessionChanged(snap domainauth.Snapshot) tea.Cmd {
	if snap.IsAuthenticated() {
		target := m.pending
		if target == routing.RouteLogin || target == "" {
			target = routing.RouteDashboard
		}
		return m.navigate(target)
	}

	// Signed out (hydration failure, logout, or rejected credential).
	m.loginView.reset()
	m.route = routing.RouteLogin
	return nil
}

// navigate runs the guard for the requested route and applies the decision.
func (m *Model) navigate(route routing.Route) tea.Cmd {
	snap := m.session.Snapshot()
	switch routing.Evaluate(snap, route) {
	case routing.DecisionAllow:
		m.route = route
		m.pending = route
		return m.loadRoute(route)
	case routing.DecisionRedirectDashboard:
		m.route = routing.RouteDashboard
		m.pending = routing.RouteDashboard
		return m.loadRoute(routing.RouteDashboard)
	case routing.DecisionRedirectLogin:
		m.pending = route
		// The sign-in route has its own guard: an authenticated session
		// bounced off an admin route chains through it to the dashboard
		// instead of a sign-in form it has no use for.
		if routing.Evaluate(snap, routing.RouteLogin) == routing.DecisionRedirectDashboard {
			m.pending = routing.RouteDashboard
			m.route = routing.RouteDashboard
			return m.loadRoute(routing.RouteDashboard)
		}
		m.route = routing.RouteLogin
		return nil
	default: // DecisionPending
		m.pending = route
		return nil
	}
}

// loadRoute kicks off the data fetch backing a view.
func (m *Model) loadRoute(route routing.Route) tea.Cmd {
	switch route {
	case routing.RouteDashboard:
		m.dashboardView.loading = true
		return func() tea.Msg {
			stats, err := m.dashboard.Stats(context.Background())
			return statsLoadedMsg{stats: stats, err: err}
		}
	case routing.RouteBots:
		m.botsView.loading = true
		return func() tea.Msg {
			bots, err := m.bots.List(context.Background(), m.botsView.listOptions())
			return botsLoadedMsg{bots: bots, err: err}
		}
	case routing.RouteUsers:
		m.usersView.loading = true
		return func() tea.Msg {
			users, err := m.users.List(context.Background(), m.usersView.listOptions())
			return usersLoadedMsg{users: users, err: err}
		}
	}
	return nil
}

func (m *Model) onMutationDone(msg mutationDoneMsg) tea.Cmd {
	switch m.route {
	case routing.RouteBots:
		return m.botsView.onMutationDone(m, msg)
	case routing.RouteUsers:
		return m.usersView.onMutationDone(m, msg)
	}
	return nil
}

func (m *Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		m.session.Logout(context.Background())
		return logoutDoneMsg{}
	}
}

// activeRoute resolves which view is effectively showing: the sign-in view
// shadows everything while the session is unauthenticated.
func (m *Model) activeRoute(snap domainauth.Snapshot) routing.Route {
	if snap.State == domainauth.StateUnauthenticated {
		return routing.RouteLogin
	}
	return m.route
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()

	// Neutral loading state while hydration is in flight. Guarded views
	// must not flash before the session resolves.
	if snap.State == domainauth.StateUnresolved {
		return m.centered("Restoring session…")
	}

	if m.activeRoute(snap) == routing.RouteLogin {
		return m.loginView.view(m)
	}

	var body string
	switch m.route {
	case routing.RouteDashboard:
		body = m.dashboardView.view(m, snap)
	case routing.RouteBots:
		body = m.botsView.view(m)
	case routing.RouteUsers:
		body = m.usersView.view(m)
	default:
		body = m.centered("Nothing here.")
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.headerBar(snap), body)
}

// headerBar renders the navigation tabs and the signed-in identity.
func (m *Model) headerBar(snap domainauth.Snapshot) string {
	tabStyle := lipgloss.NewStyle().Foreground(m.theme.FaintText).Padding(0, 1)
	activeStyle := lipgloss.NewStyle().
		Foreground(m.theme.SelectedForeground).
		Background(m.theme.SelectedBackground).
		Bold(true).
		Padding(0, 1)

	render := func(route routing.Route, label string) string {
		if m.route == route {
			return activeStyle.Render(label)
		}
		return tabStyle.Render(label)
	}

	tabs := []string{
		render(routing.RouteDashboard, "1 Dashboard"),
		render(routing.RouteBots, "2 Bots"),
	}
	if snap.IsAdmin() {
		tabs = append(tabs, render(routing.RouteUsers, "3 Users"))
	}

	who := ""
	if snap.Identity != nil {
		who = snap.Identity.Email
		if snap.IsAdmin() {
			who += " " + lipgloss.NewStyle().Foreground(m.theme.RoleAdmin).Render("[admin]")
		}
	}

	left := strings.Join(tabs, " ")
	right := lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(who)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(m.theme.BorderColor).
		Width(max(m.width, lipgloss.Width(bar))).
		Render(bar)
}

// helpBar renders a single line of key hints.
func (m *Model) helpBar(hints ...string) string {
	return lipgloss.NewStyle().
		Foreground(m.theme.HelpText).
		Render(strings.Join(hints, "  "))
}

func (m *Model) centered(text string) string {
	if m.width == 0 || m.height == 0 {
		return text
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(text))
}

func (m *Model) errorLine(err error) string {
	if err == nil {
		return ""
	}
	return lipgloss.NewStyle().Foreground(m.theme.ErrorText).Render(err.Error())
}
