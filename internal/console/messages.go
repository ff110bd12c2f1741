package console

import (
	domainauth "github.com/se1dhe/botpanel/internal/domain/auth"
	"github.com/se1dhe/botpanel/internal/domain/model"
	"github.com/se1dhe/botpanel/internal/service"
)

// sessionChangedMsg delivers a session transition into the bubbletea
// message loop. Pushed by the session subscription, consumed by the root
// model to re-run the route guard.
type sessionChangedMsg struct {
	snapshot domainauth.Snapshot
}

// loginResultMsg is sent when a sign-in attempt completes.
type loginResultMsg struct {
	err error
}

// logoutDoneMsg is sent when logout finished. Local state is already
// cleared by then regardless of the server call's outcome.
type logoutDoneMsg struct{}

// statsLoadedMsg carries a dashboard stats refresh.
type statsLoadedMsg struct {
	stats *service.DashboardStats
	err   error
}

// botsLoadedMsg carries a bot listing refresh.
type botsLoadedMsg struct {
	bots []model.Bot
	err  error
}

// usersLoadedMsg carries a user listing refresh.
type usersLoadedMsg struct {
	users []model.User
	err   error
}

// mutationDoneMsg is sent when a create/update/delete call completes. The
// owning view reloads its listing on success and shows the error otherwise.
type mutationDoneMsg struct {
	notice string
	err    error
}
