package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/se1dhe/botpanel/internal/domain/model"
	"github.com/se1dhe/botpanel/internal/routing"
	"github.com/se1dhe/botpanel/internal/util"
)

const (
	botFieldName = iota
	botFieldDescription
	botFieldCategory
	botFieldPrice
	botFieldCount
)

// botListPageSize caps one listing fetch.
const botListPageSize = 200

// botForm edits a single bot. A nil editingID means the form creates.
type botForm struct {
	editingID   int64
	name        TextInput
	description TextInput
	category    TextInput
	price       TextInput
	focus       int

	submitting bool
	errText    string
}

func newBotForm(bot *model.Bot) *botForm {
	form := &botForm{
		name:        NewTextInput("Name"),
		description: NewTextInput("Description"),
		category:    NewTextInput("Category"),
		price:       NewTextInput("Price"),
	}
	if bot != nil {
		form.editingID = bot.ID
		form.name.SetValue(bot.Name)
		form.description.SetValue(bot.Description)
		form.category.SetValue(bot.Category)
		form.price.SetValue(strconv.FormatFloat(bot.Price, 'f', -1, 64))
	}
	return form
}

// botsView lists bots with create, edit, toggle, and delete actions.
type botsView struct {
	bots    []model.Bot
	cursor  int
	loading bool
	err     error
	notice  string

	form *botForm

	// deleteArmed requires a second press before a delete is issued.
	deleteArmed bool
}

func newBotsView() botsView {
	return botsView{}
}

func (v *botsView) listOptions() model.BotsListOptions {
	return model.BotsListOptions{Limit: botListPageSize}
}

func (v *botsView) formOpen() bool {
	return v.form != nil
}

func (v *botsView) onLoaded(msg botsLoadedMsg) {
	v.loading = false
	v.err = msg.err
	if msg.err == nil {
		v.bots = msg.bots
		if v.cursor >= len(v.bots) {
			v.cursor = max(0, len(v.bots)-1)
		}
	}
}

func (v *botsView) onMutationDone(m *Model, msg mutationDoneMsg) tea.Cmd {
	if v.form != nil {
		v.form.submitting = false
		if msg.err != nil {
			v.form.errText = msg.err.Error()
			return nil
		}
		v.form = nil
	}
	v.err = msg.err
	if msg.err == nil {
		v.notice = msg.notice
		return m.loadRoute(routing.RouteBots)
	}
	return nil
}

func (v *botsView) updateKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	if v.form != nil {
		return v.updateFormKey(m, msg)
	}

	v.notice = ""
	armed := v.deleteArmed
	v.deleteArmed = false

	switch {
	case key.Matches(msg, m.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if v.cursor < len(v.bots)-1 {
			v.cursor++
		}
	case key.Matches(msg, m.keys.Refresh):
		return m.loadRoute(routing.RouteBots)
	case key.Matches(msg, m.keys.New):
		v.form = newBotForm(nil)
	case key.Matches(msg, m.keys.Edit):
		if bot := v.selected(); bot != nil {
			v.form = newBotForm(bot)
		}
	case key.Matches(msg, m.keys.Toggle):
		if bot := v.selected(); bot != nil {
			return v.toggleCmd(m, *bot)
		}
	case key.Matches(msg, m.keys.Delete):
		if bot := v.selected(); bot != nil {
			if !armed {
				v.deleteArmed = true
				return nil
			}
			return v.deleteCmd(m, bot.ID)
		}
	}
	return nil
}

func (v *botsView) updateFormKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	form := v.form
	switch msg.Type {
	case tea.KeyEsc:
		if !form.submitting {
			v.form = nil
		}
		return nil
	case tea.KeyEnter:
		return v.submitForm(m)
	case tea.KeyTab, tea.KeyDown:
		form.focus = (form.focus + 1) % botFieldCount
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		form.focus = (form.focus + botFieldCount - 1) % botFieldCount
		return nil
	}

	if form.submitting {
		return nil
	}
	form.errText = ""
	switch form.focus {
	case botFieldName:
		form.name.Update(msg)
	case botFieldDescription:
		form.description.Update(msg)
	case botFieldCategory:
		form.category.Update(msg)
	case botFieldPrice:
		form.price.Update(msg)
	}
	return nil
}

func (v *botsView) submitForm(m *Model) tea.Cmd {
	form := v.form
	if form.submitting {
		return nil
	}

	price := float64(0)
	if raw := strings.TrimSpace(form.price.Value()); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			form.errText = "price must be a number"
			return nil
		}
		price = parsed
	}

	form.submitting = true
	form.errText = ""

	if form.editingID == 0 {
		req := &model.CreateBotRequest{
			Name:        form.name.Value(),
			Description: form.description.Value(),
			Category:    form.category.Value(),
			Price:       price,
		}
		return func() tea.Msg {
			_, err := m.bots.Create(context.Background(), req)
			return mutationDoneMsg{notice: "bot created", err: err}
		}
	}

	name := form.name.Value()
	description := form.description.Value()
	category := form.category.Value()
	req := &model.UpdateBotRequest{
		Name:        &name,
		Description: &description,
		Category:    &category,
		Price:       &price,
	}
	id := form.editingID
	return func() tea.Msg {
		_, err := m.bots.Update(context.Background(), id, req)
		return mutationDoneMsg{notice: "bot updated", err: err}
	}
}

func (v *botsView) toggleCmd(m *Model, bot model.Bot) tea.Cmd {
	return func() tea.Msg {
		_, err := m.bots.ToggleStatus(context.Background(), bot)
		return mutationDoneMsg{notice: "bot status updated", err: err}
	}
}

func (v *botsView) deleteCmd(m *Model, id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.bots.Delete(context.Background(), id)
		return mutationDoneMsg{notice: "bot deleted", err: err}
	}
}

func (v *botsView) selected() *model.Bot {
	if v.cursor < 0 || v.cursor >= len(v.bots) {
		return nil
	}
	return &v.bots[v.cursor]
}

func (v *botsView) view(m *Model) string {
	if v.form != nil {
		return v.formView(m)
	}
	if v.loading && v.bots == nil {
		return m.centered("Loading…")
	}

	var rows []string
	rows = append(rows, lipgloss.NewStyle().Foreground(m.theme.FaintText).Render(
		fmt.Sprintf("  %-24s %-14s %8s %6s %-10s %s", "NAME", "CATEGORY", "PRICE", "SUBS", "CREATED", "STATUS")))

	for i, bot := range v.bots {
		statusStyle := lipgloss.NewStyle().Foreground(m.theme.StatusInactive)
		if bot.Status == model.BotStatusActive {
			statusStyle = lipgloss.NewStyle().Foreground(m.theme.StatusActive)
		}
		line := fmt.Sprintf("  %-24s %-14s %8s %6d %-10s ",
			clip(bot.Name, 24), clip(bot.Category, 14), util.FormatPrice(bot.Price), bot.Subscribers, util.FormatAge(bot.CreatedAt))
		line += statusStyle.Render(string(bot.Status))

		if i == v.cursor {
			line = lipgloss.NewStyle().
				Background(m.theme.SelectedBackground).
				Foreground(m.theme.SelectedForeground).
				Render(line)
		}
		rows = append(rows, line)
	}
	if len(v.bots) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(m.theme.FaintText).Render("  No bots yet. Press n to add one."))
	}

	footer := m.helpBar("n new", "e edit", "t toggle", "d delete", "r refresh", "q quit")
	if v.deleteArmed {
		footer = lipgloss.NewStyle().Foreground(m.theme.ErrorText).Render("Press d again to delete the selected bot.")
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

func (v *botsView) formView(m *Model) string {
	form := v.form
	title := "New bot"
	if form.editingID != 0 {
		title = fmt.Sprintf("Edit bot #%d", form.editingID)
	}

	focused := func(field int) bool {
		return form.focus == field && !form.submitting
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(m.theme.HeaderForeground).Bold(true).Render(title),
		"",
		form.name.View(m.theme, focused(botFieldName)),
		form.description.View(m.theme, focused(botFieldDescription)),
		form.category.View(m.theme, focused(botFieldCategory)),
		form.price.View(m.theme, focused(botFieldPrice)),
		"",
	}

	switch {
	case form.submitting:
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.FaintText).Render("Saving…"))
	case form.errText != "":
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.ErrorText).Render(form.errText))
	default:
		lines = append(lines, m.helpBar("tab switch field", "enter save", "esc cancel"))
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, box)
}

// clip truncates a string to width runes, appending an ellipsis when cut.
func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
