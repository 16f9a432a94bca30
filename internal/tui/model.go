// Package tui is a terminal front end for the audit app. It drives the same
// session state and screen descriptions as the web pages.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/festival-audit/internal/service"
	"github.com/nurpe/festival-audit/internal/shell"
	"github.com/nurpe/festival-audit/internal/view"
)

const (
	barWidth   = 30
	inputWidth = 32
)

// Model is the bubbletea model for one terminal session.
type Model struct {
	app     *service.AppService
	session uuid.UUID
	snap    *service.Snapshot
	log     zerolog.Logger

	email    textinput.Model
	password textinput.Model
	fields   []textinput.Model

	// focus indexes the focused text input, -1 when keys drive the screen.
	focus  int
	cursor int
	status string
	styles Styles
	quit   bool
}

func New(app *service.AppService, log zerolog.Logger) (Model, error) {
	id := app.NewSession()
	snap, err := app.Snapshot(id)
	if err != nil {
		return Model{}, err
	}

	email := textinput.New()
	email.CharLimit = 120
	email.Width = inputWidth
	password := textinput.New()
	password.CharLimit = 120
	password.Width = inputWidth
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m := Model{
		app:      app,
		session:  id,
		snap:     snap,
		log:      log,
		email:    email,
		password: password,
		styles:   DefaultStyles(),
	}
	m.remount()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		return m.exit()
	}

	switch {
	case m.snap.Screen.Kind == view.KindLogin:
		return m.updateLogin(key)
	case m.snap.Screen.Kind == view.KindAddAudit && m.focus >= 0:
		return m.updateFields(key)
	}

	switch s := key.String(); s {
	case "q":
		return m.exit()
	case "o":
		return m.dispatch(shell.Logout())
	case "1", "2", "3", "4":
		return m.dispatch(shell.SelectTab(shell.Tabs()[s[0]-'1']))
	}

	switch m.snap.Screen.Kind {
	case view.KindDashboard:
		return m.updateDashboard(key.String())
	case view.KindAddAudit:
		return m.updateAddAudit(key.String())
	}
	return m, nil
}

func (m Model) exit() (tea.Model, tea.Cmd) {
	m.quit = true
	m.app.EndSession(m.session)
	return m, tea.Quit
}

func (m Model) updateLogin(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		return m.exit()
	case tea.KeyEnter:
		// Any credentials are accepted and neither value is kept.
		return m.dispatch(shell.Login())
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.focusLogin(1 - m.focus)
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(key)
	} else {
		m.password, cmd = m.password.Update(key)
	}
	return m, cmd
}

func (m Model) updateDashboard(key string) (tea.Model, tea.Cmd) {
	d := m.snap.Screen.Dashboard
	switch {
	case d.Overview != nil:
		chips := d.Overview.Festivals
		switch key {
		case "left", "h":
			m.cursor = wrap(m.cursor-1, len(chips))
		case "right", "l":
			m.cursor = wrap(m.cursor+1, len(chips))
		case " ", "enter":
			if len(chips) > 0 {
				return m.dispatch(shell.SelectDashboardFestival(chips[m.cursor].Festival))
			}
		case "b":
			return m.dispatch(shell.OpenBreakdown())
		}
	case d.Breakdown != nil:
		rows := d.Breakdown.Rows
		switch key {
		case "up", "k":
			m.cursor = wrap(m.cursor-1, len(rows))
		case "down", "j":
			m.cursor = wrap(m.cursor+1, len(rows))
		case "enter":
			if len(rows) > 0 {
				return m.dispatch(shell.SelectArea(rows[m.cursor].Area))
			}
		case "esc", "backspace":
			return m.dispatch(shell.Back())
		}
	case d.Referrals != nil:
		if key == "esc" || key == "backspace" {
			return m.dispatch(shell.Back())
		}
	}
	return m, nil
}

func (m Model) updateAddAudit(key string) (tea.Model, tea.Cmd) {
	chips := m.snap.Screen.AddAudit.Festivals
	switch key {
	case "left", "h":
		m.cursor = wrap(m.cursor-1, len(chips))
	case "right", "l":
		m.cursor = wrap(m.cursor+1, len(chips))
	case " ", "enter":
		if len(chips) > 0 {
			return m.dispatch(shell.SelectAuditFestival(chips[m.cursor].Festival))
		}
	case "tab":
		m.focusField(0)
	case "s":
		return m.dispatch(shell.SubmitAudit())
	}
	return m, nil
}

func (m Model) updateFields(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.focusField(-1)
		return m, nil
	case tea.KeyTab:
		next := m.focus + 1
		if next >= len(m.fields) {
			next = -1
		}
		m.focusField(next)
		return m, nil
	case tea.KeyShiftTab:
		m.focusField(m.focus - 1)
		return m, nil
	case tea.KeyEnter:
		return m.dispatch(shell.SubmitAudit())
	case tea.KeyRunes:
		if !numeric(key.Runes) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(key)
	return m, cmd
}

func (m Model) dispatch(action shell.Action) (tea.Model, tea.Cmd) {
	before := screenKey(m.snap)
	snap, err := m.app.Dispatch(context.Background(), m.session, action)
	if err != nil {
		m.log.Error().Err(err).Str("action", string(action.Type)).Msg("dispatch action")
		m.status = err.Error()
		return m, nil
	}
	m.snap = snap
	m.status = ""
	if screenKey(snap) != before {
		m.remount()
	}
	return m, nil
}

// remount clears everything a screen holds locally, like a freshly
// mounted page would.
func (m *Model) remount() {
	m.cursor = 0
	m.email.Reset()
	m.password.Reset()
	m.fields = nil

	switch m.snap.Screen.Kind {
	case view.KindLogin:
		login := m.snap.Screen.Login
		m.email.Placeholder = login.EmailPlaceholder
		m.password.Placeholder = login.PasswordPlaceholder
		m.focusLogin(0)
	case view.KindAddAudit:
		for _, f := range m.snap.Screen.AddAudit.Fields {
			in := textinput.New()
			in.Placeholder = f.Placeholder
			in.CharLimit = 12
			in.Width = inputWidth
			m.fields = append(m.fields, in)
		}
		m.focusField(-1)
	default:
		m.email.Blur()
		m.password.Blur()
		m.focus = -1
	}
}

func (m *Model) focusLogin(i int) {
	m.focus = i
	if i == 0 {
		m.email.Focus()
		m.password.Blur()
		return
	}
	m.email.Blur()
	m.password.Focus()
}

func (m *Model) focusField(i int) {
	if i < -1 {
		i = -1
	}
	m.focus = i
	for j := range m.fields {
		if j == i {
			m.fields[j].Focus()
		} else {
			m.fields[j].Blur()
		}
	}
}

func (m Model) View() string {
	if m.quit {
		return ""
	}

	screen := m.snap.Screen
	var b strings.Builder
	switch screen.Kind {
	case view.KindLogin:
		m.viewLogin(&b, screen.Login)
	case view.KindDashboard:
		m.viewDashboard(&b, screen.Dashboard)
	case view.KindAddAudit:
		m.viewAddAudit(&b, screen.AddAudit)
	case view.KindMyAudits:
		m.viewMyAudits(&b, screen.MyAudits)
	case view.KindProfile:
		m.viewProfile(&b, screen.Profile)
	}

	if len(screen.TabBar) > 0 {
		b.WriteString("\n")
		b.WriteString(m.viewTabBar(screen.TabBar))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.styles.Error.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.help()))
	return m.styles.App.Render(b.String())
}

func (m Model) viewLogin(b *strings.Builder, login *view.LoginView) {
	b.WriteString(m.styles.Title.Render(login.Title))
	b.WriteString("\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.ChipSelected.Render(login.ButtonLabel))
	b.WriteString("\n")
}

func (m Model) viewDashboard(b *strings.Builder, d *view.DashboardView) {
	switch {
	case d.Breakdown != nil:
		b.WriteString(m.styles.Back.Render(d.Breakdown.BackLabel))
		b.WriteString("\n")
		b.WriteString(m.styles.Title.Render(d.Breakdown.Heading))
		b.WriteString("\n")
		for i, row := range d.Breakdown.Rows {
			fmt.Fprintf(b, "%s %-20s %s\n", m.pointer(i), row.Area, m.styles.Amount.Render(row.Amount))
		}
	case d.Referrals != nil:
		r := d.Referrals
		b.WriteString(m.styles.Back.Render(r.BackLabel))
		b.WriteString("\n")
		b.WriteString(m.styles.Title.Render(r.Heading))
		b.WriteString("\n")
		if len(r.Organizations) == 0 {
			b.WriteString(m.styles.Muted.Render(r.EmptyMessage))
			b.WriteString("\n")
		}
		for _, org := range r.Organizations {
			card := m.styles.Bold.Render(org.Name) + "\n" +
				m.styles.Muted.Render("Phone: "+org.Phone) + "\n" +
				m.styles.Muted.Render("Pincode: "+org.Pincode)
			b.WriteString(m.styles.Card.Render(card))
			b.WriteString("\n")
		}
	case d.Overview != nil:
		m.viewOverview(b, d.Overview)
	}
}

func (m Model) viewOverview(b *strings.Builder, o *view.OverviewView) {
	b.WriteString(m.styles.Title.Render(o.Title))
	b.WriteString("\n")
	b.WriteString(m.viewChips(o.Festivals))
	b.WriteString("\n")

	b.WriteString(m.styles.Heading.Render(o.WastageTitle))
	b.WriteString("\n")
	for _, bar := range o.Wastage.Bars {
		n := 0
		if o.Wastage.AxisMax > 0 {
			n = bar.Value * barWidth / o.Wastage.AxisMax
		}
		fmt.Fprintf(b, "%-18s %s %d\n", bar.Label, m.styles.Bar.Render(strings.Repeat("█", n)), bar.Value)
	}
	b.WriteString(m.styles.Back.Render(o.BreakdownLabel))
	b.WriteString("\n")

	b.WriteString(m.styles.Heading.Render(o.ImpactTitle))
	b.WriteString("\n")
	for _, s := range o.Impact.Slices {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("●")
		fmt.Fprintf(b, "%s %-22s %3d  %5.1f%%\n", dot, s.Name, s.Value, s.Percent)
	}

	b.WriteString(m.styles.Heading.Render(o.SustainabilityTitle))
	b.WriteString("\n")
	radar := o.Sustainability
	fmt.Fprintf(b, "%-12s", "")
	for _, series := range radar.Series {
		fmt.Fprintf(b, " %8s", series.Name)
	}
	b.WriteString("\n")
	for i, axis := range radar.Axes {
		fmt.Fprintf(b, "%-12s", axis.Subject)
		for _, series := range radar.Series {
			if i < len(series.Values) {
				fmt.Fprintf(b, " %8d", series.Values[i])
			}
		}
		b.WriteString("\n")
	}
}

func (m Model) viewAddAudit(b *strings.Builder, a *view.AddAuditView) {
	b.WriteString(m.styles.Title.Render(a.Heading))
	b.WriteString("\n")
	b.WriteString(m.styles.Bold.Render(a.FestivalLabel))
	b.WriteString("\n")
	b.WriteString(m.viewChips(a.Festivals))
	b.WriteString("\n")
	b.WriteString(m.styles.Heading.Render(a.ParametersHeading))
	b.WriteString("\n")
	for i, f := range a.Fields {
		b.WriteString(string(f.Label))
		b.WriteString("\n")
		if i < len(m.fields) {
			b.WriteString(m.fields[i].View())
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.ChipSelected.Render(a.SubmitLabel))
	b.WriteString("\n")
}

func (m Model) viewMyAudits(b *strings.Builder, v *view.MyAuditsView) {
	b.WriteString(m.styles.Title.Render(v.Heading))
	b.WriteString("\n")
	for _, row := range v.Rows {
		left := m.styles.Bold.Render(string(row.Festival)) + "\n" + m.styles.Muted.Render(row.Date)
		right := m.styles.Amount.Render(row.Score) + "\n" + m.styles.Muted.Render(row.Caption)
		card := lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(24).Render(left), right)
		b.WriteString(m.styles.Card.Render(card))
		b.WriteString("\n")
	}
}

func (m Model) viewProfile(b *strings.Builder, p *view.ProfileView) {
	b.WriteString(m.styles.Title.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.Heading.Render(p.StatsHeading))
	b.WriteString("\n")
	for _, stat := range p.Stats {
		fmt.Fprintf(b, "%-14s %s\n", stat.Label, m.styles.Amount.Render(stat.Value))
	}
}

func (m Model) viewChips(chips []view.Chip) string {
	parts := make([]string, 0, len(chips))
	for i, chip := range chips {
		label := string(chip.Festival)
		if i == m.cursor && m.focus < 0 {
			label = "›" + label
		}
		if chip.Selected {
			parts = append(parts, m.styles.ChipSelected.Render(label))
		} else {
			parts = append(parts, m.styles.Chip.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) viewTabBar(items []view.TabItem) string {
	parts := make([]string, 0, len(items))
	for i, item := range items {
		label := fmt.Sprintf("%d %s", i+1, item.Tab)
		if item.Active {
			parts = append(parts, m.styles.TabActive.Render(label))
		} else {
			parts = append(parts, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) pointer(i int) string {
	if i == m.cursor {
		return "›"
	}
	return " "
}

func (m Model) help() string {
	screen := m.snap.Screen
	switch screen.Kind {
	case view.KindLogin:
		return "tab switch field • enter login • esc quit"
	case view.KindDashboard:
		switch {
		case screen.Dashboard.Breakdown != nil:
			return "↑/↓ choose area • enter open • esc back • o logout • q quit"
		case screen.Dashboard.Referrals != nil:
			return "esc back • o logout • q quit"
		}
		return "←/→ festival • space select • b breakdown • 1-4 tabs • o logout • q quit"
	case view.KindAddAudit:
		if m.focus >= 0 {
			return "tab next field • enter submit • esc done"
		}
		return "←/→ festival • space select • tab edit values • s submit • 1-4 tabs • q quit"
	}
	return "1-4 tabs • o logout • q quit"
}

// screenKey identifies a mounted screen; local state survives only while
// it stays the same.
func screenKey(snap *service.Snapshot) string {
	if d := snap.Screen.Dashboard; d != nil {
		return string(snap.Screen.Kind) + "/" + string(d.Level)
	}
	return string(snap.Screen.Kind)
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return (i%n + n) % n
}

func numeric(runes []rune) bool {
	for _, r := range runes {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}
