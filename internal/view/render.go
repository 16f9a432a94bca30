// Package view turns the session state and the sample tables into screen
// descriptions. Everything here is a pure function of its inputs.
package view

import (
	"fmt"
	"strings"

	"github.com/nurpe/festival-audit/internal/model"
	"github.com/nurpe/festival-audit/internal/navigation"
	"github.com/nurpe/festival-audit/internal/shell"
)

// Store is the read-only sample data the screens draw from.
type Store interface {
	ListFestivals() []model.Festival
	ListParameters() []model.Parameter
	ListAreaWastage() []model.AreaWastage
	ListReferrals(area string) []model.ReferralOrganization
	ListImpactShares() []model.ImpactShare
	ListSustainability() []model.SustainabilityMetric
	ListAudits() []model.Audit
	Profile() model.Profile
}

var tabIcons = map[shell.Tab]string{
	shell.TabDashboard: "bar-chart",
	shell.TabAddAudit:  "plus",
	shell.TabMyAudits:  "list",
	shell.TabProfile:   "user",
}

// Render describes what a session in state s sees.
func Render(store Store, s shell.State) Screen {
	if !s.LoggedIn {
		return Screen{Kind: KindLogin, Login: renderLogin()}
	}

	screen := Screen{TabBar: renderTabBar(s.ActiveTab), ShowLogout: true}
	switch s.ActiveTab {
	case shell.TabAddAudit:
		screen.Kind = KindAddAudit
		screen.AddAudit = renderAddAudit(store, s.AuditFestival)
	case shell.TabMyAudits:
		screen.Kind = KindMyAudits
		screen.MyAudits = renderMyAudits(store)
	case shell.TabProfile:
		screen.Kind = KindProfile
		screen.Profile = renderProfile(store)
	default:
		screen.Kind = KindDashboard
		screen.Dashboard = renderDashboard(store, s.Dashboard, s.DashboardFestival)
	}
	return screen
}

func renderLogin() *LoginView {
	return &LoginView{
		Title:               "Festival Audit",
		EmailPlaceholder:    "Email",
		PasswordPlaceholder: "Password",
		ButtonLabel:         "Login",
	}
}

func renderTabBar(active shell.Tab) []TabItem {
	tabs := shell.Tabs()
	items := make([]TabItem, 0, len(tabs))
	for _, tab := range tabs {
		items = append(items, TabItem{Tab: tab, Icon: tabIcons[tab], Active: tab == active})
	}
	return items
}

func renderChips(festivals []model.Festival, selected model.Festival) []Chip {
	chips := make([]Chip, 0, len(festivals))
	for _, f := range festivals {
		chips = append(chips, Chip{Festival: f, Selected: f == selected})
	}
	return chips
}

func renderDashboard(store Store, nav navigation.State, festival model.Festival) *DashboardView {
	switch {
	case nav.Level == navigation.LevelReferralList && strings.TrimSpace(nav.Area) != "":
		orgs := store.ListReferrals(nav.Area)
		view := &ReferralView{
			BackLabel:     "← Back to Food Wastage",
			Heading:       "Redirect Food to Needy",
			Area:          nav.Area,
			Organizations: orgs,
		}
		if len(orgs) == 0 {
			view.EmptyMessage = fmt.Sprintf("No partner organizations listed for %s yet.", nav.Area)
		}
		return &DashboardView{Level: navigation.LevelReferralList, Referrals: view}

	case nav.Level == navigation.LevelAreaBreakdown || nav.Level == navigation.LevelReferralList:
		rows := store.ListAreaWastage()
		breakdown := &BreakdownView{
			BackLabel: "← Back to Dashboard",
			Heading:   "Food Wastage Details (Gachibowli)",
			Rows:      make([]AreaRow, 0, len(rows)),
		}
		for _, row := range rows {
			breakdown.Rows = append(breakdown.Rows, AreaRow{Area: row.Area, Amount: Percent(row.Amount)})
		}
		return &DashboardView{Level: navigation.LevelAreaBreakdown, Breakdown: breakdown}
	}

	return &DashboardView{
		Level: navigation.LevelOverview,
		Overview: &OverviewView{
			Title:               "Dashboard",
			Festivals:           renderChips(store.ListFestivals(), festival),
			WastageTitle:        "Food Wastage Insights",
			Wastage:             NewBarChart(store.ListAreaWastage()),
			BreakdownLabel:      "View Detailed Food Wastage Breakdown",
			ImpactTitle:         "Environmental Impact",
			Impact:              NewPieChart(store.ListImpactShares()),
			SustainabilityTitle: "Sustainability Metrics",
			Sustainability:      NewRadarChart(store.ListSustainability()),
		},
	}
}

func renderAddAudit(store Store, selected model.Festival) *AddAuditView {
	params := store.ListParameters()
	fields := make([]Field, 0, len(params))
	for _, p := range params {
		fields = append(fields, Field{
			Name:        FieldName(p),
			Label:       p,
			Placeholder: fmt.Sprintf("Enter %s value", p),
		})
	}
	return &AddAuditView{
		Heading:           "Add New Audit",
		FestivalLabel:     "Select Festival",
		Festivals:         renderChips(store.ListFestivals(), selected),
		ParametersHeading: "Environmental Parameters",
		Fields:            fields,
		SubmitLabel:       "Submit Audit",
	}
}

func renderMyAudits(store Store) *MyAuditsView {
	audits := store.ListAudits()
	rows := make([]AuditRow, 0, len(audits))
	for _, a := range audits {
		rows = append(rows, AuditRow{
			ID:       a.ID,
			Festival: a.Festival,
			Date:     a.Date,
			Score:    Percent(a.Score),
			Caption:  "Impact Score",
		})
	}
	return &MyAuditsView{Heading: "My Audits", Rows: rows}
}

func renderProfile(store Store) *ProfileView {
	p := store.Profile()
	return &ProfileView{
		Name:         p.Name,
		Title:        p.Title,
		AvatarURL:    p.AvatarURL,
		StatsHeading: "Audit Stats",
		Stats: []Stat{
			{Label: "Total Audits", Value: fmt.Sprintf("%d", p.TotalAudits)},
			{Label: "Impact Score", Value: fmt.Sprintf("%d/100", p.ImpactScore)},
		},
	}
}

func Percent(v int) string {
	return fmt.Sprintf("%d%%", v)
}

// FieldName is the form key for a parameter input, e.g. "food_wastage".
func FieldName(p model.Parameter) string {
	return strings.ReplaceAll(strings.ToLower(string(p)), " ", "_")
}
