package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/festival-audit/internal/model"
	"github.com/nurpe/festival-audit/internal/navigation"
	"github.com/nurpe/festival-audit/internal/repository"
	"github.com/nurpe/festival-audit/internal/shell"
)

func newStore(t *testing.T) Store {
	t.Helper()
	repo, err := repository.NewSampleRepository()
	require.NoError(t, err)
	return repo
}

func loggedIn(actions ...shell.Action) shell.State {
	s := shell.Apply(shell.Initial(), shell.Login())
	for _, a := range actions {
		s = shell.Apply(s, a)
	}
	return s
}

// payloads counts the screen bodies that are set.
func payloads(s Screen) int {
	n := 0
	if s.Login != nil {
		n++
	}
	if s.Dashboard != nil {
		n++
	}
	if s.AddAudit != nil {
		n++
	}
	if s.MyAudits != nil {
		n++
	}
	if s.Profile != nil {
		n++
	}
	return n
}

func TestLoggedOutRendersOnlyLogin(t *testing.T) {
	store := newStore(t)
	screen := Render(store, shell.Initial())

	assert.Equal(t, KindLogin, screen.Kind)
	assert.Equal(t, 1, payloads(screen))
	assert.Empty(t, screen.TabBar)
	assert.False(t, screen.ShowLogout)
	assert.Equal(t, "Festival Audit", screen.Login.Title)

	afterLogout := Render(store, shell.Apply(loggedIn(shell.SelectTab(shell.TabProfile)), shell.Logout()))
	assert.Equal(t, KindLogin, afterLogout.Kind)
	assert.Equal(t, 1, payloads(afterLogout))
	assert.Empty(t, afterLogout.TabBar)
}

func TestExactlyOneScreenPerTab(t *testing.T) {
	store := newStore(t)
	want := map[shell.Tab]Kind{
		shell.TabDashboard: KindDashboard,
		shell.TabAddAudit:  KindAddAudit,
		shell.TabMyAudits:  KindMyAudits,
		shell.TabProfile:   KindProfile,
	}
	s := loggedIn()
	for _, tab := range []shell.Tab{shell.TabAddAudit, shell.TabProfile, shell.TabDashboard, shell.TabMyAudits, shell.TabAddAudit} {
		s = shell.Apply(s, shell.SelectTab(tab))
		screen := Render(store, s)
		assert.Equal(t, want[tab], screen.Kind)
		assert.Equal(t, 1, payloads(screen))
		require.Len(t, screen.TabBar, 4)
		active := 0
		for _, item := range screen.TabBar {
			if item.Active {
				active++
				assert.Equal(t, tab, item.Tab)
			}
		}
		assert.Equal(t, 1, active)
		assert.True(t, screen.ShowLogout)
	}
}

func TestDashboardDrillDown(t *testing.T) {
	store := newStore(t)

	overview := Render(store, loggedIn()).Dashboard
	require.NotNil(t, overview.Overview)
	assert.Equal(t, navigation.LevelOverview, overview.Level)
	assert.Len(t, overview.Overview.Festivals, 6)
	assert.Len(t, overview.Overview.Wastage.Bars, 5)

	breakdown := Render(store, loggedIn(shell.OpenBreakdown())).Dashboard
	require.NotNil(t, breakdown.Breakdown)
	assert.Nil(t, breakdown.Overview)
	assert.Equal(t, "Food Wastage Details (Gachibowli)", breakdown.Breakdown.Heading)
	assert.Equal(t, []AreaRow{
		{Area: "Commercial Events", Amount: "45%"},
		{Area: "Wedding Halls", Amount: "35%"},
		{Area: "Restaurants", Amount: "55%"},
		{Area: "Catering Services", Amount: "40%"},
		{Area: "Festivals", Amount: "50%"},
	}, breakdown.Breakdown.Rows)

	wedding := Render(store, loggedIn(shell.OpenBreakdown(), shell.SelectArea("Wedding Halls"))).Dashboard
	require.NotNil(t, wedding.Referrals)
	assert.Equal(t, "Redirect Food to Needy", wedding.Referrals.Heading)
	names := make([]string, 0)
	for _, org := range wedding.Referrals.Organizations {
		names = append(names, org.Name)
	}
	assert.Equal(t, []string{"Smile Orphanage", "Helping Hands", "Friends Being Heling Hand", "Being Human"}, names)
	assert.Empty(t, wedding.Referrals.EmptyMessage)

	unmapped := Render(store, loggedIn(shell.OpenBreakdown(), shell.SelectArea("Restaurants"))).Dashboard
	require.NotNil(t, unmapped.Referrals)
	assert.Empty(t, unmapped.Referrals.Organizations)
	assert.NotEmpty(t, unmapped.Referrals.EmptyMessage)

	back := Render(store, loggedIn(shell.OpenBreakdown(), shell.SelectArea("Restaurants"), shell.Back())).Dashboard
	assert.Equal(t, navigation.LevelAreaBreakdown, back.Level)
	require.NotNil(t, back.Breakdown)
}

func TestDashboardChipSelection(t *testing.T) {
	store := newStore(t)
	screen := Render(store, loggedIn(shell.SelectDashboardFestival(model.FestivalHoli)))
	for _, chip := range screen.Dashboard.Overview.Festivals {
		assert.Equal(t, chip.Festival == model.FestivalHoli, chip.Selected, chip.Festival)
	}
}

func TestAddAuditScenario(t *testing.T) {
	store := newStore(t)
	s := loggedIn(shell.SelectTab(shell.TabAddAudit))
	form := Render(store, s).AddAudit
	require.NotNil(t, form)

	require.Len(t, form.Fields, 6)
	assert.Equal(t, "food_wastage", form.Fields[0].Name)
	assert.Equal(t, "Enter Food Wastage value", form.Fields[0].Placeholder)
	require.Len(t, form.Festivals, 6)
	for _, chip := range form.Festivals {
		assert.False(t, chip.Selected)
	}

	s = shell.Apply(s, shell.SelectAuditFestival(model.FestivalNavratri))
	s = shell.Apply(s, shell.SubmitAudit())
	s = shell.Apply(s, shell.SelectTab(shell.TabMyAudits))
	assert.Len(t, Render(store, s).MyAudits.Rows, 3)
}

func TestMyAuditsRows(t *testing.T) {
	store := newStore(t)
	rows := Render(store, loggedIn(shell.SelectTab(shell.TabMyAudits))).MyAudits.Rows
	require.Len(t, rows, 3)
	got := make([][2]string, 0, 3)
	for _, row := range rows {
		got = append(got, [2]string{string(row.Festival), row.Score})
	}
	assert.Equal(t, [][2]string{{"Diwali", "82%"}, {"Holi", "75%"}, {"Ganesh Chaturthi", "68%"}}, got)
}

func TestProfileShowsFixedFigures(t *testing.T) {
	store := newStore(t)
	profile := Render(store, loggedIn(shell.SelectTab(shell.TabProfile))).Profile
	require.NotNil(t, profile)
	assert.Equal(t, "Rajesh Kumar", profile.Name)
	assert.Equal(t, []Stat{{Label: "Total Audits", Value: "24"}, {Label: "Impact Score", Value: "78/100"}}, profile.Stats)
}
