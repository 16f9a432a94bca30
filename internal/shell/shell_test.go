package shell

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/festival-audit/internal/model"
	"github.com/nurpe/festival-audit/internal/navigation"
)

func applyAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = Apply(s, a)
	}
	return s
}

func TestInitialState(t *testing.T) {
	s := Initial()
	assert.False(t, s.LoggedIn)
	assert.Equal(t, TabDashboard, s.ActiveTab)
	assert.Equal(t, navigation.Initial(), s.Dashboard)
}

func TestLoginAlwaysSucceeds(t *testing.T) {
	s := Apply(Initial(), Login())
	assert.True(t, s.LoggedIn)

	again := Apply(s, Login())
	assert.Equal(t, s, again)
}

func TestActionsIgnoredWhileLoggedOut(t *testing.T) {
	s := applyAll(Initial(),
		SelectTab(TabProfile),
		OpenBreakdown(),
		SelectAuditFestival(model.FestivalHoli),
		Logout(),
	)
	assert.Equal(t, Initial(), s)
}

func TestSelectTabFollowsLastSelection(t *testing.T) {
	s := Apply(Initial(), Login())
	for _, tab := range []Tab{TabProfile, TabAddAudit, TabMyAudits, TabMyAudits, TabDashboard, TabProfile} {
		s = Apply(s, SelectTab(tab))
		assert.Equal(t, tab, s.ActiveTab)
	}

	s = Apply(s, SelectTab("settings"))
	assert.Equal(t, TabProfile, s.ActiveTab)
}

func TestLeavingTabResetsScreenState(t *testing.T) {
	s := applyAll(Initial(),
		Login(),
		SelectDashboardFestival(model.FestivalNavratri),
		OpenBreakdown(),
		SelectArea("Wedding Halls"),
	)
	require.Equal(t, navigation.LevelReferralList, s.Dashboard.Level)

	same := Apply(s, SelectTab(TabDashboard))
	assert.Equal(t, s, same, "reselecting the active tab keeps the screen mounted")

	s = applyAll(s, SelectTab(TabAddAudit), SelectAuditFestival(model.FestivalHoli))
	assert.Equal(t, model.FestivalHoli, s.AuditFestival)

	s = Apply(s, SelectTab(TabDashboard))
	want := State{LoggedIn: true, ActiveTab: TabDashboard, Dashboard: navigation.Initial()}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestLogoutKeepsTabAndClearsScreens(t *testing.T) {
	s := applyAll(Initial(),
		Login(),
		SelectTab(TabAddAudit),
		SelectAuditFestival(model.FestivalChristmas),
		Logout(),
	)
	want := State{ActiveTab: TabAddAudit, Dashboard: navigation.Initial()}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}

	s = applyAll(Initial(), Login(), OpenBreakdown(), SelectArea("Festivals"), Logout(), Login())
	assert.True(t, s.Dashboard.IsOverview())
	assert.Empty(t, s.Dashboard.Area)
}

func TestDrillDownOnlyOnDashboard(t *testing.T) {
	s := applyAll(Initial(), Login(), SelectTab(TabProfile), OpenBreakdown())
	assert.True(t, s.Dashboard.IsOverview())

	s = applyAll(Initial(), Login(), OpenBreakdown(), SelectArea("Wedding Halls"), Back())
	assert.Equal(t, navigation.State{Level: navigation.LevelAreaBreakdown}, s.Dashboard)
	s = Apply(s, Back())
	assert.Equal(t, navigation.Initial(), s.Dashboard)
}

func TestFestivalSelections(t *testing.T) {
	s := applyAll(Initial(), Login(), SelectDashboardFestival(model.FestivalDurgaPuja))
	assert.Equal(t, model.FestivalDurgaPuja, s.DashboardFestival)

	s = Apply(s, SelectDashboardFestival("Easter"))
	assert.Equal(t, model.FestivalDurgaPuja, s.DashboardFestival)

	s = Apply(s, SelectAuditFestival(model.FestivalHoli))
	assert.Empty(t, s.AuditFestival, "audit festival belongs to the add-audit screen")

	s = applyAll(s, OpenBreakdown(), Back())
	assert.Equal(t, model.FestivalDurgaPuja, s.DashboardFestival)
}

func TestSubmitAuditIsNoOp(t *testing.T) {
	s := applyAll(Initial(), Login(), SelectTab(TabAddAudit), SelectAuditFestival(model.FestivalDiwali))
	assert.Equal(t, s, Apply(s, SubmitAudit()))
}

func TestParseHelpers(t *testing.T) {
	tab, err := ParseTab(" My-Audits ")
	require.NoError(t, err)
	assert.Equal(t, TabMyAudits, tab)

	_, err = ParseTab("settings")
	assert.True(t, errors.Is(err, ErrUnknownTab))

	at, err := ParseActionType("OPEN_BREAKDOWN")
	require.NoError(t, err)
	assert.Equal(t, ActionOpenBreakdown, at)

	_, err = ParseActionType("jump")
	assert.True(t, errors.Is(err, ErrUnknownAction))
}
