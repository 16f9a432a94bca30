// Package shell owns the session view state: the login gate, the active
// bottom tab, and the ephemeral selections held by the screens.
//
// State is a plain value. The only way to change it is Apply, which
// returns the next state for an action.
package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nurpe/festival-audit/internal/model"
	"github.com/nurpe/festival-audit/internal/navigation"
)

var (
	ErrUnknownTab    = errors.New("unknown tab")
	ErrUnknownAction = errors.New("unknown action")
)

type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabAddAudit  Tab = "add-audit"
	TabMyAudits  Tab = "my-audits"
	TabProfile   Tab = "profile"
)

// Tabs returns the bottom bar in display order.
func Tabs() []Tab {
	return []Tab{TabDashboard, TabAddAudit, TabMyAudits, TabProfile}
}

func ParseTab(raw string) (Tab, error) {
	tab := Tab(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Tabs() {
		if tab == known {
			return tab, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, raw)
}

type State struct {
	LoggedIn          bool             `json:"logged_in"`
	ActiveTab         Tab              `json:"active_tab"`
	Dashboard         navigation.State `json:"dashboard"`
	DashboardFestival model.Festival   `json:"dashboard_festival,omitempty"`
	AuditFestival     model.Festival   `json:"audit_festival,omitempty"`
}

func Initial() State {
	return State{
		ActiveTab: TabDashboard,
		Dashboard: navigation.Initial(),
	}
}

type ActionType string

const (
	ActionLogin                   ActionType = "login"
	ActionLogout                  ActionType = "logout"
	ActionSelectTab               ActionType = "select_tab"
	ActionSelectDashboardFestival ActionType = "select_dashboard_festival"
	ActionOpenBreakdown           ActionType = "open_breakdown"
	ActionSelectArea              ActionType = "select_area"
	ActionBack                    ActionType = "back"
	ActionSelectAuditFestival     ActionType = "select_audit_festival"
	ActionSubmitAudit             ActionType = "submit_audit"
)

func ParseActionType(raw string) (ActionType, error) {
	t := ActionType(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case ActionLogin, ActionLogout, ActionSelectTab, ActionSelectDashboardFestival,
		ActionOpenBreakdown, ActionSelectArea, ActionBack, ActionSelectAuditFestival,
		ActionSubmitAudit:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// Action is a user interaction. Only the field matching Type is read.
type Action struct {
	Type     ActionType
	Tab      Tab
	Area     string
	Festival model.Festival
}

func Login() Action { return Action{Type: ActionLogin} }

func Logout() Action { return Action{Type: ActionLogout} }

func SelectTab(tab Tab) Action { return Action{Type: ActionSelectTab, Tab: tab} }

func OpenBreakdown() Action { return Action{Type: ActionOpenBreakdown} }

func SelectArea(area string) Action { return Action{Type: ActionSelectArea, Area: area} }

func Back() Action { return Action{Type: ActionBack} }

func SubmitAudit() Action { return Action{Type: ActionSubmitAudit} }

func SelectAuditFestival(f model.Festival) Action {
	return Action{Type: ActionSelectAuditFestival, Festival: f}
}

func SelectDashboardFestival(f model.Festival) Action {
	return Action{Type: ActionSelectDashboardFestival, Festival: f}
}

// Apply returns the state after action. It never fails: actions that make
// no sense in the current state leave it unchanged.
func Apply(s State, a Action) State {
	if !s.LoggedIn {
		if a.Type == ActionLogin {
			s.LoggedIn = true
		}
		return s
	}

	switch a.Type {
	case ActionLogout:
		return State{ActiveTab: s.ActiveTab, Dashboard: navigation.Initial()}
	case ActionSelectTab:
		tab, err := ParseTab(string(a.Tab))
		if err != nil || tab == s.ActiveTab {
			return s
		}
		// Leaving a screen discards its local selections.
		return State{LoggedIn: true, ActiveTab: tab, Dashboard: navigation.Initial()}
	case ActionSelectDashboardFestival:
		if s.ActiveTab == TabDashboard && s.Dashboard.IsOverview() && a.Festival.Valid() {
			s.DashboardFestival = a.Festival
		}
	case ActionOpenBreakdown:
		if s.ActiveTab == TabDashboard {
			s.Dashboard = s.Dashboard.OpenBreakdown()
		}
	case ActionSelectArea:
		if s.ActiveTab == TabDashboard {
			s.Dashboard = s.Dashboard.SelectArea(a.Area)
		}
	case ActionBack:
		if s.ActiveTab == TabDashboard {
			s.Dashboard = s.Dashboard.Back()
		}
	case ActionSelectAuditFestival:
		if s.ActiveTab == TabAddAudit && a.Festival.Valid() {
			s.AuditFestival = a.Festival
		}
	case ActionSubmitAudit:
		// Submitting records nothing.
	}
	return s
}
