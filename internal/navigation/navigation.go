// Package navigation implements the dashboard drill-down:
// overview, food wastage area breakdown, and the referral list of one area.
package navigation

import "strings"

type Level string

const (
	LevelOverview      Level = "overview"
	LevelAreaBreakdown Level = "area-breakdown"
	LevelReferralList  Level = "referral-list"
)

// State is the drill-down position. Area is set only at LevelReferralList.
// The zero value is the overview.
type State struct {
	Level Level  `json:"level"`
	Area  string `json:"area,omitempty"`
}

func Initial() State {
	return State{Level: LevelOverview}
}

func (s State) normalized() State {
	switch s.Level {
	case LevelAreaBreakdown:
		return State{Level: LevelAreaBreakdown}
	case LevelReferralList:
		if strings.TrimSpace(s.Area) == "" {
			return State{Level: LevelAreaBreakdown}
		}
		return s
	default:
		return Initial()
	}
}

// OpenBreakdown moves from the overview to the area breakdown.
func (s State) OpenBreakdown() State {
	s = s.normalized()
	if s.Level != LevelOverview {
		return s
	}
	return State{Level: LevelAreaBreakdown}
}

// SelectArea opens the referral list for area. Any non-blank name is
// accepted, mapped or not.
func (s State) SelectArea(area string) State {
	s = s.normalized()
	if s.Level != LevelAreaBreakdown || strings.TrimSpace(area) == "" {
		return s
	}
	return State{Level: LevelReferralList, Area: area}
}

func (s State) Back() State {
	s = s.normalized()
	switch s.Level {
	case LevelReferralList:
		return State{Level: LevelAreaBreakdown}
	case LevelAreaBreakdown:
		return Initial()
	default:
		return s
	}
}

func (s State) IsOverview() bool {
	return s.normalized().Level == LevelOverview
}
