package view

import (
	"github.com/nurpe/festival-audit/internal/model"
	"github.com/nurpe/festival-audit/internal/navigation"
	"github.com/nurpe/festival-audit/internal/shell"
)

type Kind string

const (
	KindLogin     Kind = "login"
	KindDashboard Kind = "dashboard"
	KindAddAudit  Kind = "add-audit"
	KindMyAudits  Kind = "my-audits"
	KindProfile   Kind = "profile"
)

// Screen is the visual description of one session. Exactly one of the
// screen payloads is set, matching Kind.
type Screen struct {
	Kind       Kind           `json:"kind"`
	TabBar     []TabItem      `json:"tab_bar,omitempty"`
	ShowLogout bool           `json:"show_logout"`
	Login      *LoginView     `json:"login,omitempty"`
	Dashboard  *DashboardView `json:"dashboard,omitempty"`
	AddAudit   *AddAuditView  `json:"add_audit,omitempty"`
	MyAudits   *MyAuditsView  `json:"my_audits,omitempty"`
	Profile    *ProfileView   `json:"profile,omitempty"`
}

type TabItem struct {
	Tab    shell.Tab `json:"tab"`
	Icon   string    `json:"icon"`
	Active bool      `json:"active"`
}

type LoginView struct {
	Title               string `json:"title"`
	EmailPlaceholder    string `json:"email_placeholder"`
	PasswordPlaceholder string `json:"password_placeholder"`
	ButtonLabel         string `json:"button_label"`
}

// Chip is a selectable festival button.
type Chip struct {
	Festival model.Festival `json:"festival"`
	Selected bool           `json:"selected"`
}

type DashboardView struct {
	Level     navigation.Level `json:"level"`
	Overview  *OverviewView    `json:"overview,omitempty"`
	Breakdown *BreakdownView   `json:"breakdown,omitempty"`
	Referrals *ReferralView    `json:"referrals,omitempty"`
}

type OverviewView struct {
	Title               string     `json:"title"`
	Festivals           []Chip     `json:"festivals"`
	WastageTitle        string     `json:"wastage_title"`
	Wastage             BarChart   `json:"wastage"`
	BreakdownLabel      string     `json:"breakdown_label"`
	ImpactTitle         string     `json:"impact_title"`
	Impact              PieChart   `json:"impact"`
	SustainabilityTitle string     `json:"sustainability_title"`
	Sustainability      RadarChart `json:"sustainability"`
}

type AreaRow struct {
	Area   string `json:"area"`
	Amount string `json:"amount"`
}

type BreakdownView struct {
	BackLabel string    `json:"back_label"`
	Heading   string    `json:"heading"`
	Rows      []AreaRow `json:"rows"`
}

type ReferralView struct {
	BackLabel     string                       `json:"back_label"`
	Heading       string                       `json:"heading"`
	Area          string                       `json:"area"`
	Organizations []model.ReferralOrganization `json:"organizations"`
	EmptyMessage  string                       `json:"empty_message,omitempty"`
}

type Field struct {
	Name        string          `json:"name"`
	Label       model.Parameter `json:"label"`
	Placeholder string          `json:"placeholder"`
}

type AddAuditView struct {
	Heading           string  `json:"heading"`
	FestivalLabel     string  `json:"festival_label"`
	Festivals         []Chip  `json:"festivals"`
	ParametersHeading string  `json:"parameters_heading"`
	Fields            []Field `json:"fields"`
	SubmitLabel       string  `json:"submit_label"`
}

type AuditRow struct {
	ID       int            `json:"id"`
	Festival model.Festival `json:"festival"`
	Date     string         `json:"date"`
	Score    string         `json:"score"`
	Caption  string         `json:"caption"`
}

type MyAuditsView struct {
	Heading string     `json:"heading"`
	Rows    []AuditRow `json:"rows"`
}

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ProfileView struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	AvatarURL    string `json:"avatar_url"`
	StatsHeading string `json:"stats_heading"`
	Stats        []Stat `json:"stats"`
}
