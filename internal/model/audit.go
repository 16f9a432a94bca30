package model

type Audit struct {
	ID       int      `json:"id" yaml:"id"`
	Festival Festival `json:"festival" yaml:"festival"`
	Date     string   `json:"date" yaml:"date"`
	Score    int      `json:"score" yaml:"score"`
}

// Profile figures are fixed sample values, not aggregates of the audit list.
type Profile struct {
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	AvatarURL   string `json:"avatar_url" yaml:"avatar_url"`
	TotalAudits int    `json:"total_audits" yaml:"total_audits"`
	ImpactScore int    `json:"impact_score" yaml:"impact_score"`
}
