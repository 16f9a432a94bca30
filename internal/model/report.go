package model

type AreaWastage struct {
	Area   string `json:"area" yaml:"area"`
	Amount int    `json:"amount" yaml:"amount"`
}

type ImpactShare struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type SustainabilityMetric struct {
	Subject  string `json:"subject" yaml:"subject"`
	Planned  int    `json:"planned" yaml:"planned"`
	Actual   int    `json:"actual" yaml:"actual"`
	FullMark int    `json:"full_mark" yaml:"full_mark"`
}

// DashboardReport is the export payload for the dashboard tables.
type DashboardReport struct {
	Wastage        []AreaWastage
	Referrals      map[string][]ReferralOrganization
	Impact         []ImpactShare
	Sustainability []SustainabilityMetric
	Audits         []Audit
	Profile        Profile
}
