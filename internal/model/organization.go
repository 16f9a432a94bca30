package model

// ReferralOrganization accepts surplus food redirected from an area.
type ReferralOrganization struct {
	Name    string `json:"name" yaml:"name"`
	Phone   string `json:"phone" yaml:"phone"`
	Pincode string `json:"pincode" yaml:"pincode"`
}
