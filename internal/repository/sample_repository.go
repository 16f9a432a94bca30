package repository

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nurpe/festival-audit/internal/model"
)

//go:embed sample_data.yaml
var sampleData []byte

type sampleFile struct {
	FoodWastage         []model.AreaWastage                     `yaml:"food_wastage"`
	Referrals           map[string][]model.ReferralOrganization `yaml:"referrals"`
	EnvironmentalImpact []model.ImpactShare                     `yaml:"environmental_impact"`
	Sustainability      []model.SustainabilityMetric            `yaml:"sustainability"`
	Audits              []model.Audit                           `yaml:"audits"`
	Profile             model.Profile                           `yaml:"profile"`
}

// SampleRepository serves the fixed demo tables. It is immutable after
// construction and every accessor hands out a copy, so it is safe for
// concurrent use.
type SampleRepository struct {
	data sampleFile
}

// NewSampleRepository loads the tables embedded in the binary.
func NewSampleRepository() (*SampleRepository, error) {
	return LoadSampleRepository(sampleData)
}

func LoadSampleRepository(raw []byte) (*SampleRepository, error) {
	var data sampleFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode sample data: %w", err)
	}
	if err := validateSample(data); err != nil {
		return nil, err
	}
	return &SampleRepository{data: data}, nil
}

func (r *SampleRepository) ListFestivals() []model.Festival {
	return model.Festivals()
}

func (r *SampleRepository) ListParameters() []model.Parameter {
	return model.Parameters()
}

func (r *SampleRepository) ListAreaWastage() []model.AreaWastage {
	return append([]model.AreaWastage(nil), r.data.FoodWastage...)
}

// ListReferrals returns the organizations mapped to area. Unmapped areas
// yield an empty, non-nil slice.
func (r *SampleRepository) ListReferrals(area string) []model.ReferralOrganization {
	orgs := r.data.Referrals[area]
	result := make([]model.ReferralOrganization, len(orgs))
	copy(result, orgs)
	return result
}

func (r *SampleRepository) AllReferrals() map[string][]model.ReferralOrganization {
	result := make(map[string][]model.ReferralOrganization, len(r.data.Referrals))
	for area := range r.data.Referrals {
		result[area] = r.ListReferrals(area)
	}
	return result
}

func (r *SampleRepository) ListImpactShares() []model.ImpactShare {
	return append([]model.ImpactShare(nil), r.data.EnvironmentalImpact...)
}

func (r *SampleRepository) ListSustainability() []model.SustainabilityMetric {
	return append([]model.SustainabilityMetric(nil), r.data.Sustainability...)
}

func (r *SampleRepository) ListAudits() []model.Audit {
	return append([]model.Audit(nil), r.data.Audits...)
}

func (r *SampleRepository) Profile() model.Profile {
	return r.data.Profile
}

// DashboardReport gathers every table for the exporters.
func (r *SampleRepository) DashboardReport() model.DashboardReport {
	return model.DashboardReport{
		Wastage:        r.ListAreaWastage(),
		Referrals:      r.AllReferrals(),
		Impact:         r.ListImpactShares(),
		Sustainability: r.ListSustainability(),
		Audits:         r.ListAudits(),
		Profile:        r.Profile(),
	}
}

func validateSample(data sampleFile) error {
	if len(data.FoodWastage) == 0 {
		return fmt.Errorf("sample data: food_wastage is empty")
	}
	seen := make(map[string]struct{}, len(data.FoodWastage))
	for _, row := range data.FoodWastage {
		area := strings.TrimSpace(row.Area)
		if area == "" {
			return fmt.Errorf("sample data: food_wastage row without area")
		}
		if _, dup := seen[area]; dup {
			return fmt.Errorf("sample data: duplicate area %q", area)
		}
		seen[area] = struct{}{}
		if row.Amount < 0 || row.Amount > 100 {
			return fmt.Errorf("sample data: area %q amount %d out of range", area, row.Amount)
		}
	}
	for _, audit := range data.Audits {
		if !audit.Festival.Valid() {
			return fmt.Errorf("sample data: audit %d has unknown festival %q", audit.ID, audit.Festival)
		}
		if audit.Score < 0 || audit.Score > 100 {
			return fmt.Errorf("sample data: audit %d score %d out of range", audit.ID, audit.Score)
		}
	}
	for _, metric := range data.Sustainability {
		if metric.FullMark <= 0 {
			return fmt.Errorf("sample data: metric %q needs a positive full_mark", metric.Subject)
		}
	}
	return nil
}
