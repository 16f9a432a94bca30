package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/festival-audit/internal/model"
)

func TestSampleRepositoryTables(t *testing.T) {
	repo, err := NewSampleRepository()
	require.NoError(t, err)

	areas := repo.ListAreaWastage()
	require.Len(t, areas, 5)
	assert.Equal(t, model.AreaWastage{Area: "Commercial Events", Amount: 45}, areas[0])
	assert.Equal(t, model.AreaWastage{Area: "Festivals", Amount: 50}, areas[4])

	assert.Len(t, repo.ListFestivals(), 6)
	assert.Len(t, repo.ListParameters(), 6)
	assert.Len(t, repo.ListImpactShares(), 5)
	assert.Len(t, repo.ListSustainability(), 5)

	audits := repo.ListAudits()
	require.Len(t, audits, 3)
	assert.Equal(t, model.FestivalDiwali, audits[0].Festival)
	assert.Equal(t, 82, audits[0].Score)
	assert.Equal(t, model.FestivalGaneshChaturthi, audits[2].Festival)

	profile := repo.Profile()
	assert.Equal(t, "Rajesh Kumar", profile.Name)
	assert.Equal(t, 24, profile.TotalAudits)
	assert.Equal(t, 78, profile.ImpactScore)
	assert.Empty(t, profile.AvatarURL, "no avatar image is served")
}

func TestListReferrals(t *testing.T) {
	repo, err := NewSampleRepository()
	require.NoError(t, err)

	wedding := repo.ListReferrals("Wedding Halls")
	require.Len(t, wedding, 4)
	assert.Equal(t, "Smile Orphanage", wedding[0].Name)
	assert.Equal(t, "Helping Hands", wedding[1].Name)
	assert.Equal(t, "Friends Being Heling Hand", wedding[2].Name)
	assert.Equal(t, "Being Human", wedding[3].Name)

	assert.Len(t, repo.ListReferrals("Commercial Events"), 2)

	unmapped := repo.ListReferrals("Restaurants")
	assert.NotNil(t, unmapped)
	assert.Empty(t, unmapped)
}

func TestAccessorsReturnCopies(t *testing.T) {
	repo, err := NewSampleRepository()
	require.NoError(t, err)

	areas := repo.ListAreaWastage()
	areas[0].Amount = 99
	orgs := repo.ListReferrals("Wedding Halls")
	orgs[0].Name = "changed"
	all := repo.AllReferrals()
	all["Wedding Halls"][1].Name = "changed"

	assert.Equal(t, 45, repo.ListAreaWastage()[0].Amount)
	assert.Equal(t, "Smile Orphanage", repo.ListReferrals("Wedding Halls")[0].Name)
	assert.Equal(t, "Helping Hands", repo.ListReferrals("Wedding Halls")[1].Name)
}

func TestLoadSampleRepositoryRejectsBadData(t *testing.T) {
	cases := map[string]string{
		"empty wastage":    "food_wastage: []\n",
		"amount too large": "food_wastage:\n  - area: A\n    amount: 101\n",
		"duplicate area":   "food_wastage:\n  - area: A\n    amount: 1\n  - area: A\n    amount: 2\n",
		"unknown festival": "food_wastage:\n  - area: A\n    amount: 1\naudits:\n  - id: 1\n    festival: Easter\n    score: 10\n",
		"not yaml":         "food_wastage: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSampleRepository([]byte(raw))
			assert.Error(t, err)
		})
	}
}
