package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/festival-audit/internal/repository"
)

func TestGenerateWorkbook(t *testing.T) {
	repo, err := repository.NewSampleRepository()
	require.NoError(t, err)

	content, err := NewGenerator().Generate(repo.DashboardReport())
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{SheetAudits, SheetFoodWastage, SheetReferrals, SheetImpact, SheetSustainability}, file.GetSheetList())

	festival, err := file.GetCellValue(SheetAudits, "B6")
	require.NoError(t, err)
	assert.Equal(t, "Diwali", festival)
	score, err := file.GetCellValue(SheetAudits, "D8")
	require.NoError(t, err)
	assert.Equal(t, "68", score)

	area, err := file.GetCellValue(SheetFoodWastage, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Wedding Halls", area)
	partners, err := file.GetCellValue(SheetFoodWastage, "C3")
	require.NoError(t, err)
	assert.Equal(t, "4", partners)

	rows, err := file.GetRows(SheetReferrals)
	require.NoError(t, err)
	assert.Len(t, rows, 1+2+4)
	assert.Equal(t, "Commercial Events", rows[1][0])

	phone, err := file.GetCellValue(SheetReferrals, "C6")
	require.NoError(t, err)
	assert.Equal(t, "234567901", phone)
}
