package excel

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/festival-audit/internal/model"
)

const (
	SheetAudits         = "Audits"
	SheetFoodWastage    = "Food Wastage"
	SheetReferrals      = "Referrals"
	SheetImpact         = "Impact"
	SheetSustainability = "Sustainability"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.DashboardReport) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SheetAudits); err != nil {
		return nil, err
	}
	g.writeAudits(file, report)

	for _, sheet := range []string{SheetFoodWastage, SheetReferrals, SheetImpact, SheetSustainability} {
		if _, err := file.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}
	}
	g.writeWastage(file, report)
	g.writeReferrals(file, report)
	g.writeImpact(file, report)
	g.writeSustainability(file, report)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeAudits(file *excelize.File, report model.DashboardReport) {
	set := setter(file, SheetAudits)

	set("A1", "Auditor")
	set("B1", report.Profile.Name)
	set("A2", "Total Audits")
	set("B2", report.Profile.TotalAudits)
	set("A3", "Impact Score")
	set("B3", fmt.Sprintf("%d/100", report.Profile.ImpactScore))

	writeHeader(file, SheetAudits, 5, "ID", "Festival", "Date", "Impact Score, %")
	for i, audit := range report.Audits {
		row := 6 + i
		set(fmt.Sprintf("A%d", row), audit.ID)
		set(fmt.Sprintf("B%d", row), string(audit.Festival))
		set(fmt.Sprintf("C%d", row), audit.Date)
		set(fmt.Sprintf("D%d", row), audit.Score)
	}

	_ = file.SetColWidth(SheetAudits, "A", "A", 16)
	_ = file.SetColWidth(SheetAudits, "B", "B", 24)
	_ = file.SetColWidth(SheetAudits, "C", "D", 16)
}

func (g *Generator) writeWastage(file *excelize.File, report model.DashboardReport) {
	set := setter(file, SheetFoodWastage)
	writeHeader(file, SheetFoodWastage, 1, "Area", "Share, %", "Referral partners")
	for i, row := range report.Wastage {
		r := 2 + i
		set(fmt.Sprintf("A%d", r), row.Area)
		set(fmt.Sprintf("B%d", r), row.Amount)
		set(fmt.Sprintf("C%d", r), len(report.Referrals[row.Area]))
	}
	_ = file.SetColWidth(SheetFoodWastage, "A", "A", 28)
	_ = file.SetColWidth(SheetFoodWastage, "B", "C", 18)
}

func (g *Generator) writeReferrals(file *excelize.File, report model.DashboardReport) {
	set := setter(file, SheetReferrals)
	writeHeader(file, SheetReferrals, 1, "Area", "Organization", "Phone", "Pincode")

	areas := make([]string, 0, len(report.Referrals))
	for area := range report.Referrals {
		areas = append(areas, area)
	}
	sort.Strings(areas)

	row := 2
	for _, area := range areas {
		for _, org := range report.Referrals[area] {
			set(fmt.Sprintf("A%d", row), area)
			set(fmt.Sprintf("B%d", row), org.Name)
			set(fmt.Sprintf("C%d", row), org.Phone)
			set(fmt.Sprintf("D%d", row), org.Pincode)
			row++
		}
	}
	_ = file.SetColWidth(SheetReferrals, "A", "B", 28)
	_ = file.SetColWidth(SheetReferrals, "C", "D", 14)
}

func (g *Generator) writeImpact(file *excelize.File, report model.DashboardReport) {
	set := setter(file, SheetImpact)
	writeHeader(file, SheetImpact, 1, "Category", "Share")
	for i, share := range report.Impact {
		set(fmt.Sprintf("A%d", 2+i), share.Name)
		set(fmt.Sprintf("B%d", 2+i), share.Value)
	}
	_ = file.SetColWidth(SheetImpact, "A", "A", 24)
}

func (g *Generator) writeSustainability(file *excelize.File, report model.DashboardReport) {
	set := setter(file, SheetSustainability)
	writeHeader(file, SheetSustainability, 1, "Subject", "Planned", "Actual", "Full mark")
	for i, m := range report.Sustainability {
		r := 2 + i
		set(fmt.Sprintf("A%d", r), m.Subject)
		set(fmt.Sprintf("B%d", r), m.Planned)
		set(fmt.Sprintf("C%d", r), m.Actual)
		set(fmt.Sprintf("D%d", r), m.FullMark)
	}
	_ = file.SetColWidth(SheetSustainability, "A", "A", 18)
}

func setter(file *excelize.File, sheet string) func(cell string, value interface{}) {
	return func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}
}

func writeHeader(file *excelize.File, sheet string, row int, headers ...string) {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		_ = file.SetCellValue(sheet, cell, header)
	}
}
