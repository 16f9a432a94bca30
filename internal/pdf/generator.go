package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/festival-audit/internal/model"
)

type Generator struct {
	fontName string
	now      func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica", now: time.Now}
}

func (g *Generator) Generate(report model.DashboardReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle("Festival Audit Report", false)
	pdf.SetCreator("festival-audit", false)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, "Festival Audit Report", "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", g.now().Format("02.01.2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addProfileBlock(pdf, g.fontName, report.Profile)
	pdf.Ln(4)

	sectionTitle(pdf, g.fontName, "My Audits")
	auditWidths := []float64{80, 50, 50}
	drawTableRow(pdf, g.fontName, []string{"Festival", "Date", "Impact Score"}, auditWidths, true)
	for _, audit := range report.Audits {
		drawTableRow(pdf, g.fontName, []string{
			string(audit.Festival),
			safeValue(audit.Date),
			fmt.Sprintf("%d%%", audit.Score),
		}, auditWidths, false)
	}
	pdf.Ln(4)

	sectionTitle(pdf, g.fontName, "Food Wastage by Area")
	wastageWidths := []float64{80, 50, 50}
	drawTableRow(pdf, g.fontName, []string{"Area", "Share", "Referral partners"}, wastageWidths, true)
	for _, row := range report.Wastage {
		drawTableRow(pdf, g.fontName, []string{
			row.Area,
			fmt.Sprintf("%d%%", row.Amount),
			fmt.Sprintf("%d", len(report.Referrals[row.Area])),
		}, wastageWidths, false)
	}
	pdf.Ln(4)

	sectionTitle(pdf, g.fontName, "Referral Organizations")
	refWidths := []float64{50, 60, 35, 35}
	drawTableRow(pdf, g.fontName, []string{"Area", "Organization", "Phone", "Pincode"}, refWidths, true)
	for _, area := range sortedAreas(report) {
		for _, org := range report.Referrals[area] {
			drawTableRow(pdf, g.fontName, []string{area, org.Name, safeValue(org.Phone), safeValue(org.Pincode)}, refWidths, false)
		}
	}
	pdf.Ln(4)

	sectionTitle(pdf, g.fontName, "Environmental Impact")
	impactWidths := []float64{90, 40}
	drawTableRow(pdf, g.fontName, []string{"Category", "Share"}, impactWidths, true)
	for _, share := range report.Impact {
		drawTableRow(pdf, g.fontName, []string{share.Name, fmt.Sprintf("%d", share.Value)}, impactWidths, false)
	}
	pdf.Ln(4)

	sectionTitle(pdf, g.fontName, "Sustainability Metrics")
	metricWidths := []float64{60, 40, 40, 40}
	drawTableRow(pdf, g.fontName, []string{"Subject", "Planned", "Actual", "Full mark"}, metricWidths, true)
	for _, m := range report.Sustainability {
		drawTableRow(pdf, g.fontName, []string{
			m.Subject,
			fmt.Sprintf("%d", m.Planned),
			fmt.Sprintf("%d", m.Actual),
			fmt.Sprintf("%d", m.FullMark),
		}, metricWidths, false)
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addProfileBlock(pdf *gofpdf.Fpdf, fontName string, profile model.Profile) {
	pdf.SetFont(fontName, "B", 11)
	pdf.CellFormat(0, 6, "Auditor", "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	lines := []string{
		safeValue(profile.Name),
		safeValue(profile.Title),
		fmt.Sprintf("Total Audits: %d", profile.TotalAudits),
		fmt.Sprintf("Impact Score: %d/100", profile.ImpactScore),
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
}

func sectionTitle(pdf *gofpdf.Fpdf, fontName, title string) {
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 && !header {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func sortedAreas(report model.DashboardReport) []string {
	order := make(map[string]int, len(report.Wastage))
	for i, row := range report.Wastage {
		order[row.Area] = i
	}
	areas := make([]string, 0, len(report.Referrals))
	for area := range report.Referrals {
		areas = append(areas, area)
	}
	sort.Slice(areas, func(i, j int) bool {
		oi, iok := order[areas[i]]
		oj, jok := order[areas[j]]
		if iok != jok {
			return iok
		}
		if oi != oj {
			return oi < oj
		}
		return areas[i] < areas[j]
	})
	return areas
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
