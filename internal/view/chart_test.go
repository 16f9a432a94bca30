package view

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/festival-audit/internal/model"
)

func TestBarChartScalesToAxis(t *testing.T) {
	chart := NewBarChart([]model.AreaWastage{
		{Area: "A", Amount: 55},
		{Area: "B", Amount: 30},
	})
	assert.Equal(t, 60, chart.AxisMax)
	require.Len(t, chart.Bars, 2)
	require.Len(t, chart.Ticks, 4)

	plotH := barHeight - barPadTop - barPadBottom
	assert.InDelta(t, plotH*55/60, chart.Bars[0].Height, 0.01)
	assert.InDelta(t, plotH*30/60, chart.Bars[1].Height, 0.01)
	assert.InDelta(t, chart.BaseY, chart.Bars[0].Y+chart.Bars[0].Height, 0.01)
	assert.Less(t, chart.Bars[0].X, chart.Bars[1].X)
}

func TestBarChartEmpty(t *testing.T) {
	chart := NewBarChart(nil)
	assert.Equal(t, 20, chart.AxisMax)
	assert.Empty(t, chart.Bars)
}

func TestPieChartSweepsFullCircle(t *testing.T) {
	chart := NewPieChart([]model.ImpactShare{
		{Name: "a", Value: 30},
		{Name: "b", Value: 25},
		{Name: "c", Value: 20},
		{Name: "d", Value: 15},
		{Name: "e", Value: 10},
		{Name: "f", Value: 0},
	})
	require.Len(t, chart.Slices, 5)
	assert.InDelta(t, 0, chart.Slices[0].Start, 1e-9)
	assert.InDelta(t, 2*math.Pi, chart.Slices[4].End, 1e-9)
	assert.Equal(t, 30.0, chart.Slices[0].Percent)
	assert.Equal(t, "#0088FE", chart.Slices[0].Color)
	assert.Equal(t, "#8884D8", chart.Slices[4].Color)
	for _, s := range chart.Slices {
		assert.True(t, strings.HasPrefix(s.Path, "M 125.00 125.00 L 125.00 45.00") || s.Start > 0, s.Path)
		assert.True(t, strings.HasSuffix(s.Path, "Z"))
	}
}

func TestPieChartSingleShare(t *testing.T) {
	chart := NewPieChart([]model.ImpactShare{{Name: "all", Value: 5}})
	require.Len(t, chart.Slices, 1)
	assert.Equal(t, 100.0, chart.Slices[0].Percent)
	assert.Contains(t, chart.Slices[0].Path, " a ")
}

func TestPieChartNoShares(t *testing.T) {
	assert.Empty(t, NewPieChart(nil).Slices)
	assert.Empty(t, NewPieChart([]model.ImpactShare{{Name: "zero"}}).Slices)
}

func TestRadarChartGeometry(t *testing.T) {
	chart := NewRadarChart([]model.SustainabilityMetric{
		{Subject: "Energy", Planned: 150, Actual: 75, FullMark: 150},
		{Subject: "Water", Planned: 0, Actual: 150, FullMark: 150},
		{Subject: "Waste", Planned: 150, Actual: 150, FullMark: 150},
		{Subject: "Carbon", Planned: 300, Actual: 150, FullMark: 150},
	})
	assert.Equal(t, 150, chart.DomainMax)
	require.Len(t, chart.Axes, 4)
	assert.Equal(t, RadarAxis{Subject: "Energy", X: 125, Y: 35, LabelX: 125, LabelY: 19}, chart.Axes[0])
	assert.Equal(t, 215.0, chart.Axes[1].X)
	assert.Len(t, chart.Rings, radarRings)

	require.Len(t, chart.Series, 2)
	assert.Equal(t, "Planned", chart.Series[0].Name)
	assert.Equal(t, "125.00,35.00 125.00,125.00 125.00,215.00 35.00,125.00", chart.Series[0].Points)
	assert.Equal(t, "Actual", chart.Series[1].Name)
	assert.True(t, strings.HasPrefix(chart.Series[1].Points, "125.00,80.00 215.00,125.00"))

	assert.Equal(t, []int{150, 0, 150, 300}, chart.Series[0].Values, "values are kept unclamped")
	assert.Equal(t, []int{75, 150, 150, 150}, chart.Series[1].Values)
}
