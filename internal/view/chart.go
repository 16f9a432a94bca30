package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/nurpe/festival-audit/internal/model"
)

// Palette colors the impact slices, cycling when there are more slices.
var Palette = []string{"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#8884D8"}

const (
	barColor     = "#8884d8"
	plannedColor = "#8884d8"
	actualColor  = "#82ca9d"

	barWidth, barHeight = 320.0, 200.0
	barPadLeft          = 30.0
	barPadBottom        = 40.0
	barPadTop           = 10.0
	barPadRight         = 10.0

	pieSize   = 250.0
	pieRadius = 80.0

	radarSize   = 250.0
	radarRadius = 90.0
	radarRings  = 4
)

type Bar struct {
	Label  string  `json:"label"`
	Value  int     `json:"value"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Tick struct {
	Value int     `json:"value"`
	Y     float64 `json:"y"`
}

type BarChart struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Color   string  `json:"color"`
	AxisMax int     `json:"axis_max"`
	BaseY   float64 `json:"base_y"`
	Bars    []Bar   `json:"bars"`
	Ticks   []Tick  `json:"ticks"`
}

// NewBarChart lays the areas out left to right on a y axis rounded up to
// the next multiple of 20.
func NewBarChart(rows []model.AreaWastage) BarChart {
	chart := BarChart{Width: barWidth, Height: barHeight, Color: barColor}
	maxValue := 0
	for _, row := range rows {
		if row.Amount > maxValue {
			maxValue = row.Amount
		}
	}
	axisMax := int(math.Ceil(float64(maxValue)/20) * 20)
	if axisMax == 0 {
		axisMax = 20
	}
	chart.AxisMax = axisMax

	plotH := barHeight - barPadTop - barPadBottom
	plotW := barWidth - barPadLeft - barPadRight
	chart.BaseY = barPadTop + plotH

	for v := 0; v <= axisMax; v += 20 {
		chart.Ticks = append(chart.Ticks, Tick{
			Value: v,
			Y:     round2(chart.BaseY - plotH*float64(v)/float64(axisMax)),
		})
	}
	if len(rows) == 0 {
		return chart
	}

	slot := plotW / float64(len(rows))
	w := slot * 0.7
	for i, row := range rows {
		h := plotH * float64(clamp(row.Amount, 0, axisMax)) / float64(axisMax)
		chart.Bars = append(chart.Bars, Bar{
			Label:  row.Area,
			Value:  row.Amount,
			X:      round2(barPadLeft + slot*float64(i) + (slot-w)/2),
			Y:      round2(chart.BaseY - h),
			Width:  round2(w),
			Height: round2(h),
		})
	}
	return chart
}

type Slice struct {
	Name    string  `json:"name"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Path    string  `json:"path"`
}

type PieChart struct {
	Size   float64 `json:"size"`
	Radius float64 `json:"radius"`
	Slices []Slice `json:"slices"`
}

// NewPieChart turns shares into SVG sectors, clockwise from 12 o'clock.
// Angles are in radians.
func NewPieChart(shares []model.ImpactShare) PieChart {
	chart := PieChart{Size: pieSize, Radius: pieRadius}
	total := 0
	for _, share := range shares {
		if share.Value > 0 {
			total += share.Value
		}
	}
	if total == 0 {
		return chart
	}

	c := pieSize / 2
	angle := 0.0
	for i, share := range shares {
		if share.Value <= 0 {
			continue
		}
		sweep := 2 * math.Pi * float64(share.Value) / float64(total)
		slice := Slice{
			Name:    share.Name,
			Value:   share.Value,
			Percent: round2(100 * float64(share.Value) / float64(total)),
			Color:   Palette[i%len(Palette)],
			Start:   angle,
			End:     angle + sweep,
		}
		slice.Path = sectorPath(c, c, pieRadius, slice.Start, slice.End)
		chart.Slices = append(chart.Slices, slice)
		angle += sweep
	}
	return chart
}

func sectorPath(cx, cy, r, start, end float64) string {
	if end-start >= 2*math.Pi-1e-9 {
		// A single full arc is degenerate in SVG; draw two halves.
		return fmt.Sprintf("M %s %s m 0 %s a %s %s 0 1 1 0 %s a %s %s 0 1 1 0 %s Z",
			num(cx), num(cy), num(-r), num(r), num(r), num(2*r), num(r), num(r), num(-2*r))
	}
	x1, y1 := polar(cx, cy, r, start)
	x2, y2 := polar(cx, cy, r, end)
	large := 0
	if end-start > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
		num(cx), num(cy), num(x1), num(y1), num(r), num(r), large, num(x2), num(y2))
}

type RadarAxis struct {
	Subject string  `json:"subject"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	LabelX  float64 `json:"label_x"`
	LabelY  float64 `json:"label_y"`
}

// RadarSeries holds one polygon. Values are the unscaled figures in axis
// order.
type RadarSeries struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Points string `json:"points"`
	Values []int  `json:"values"`
}

type RadarChart struct {
	Size      float64       `json:"size"`
	Center    float64       `json:"center"`
	DomainMax int           `json:"domain_max"`
	Axes      []RadarAxis   `json:"axes"`
	Rings     []string      `json:"rings"`
	Series    []RadarSeries `json:"series"`
}

// NewRadarChart plots planned and actual values on a shared radius domain
// of [0, max fullMark].
func NewRadarChart(metrics []model.SustainabilityMetric) RadarChart {
	c := radarSize / 2
	chart := RadarChart{Size: radarSize, Center: c}
	for _, m := range metrics {
		if m.FullMark > chart.DomainMax {
			chart.DomainMax = m.FullMark
		}
	}
	if len(metrics) == 0 || chart.DomainMax == 0 {
		return chart
	}

	n := len(metrics)
	angleOf := func(i int) float64 { return 2 * math.Pi * float64(i) / float64(n) }
	scale := func(v int) float64 {
		return radarRadius * float64(clamp(v, 0, chart.DomainMax)) / float64(chart.DomainMax)
	}

	for i, m := range metrics {
		x, y := polar(c, c, radarRadius, angleOf(i))
		lx, ly := polar(c, c, radarRadius+16, angleOf(i))
		chart.Axes = append(chart.Axes, RadarAxis{
			Subject: m.Subject,
			X:       round2(x),
			Y:       round2(y),
			LabelX:  round2(lx),
			LabelY:  round2(ly),
		})
	}

	for ring := 1; ring <= radarRings; ring++ {
		r := radarRadius * float64(ring) / radarRings
		pts := make([]string, n)
		for i := range metrics {
			x, y := polar(c, c, r, angleOf(i))
			pts[i] = num(x) + "," + num(y)
		}
		chart.Rings = append(chart.Rings, strings.Join(pts, " "))
	}

	series := func(name, color string, pick func(model.SustainabilityMetric) int) RadarSeries {
		pts := make([]string, n)
		values := make([]int, n)
		for i, m := range metrics {
			values[i] = pick(m)
			x, y := polar(c, c, scale(values[i]), angleOf(i))
			pts[i] = num(x) + "," + num(y)
		}
		return RadarSeries{Name: name, Color: color, Points: strings.Join(pts, " "), Values: values}
	}
	chart.Series = []RadarSeries{
		series("Planned", plannedColor, func(m model.SustainabilityMetric) int { return m.Planned }),
		series("Actual", actualColor, func(m model.SustainabilityMetric) int { return m.Actual }),
	}
	return chart
}

// polar maps an angle measured clockwise from 12 o'clock to SVG coordinates.
func polar(cx, cy, r, angle float64) (float64, float64) {
	return cx + r*math.Sin(angle), cy - r*math.Cos(angle)
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

func num(v float64) string {
	return fmt.Sprintf("%.2f", round2(v))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
