package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/vsinha/procure/pkg/domain/entities"
)

// TrendChart renders a market pulse series as an SVG line chart
type TrendChart struct {
	Width        int
	Height       int
	MarginLeft   int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	Title        string
	Unit         string
}

// NewTrendChart creates a chart with the default layout
func NewTrendChart(title, unit string) *TrendChart {
	return &TrendChart{
		Width:        640,
		Height:       320,
		MarginLeft:   70,
		MarginTop:    50,
		MarginRight:  30,
		MarginBottom: 50,
		Title:        title,
		Unit:         unit,
	}
}

// GenerateSVG creates an SVG representation of the series
func (tc *TrendChart) GenerateSVG(points []entities.TrendPoint) string {
	var svg strings.Builder

	svg.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, tc.Width, tc.Height))
	svg.WriteString(`<defs><style>`)
	svg.WriteString(`.title { font-family: Arial, sans-serif; font-size: 16px; font-weight: bold; fill: #333; }`)
	svg.WriteString(`.axis-label { font-family: Arial, sans-serif; font-size: 10px; fill: #666; }`)
	svg.WriteString(`.grid-line { stroke: #e0e0e0; stroke-width: 1; }`)
	svg.WriteString(`.series { fill: none; stroke: #1f77b4; stroke-width: 2; }`)
	svg.WriteString(`.point { fill: #1f77b4; }`)
	svg.WriteString(`</style></defs>`)
	svg.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>`, tc.Width, tc.Height))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="30" class="title" text-anchor="middle">%s</text>`,
		tc.Width/2, escape(tc.Title)))

	if len(points) == 0 {
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="axis-label" text-anchor="middle">No data</text>`,
			tc.Width/2, tc.Height/2))
		svg.WriteString(`</svg>`)
		return svg.String()
	}

	lo, hi := tc.bounds(points)
	tc.drawValueGrid(&svg, lo, hi)

	coords := make([]string, len(points))
	for i, p := range points {
		x, y := tc.x(i, len(points)), tc.y(p.Value, lo, hi)
		coords[i] = fmt.Sprintf("%d,%d", x, y)
		svg.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="3" class="point"><title>%s: %.1f %s</title></circle>`,
			x, y, escape(p.Week), p.Value, escape(tc.Unit)))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="axis-label" text-anchor="middle">%s</text>`,
			x, tc.Height-tc.MarginBottom+18, escape(p.Week)))
	}
	svg.WriteString(fmt.Sprintf(`<polyline points="%s" class="series"/>`, strings.Join(coords, " ")))

	svg.WriteString(`</svg>`)
	return svg.String()
}

// bounds pads the value range so a flat series still has height
func (tc *TrendChart) bounds(points []entities.TrendPoint) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = math.Max(1, math.Abs(hi)*0.05)
	}
	return lo - pad, hi + pad
}

func (tc *TrendChart) x(i, n int) int {
	chartWidth := tc.Width - tc.MarginLeft - tc.MarginRight
	if n <= 1 {
		return tc.MarginLeft + chartWidth/2
	}
	return tc.MarginLeft + i*chartWidth/(n-1)
}

func (tc *TrendChart) y(v, lo, hi float64) int {
	chartHeight := float64(tc.Height - tc.MarginTop - tc.MarginBottom)
	return tc.Height - tc.MarginBottom - int(math.Round((v-lo)/(hi-lo)*chartHeight))
}

func (tc *TrendChart) drawValueGrid(svg *strings.Builder, lo, hi float64) {
	const lines = 4
	for i := 0; i <= lines; i++ {
		v := lo + (hi-lo)*float64(i)/lines
		y := tc.y(v, lo, hi)
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
			tc.MarginLeft, y, tc.Width-tc.MarginRight, y))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="axis-label" text-anchor="end">%.1f</text>`,
			tc.MarginLeft-8, y+4, v))
	}
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
