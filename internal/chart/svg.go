package chart

import (
	"fmt"
	"strings"

	"github.com/atarantas86/edgefinder2/internal/domain/models"
)

// The renderers translate normalized geometry into standalone SVG
// documents. They scale the 100x100 space into the theme's pixel box and
// never fail: inputs with no data produce the empty-state placeholder.

const svgMIME = "image/svg+xml"

// MIMEType returns the content type for rendered charts.
func MIMEType() string { return svgMIME }

func svgOpen(b *strings.Builder, t Theme) {
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		t.Width, t.Height, t.Width, t.Height)
	fmt.Fprintf(b, `<rect width="%d" height="%d" fill="%s"/>`, t.Width, t.Height, t.Background)
}

func svgClose(b *strings.Builder) {
	b.WriteString(`</svg>`)
}

// placeholderSVG renders the documented empty state: a centered dash.
func placeholderSVG(t Theme) string {
	var b strings.Builder
	svgOpen(&b, t)
	fmt.Fprintf(&b, `<text x="%d" y="%d" fill="%s" font-size="24" text-anchor="middle">%s</text>`,
		t.Width/2, t.Height/2, t.Grid, t.Placeholder)
	svgClose(&b)
	return b.String()
}

// scaleX/scaleY map chart coordinates onto the pixel box. Chart y already
// grows downward, matching SVG.
func scaleX(t Theme, x float64) float64 { return x / 100 * float64(t.Width) }
func scaleY(t Theme, y float64) float64 { return y / 100 * float64(t.Height) }

// RenderLine draws an equity (or any ordered) series as a polyline.
func RenderLine(t Theme, values []float64) string {
	cmds, ok := LinePath(values)
	if !ok {
		return placeholderSVG(t)
	}

	var b strings.Builder
	svgOpen(&b, t)
	var d strings.Builder
	for _, c := range cmds {
		fmt.Fprintf(&d, "%s%.2f %.2f ", c.Op, scaleX(t, c.X), scaleY(t, c.Y))
	}
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="2"/>`,
		strings.TrimSpace(d.String()), t.Stroke)
	svgClose(&b)
	return b.String()
}

// RenderBars draws labelled counts as a bar chart with a fixed gap.
func RenderBars(t Theme, data []models.BarDatum) string {
	bars, ok := Bars(data)
	if !ok {
		return placeholderSVG(t)
	}

	var b strings.Builder
	svgOpen(&b, t)
	slot := float64(t.Width) / float64(len(bars))
	barW := slot * 0.6
	for i, bar := range bars {
		h := bar.Height / 100 * float64(t.Height)
		x := float64(i)*slot + (slot-barW)/2
		y := float64(t.Height) - h
		fmt.Fprintf(&b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`,
			x, y, barW, h, t.Fill)
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="12" text-anchor="middle">%s</text>`,
			x+barW/2, float64(t.Height)-4, t.Grid, bar.Label)
	}
	svgClose(&b)
	return b.String()
}

// RenderCalibration draws the calibration scatter with its reference
// diagonal.
func RenderCalibration(t Theme, points []models.CalibrationPoint) string {
	plot, ok := Calibration(points)
	if !ok {
		return placeholderSVG(t)
	}

	var b strings.Builder
	svgOpen(&b, t)
	d := plot.Diagonal
	fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-dasharray="4 4"/>`,
		scaleX(t, d[0].X), scaleY(t, d[0].Y), scaleX(t, d[1].X), scaleY(t, d[1].Y), t.Grid)
	for _, p := range plot.Points {
		fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="4" fill="%s"/>`,
			scaleX(t, p.X), scaleY(t, p.Y), t.Accent)
	}
	svgClose(&b)
	return b.String()
}

// RenderGauge draws the confidence ring. The circle is rotated -90deg so
// the arc starts at twelve o'clock and sweeps clockwise.
func RenderGauge(t Theme, value float64) string {
	arc := Gauge(value, t.GaugeRadius)

	var b strings.Builder
	svgOpen(&b, t)
	cx := float64(t.Width) / 2
	cy := float64(t.Height) / 2
	fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="8"/>`,
		cx, cy, arc.Radius, t.Grid)
	fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="8" `+
		`stroke-dasharray="%.2f" stroke-dashoffset="%.2f" transform="rotate(-90 %.2f %.2f)"/>`,
		cx, cy, arc.Radius, t.Stroke, arc.Circumference, arc.DashOffset, cx, cy)
	fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="20" text-anchor="middle" dominant-baseline="middle">%s</text>`,
		cx, cy, t.Stroke, arc.Label())
	svgClose(&b)
	return b.String()
}
