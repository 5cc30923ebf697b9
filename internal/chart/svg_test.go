package chart

import (
	"strings"
	"testing"

	"github.com/atarantas86/edgefinder2/internal/domain/models"
)

func TestRenderLineEmptyState(t *testing.T) {
	th := DefaultTheme()
	svg := RenderLine(th, nil)
	if !strings.Contains(svg, th.Placeholder) {
		t.Fatalf("empty input must render the placeholder, got %s", svg)
	}
	if strings.Contains(svg, "<path") {
		t.Fatalf("empty input must not produce path geometry")
	}
}

func TestRenderLinePath(t *testing.T) {
	svg := RenderLine(DefaultTheme(), []float64{1, 2, 3})
	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not a standalone svg document: %s", svg)
	}
	if !strings.Contains(svg, `d="M0.00`) {
		t.Fatalf("path must start with a move at x=0: %s", svg)
	}
}

func TestRenderBarsUsesTheme(t *testing.T) {
	th := DefaultTheme()
	th.Fill = "#123456"
	svg := RenderBars(th, []models.BarDatum{{Label: "win", Count: 3}})
	if !strings.Contains(svg, `fill="#123456"`) {
		t.Fatalf("bar fill must come from the theme: %s", svg)
	}
}

func TestRenderCalibrationDrawsDiagonal(t *testing.T) {
	svg := RenderCalibration(DefaultTheme(), []models.CalibrationPoint{{Predicted: 0.5, Observed: 0.5}})
	if !strings.Contains(svg, "<line") {
		t.Fatalf("calibration chart must include the reference diagonal: %s", svg)
	}
	if !strings.Contains(svg, "<circle") {
		t.Fatalf("calibration chart must include scatter points: %s", svg)
	}
}

func TestRenderGaugeLabel(t *testing.T) {
	svg := RenderGauge(DefaultTheme(), 180)
	if !strings.Contains(svg, ">100%<") {
		t.Fatalf("gauge label must show the clamped value: %s", svg)
	}
}
