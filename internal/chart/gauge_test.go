package chart

import (
	"math"
	"testing"
)

func TestGaugeClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: -10, want: 0},
		{in: 0, want: 0},
		{in: 73, want: 73},
		{in: 100, want: 100},
		{in: 250, want: 100},
	}
	for _, tc := range tests {
		arc := Gauge(tc.in, 45)
		if arc.Value != tc.want {
			t.Fatalf("Gauge(%v): value = %v, want %v", tc.in, arc.Value, tc.want)
		}
	}
}

func TestGaugeArcGeometry(t *testing.T) {
	arc := Gauge(50, 45)
	circ := 2 * math.Pi * 45
	if math.Abs(arc.Circumference-circ) > 1e-9 {
		t.Fatalf("circumference = %v, want %v", arc.Circumference, circ)
	}
	if math.Abs(arc.Filled-circ/2) > 1e-9 {
		t.Fatalf("filled = %v, want %v", arc.Filled, circ/2)
	}
	if math.Abs(arc.Filled+arc.DashOffset-circ) > 1e-9 {
		t.Fatalf("filled+offset = %v, want full circumference %v", arc.Filled+arc.DashOffset, circ)
	}
}

func TestGaugeLabelShowsClampedValue(t *testing.T) {
	if got := Gauge(250, 45).Label(); got != "100%" {
		t.Fatalf("label = %q, want clamped 100%%", got)
	}
	if got := Gauge(72.5, 45).Label(); got != "72.5%" {
		t.Fatalf("label = %q, want 72.5%%", got)
	}
	if got := Gauge(73, 45).Label(); got != "73%" {
		t.Fatalf("label = %q, want 73%%", got)
	}
}
