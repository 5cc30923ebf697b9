package chart

import (
	"math"
	"testing"

	"github.com/atarantas86/edgefinder2/internal/domain/models"
)

func TestBarsEmpty(t *testing.T) {
	if _, ok := Bars(nil); ok {
		t.Fatalf("expected ok=false for empty input")
	}
}

func TestBarsAllZeroCounts(t *testing.T) {
	bars, ok := Bars([]models.BarDatum{{Label: "win"}, {Label: "loss"}})
	if !ok {
		t.Fatalf("expected ok")
	}
	for _, b := range bars {
		if b.Height != 0 {
			t.Fatalf("zero counts must yield zero heights, got %v", b.Height)
		}
		if math.IsNaN(b.Height) || math.IsInf(b.Height, 0) {
			t.Fatalf("height must be finite, got %v", b.Height)
		}
	}
}

func TestBarsHeights(t *testing.T) {
	bars, ok := Bars([]models.BarDatum{
		{Label: "win", Count: 10},
		{Label: "loss", Count: 5},
		{Label: "pending", Count: 0},
	})
	if !ok {
		t.Fatalf("expected ok")
	}
	if bars[0].Height != 100 {
		t.Fatalf("tallest bar = %v, want 100", bars[0].Height)
	}
	if bars[1].Height != 50 {
		t.Fatalf("half bar = %v, want 50", bars[1].Height)
	}
	if bars[2].Height != 0 {
		t.Fatalf("empty bar = %v, want 0", bars[2].Height)
	}
	for _, b := range bars {
		if b.Height < 0 || b.Height > 100 {
			t.Fatalf("height out of bounds: %v", b.Height)
		}
	}
}
