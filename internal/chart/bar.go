package chart

import "github.com/atarantas86/edgefinder2/internal/domain/models"

// Bar is one normalized bar: the original label and count plus the bar
// height as a percentage of the tallest bar.
type Bar struct {
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Height float64 `json:"height"`
}

// Bars normalizes labelled counts into bar heights in [0,100]. When every
// count is zero all heights are zero (the division is guarded, no NaN).
// ok is false for an empty input.
func Bars(data []models.BarDatum) ([]Bar, bool) {
	if len(data) == 0 {
		return nil, false
	}

	maxCount := 0
	for _, d := range data {
		if d.Count > maxCount {
			maxCount = d.Count
		}
	}

	bars := make([]Bar, len(data))
	for i, d := range data {
		var h float64
		if maxCount > 0 {
			h = float64(d.Count) / float64(maxCount) * 100
		}
		bars[i] = Bar{Label: d.Label, Count: d.Count, Height: h}
	}
	return bars, true
}
