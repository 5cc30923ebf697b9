package chart

import (
	"math"
	"strconv"
)

// Arc describes a radial gauge: a fixed-radius circle whose stroke is
// dashed so that the visible arc length is proportional to the gauge value.
type Arc struct {
	Value         float64 `json:"value"` // clamped to [0,100]
	Radius        float64 `json:"radius"`
	Circumference float64 `json:"circumference"`
	Filled        float64 `json:"filled"`
	DashOffset    float64 `json:"dashOffset"`
}

// Gauge clamps value into [0,100] and computes the arc geometry. The arc
// starts at a fixed rotation origin and sweeps clockwise; the unfilled
// remainder becomes the stroke dash offset.
func Gauge(value, radius float64) Arc {
	v := math.Min(math.Max(value, 0), 100)
	circ := 2 * math.Pi * radius
	filled := v / 100 * circ
	return Arc{
		Value:         v,
		Radius:        radius,
		Circumference: circ,
		Filled:        filled,
		DashOffset:    circ - filled,
	}
}

// Label formats the clamped percentage for display. Whole values drop the
// fraction ("73%"), others keep one decimal ("72.5%").
func (a Arc) Label() string {
	if a.Value == math.Trunc(a.Value) {
		return strconv.FormatFloat(a.Value, 'f', 0, 64) + "%"
	}
	return strconv.FormatFloat(a.Value, 'f', 1, 64) + "%"
}
