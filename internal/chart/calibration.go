package chart

import "github.com/atarantas86/edgefinder2/internal/domain/models"

// Point is a position in the 100x100 chart space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CalibrationPlot holds the scatter points plus the perfect-calibration
// diagonal from (0,100) to (100,0).
type CalibrationPlot struct {
	Points   []Point  `json:"points"`
	Diagonal [2]Point `json:"diagonal"`
}

// Calibration maps (predicted, observed) pairs in [0,1] onto the chart
// space: x=predicted*100, y=100-observed*100, so a perfectly calibrated
// point lands on the diagonal. The diagonal is emitted whenever data is
// present. ok is false for an empty input.
func Calibration(points []models.CalibrationPoint) (CalibrationPlot, bool) {
	if len(points) == 0 {
		return CalibrationPlot{}, false
	}

	plot := CalibrationPlot{
		Points:   make([]Point, len(points)),
		Diagonal: [2]Point{{X: 0, Y: 100}, {X: 100, Y: 0}},
	}
	for i, p := range points {
		plot.Points[i] = Point{
			X: p.Predicted * 100,
			Y: 100 - p.Observed*100,
		}
	}
	return plot, true
}
