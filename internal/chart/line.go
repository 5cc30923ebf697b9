// Package chart maps raw numeric series into a bounded 100x100 coordinate
// space and renders the result as SVG. All normalizers are pure functions:
// same input, same geometry, no shared state. Every coordinate they emit
// lies in the closed range [0,100], and an empty input never errors - it
// reports ok=false so the caller can render an explicit empty state.
package chart

// Op identifies a path drawing instruction.
type Op string

const (
	OpMove Op = "M"
	OpLine Op = "L"
)

// PathCmd is one piecewise-linear path instruction in chart coordinates.
type PathCmd struct {
	Op Op      `json:"op"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// LinePath normalizes an ordered value sequence into a path across the
// 100x100 space. The first sample becomes a move, the rest line-to
// instructions, preserving input order. Larger values draw higher: y=0 is
// the top of the chart. A constant series maps to a flat line (the zero
// range is substituted with 1, never divided through). ok is false for an
// empty sequence.
func LinePath(values []float64) ([]PathCmd, bool) {
	if len(values) == 0 {
		return nil, false
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	// A single point sits at x=0; the guard keeps the step finite.
	denom := len(values) - 1
	if denom < 1 {
		denom = 1
	}
	step := 100 / float64(denom)

	cmds := make([]PathCmd, len(values))
	for i, v := range values {
		op := OpLine
		if i == 0 {
			op = OpMove
		}
		cmds[i] = PathCmd{
			Op: op,
			X:  float64(i) * step,
			Y:  100 - ((v-min)/rng)*100,
		}
	}
	return cmds, true
}
