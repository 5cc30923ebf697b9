package chart

import (
	"math"
	"testing"
)

func TestLinePathEmpty(t *testing.T) {
	cmds, ok := LinePath(nil)
	if ok {
		t.Fatalf("expected ok=false for empty input")
	}
	if cmds != nil {
		t.Fatalf("expected no geometry, got %v", cmds)
	}
}

func TestLinePathSinglePoint(t *testing.T) {
	cmds, ok := LinePath([]float64{42})
	if !ok {
		t.Fatalf("expected ok")
	}
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command, got %d", len(cmds))
	}
	if cmds[0].Op != OpMove {
		t.Fatalf("first command must be a move, got %s", cmds[0].Op)
	}
	if cmds[0].X != 0 {
		t.Fatalf("single point must sit at x=0, got %v", cmds[0].X)
	}
}

func TestLinePathXSpansFullWidth(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	cmds, ok := LinePath(values)
	if !ok {
		t.Fatalf("expected ok")
	}
	if cmds[0].X != 0 {
		t.Fatalf("first x = %v, want 0", cmds[0].X)
	}
	last := cmds[len(cmds)-1]
	if math.Abs(last.X-100) > 1e-9 {
		t.Fatalf("last x = %v, want 100", last.X)
	}
	for i := 1; i < len(cmds); i++ {
		if cmds[i].Op != OpLine {
			t.Fatalf("command %d: expected line-to, got %s", i, cmds[i].Op)
		}
		if cmds[i].X < cmds[i-1].X {
			t.Fatalf("x coordinates must be non-decreasing: %v after %v", cmds[i].X, cmds[i-1].X)
		}
	}
}

func TestLinePathBounds(t *testing.T) {
	cmds, ok := LinePath([]float64{-50, 0, 125, 7.5})
	if !ok {
		t.Fatalf("expected ok")
	}
	for i, c := range cmds {
		if c.X < 0 || c.X > 100 || c.Y < 0 || c.Y > 100 {
			t.Fatalf("command %d out of bounds: (%v, %v)", i, c.X, c.Y)
		}
	}
	// Min value draws at the bottom, max at the top.
	if cmds[0].Y != 100 {
		t.Fatalf("min value y = %v, want 100", cmds[0].Y)
	}
	if cmds[2].Y != 0 {
		t.Fatalf("max value y = %v, want 0", cmds[2].Y)
	}
}

func TestLinePathConstantSeries(t *testing.T) {
	cmds, ok := LinePath([]float64{7, 7, 7, 7})
	if !ok {
		t.Fatalf("expected ok")
	}
	want := cmds[0].Y
	for i, c := range cmds {
		if math.IsNaN(c.Y) || math.IsInf(c.Y, 0) {
			t.Fatalf("command %d: y is not finite: %v", i, c.Y)
		}
		if c.Y != want {
			t.Fatalf("flat series must stay flat: y[%d]=%v, y[0]=%v", i, c.Y, want)
		}
	}
}

func TestLinePathDeterministic(t *testing.T) {
	values := []float64{1, 2, 3}
	a, _ := LinePath(values)
	b, _ := LinePath(values)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("normalization must be deterministic, got %v vs %v", a[i], b[i])
		}
	}
}
