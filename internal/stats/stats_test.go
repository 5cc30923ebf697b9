package stats

import (
	"reflect"
	"testing"

	"github.com/atarantas86/edgefinder2/internal/domain/models"
)

func TestAverageEmpty(t *testing.T) {
	if got := Average(nil, "x"); got != 0 {
		t.Fatalf("Average(nil) = %v, want 0", got)
	}
}

func TestAverageMissingFieldCoercesToZero(t *testing.T) {
	items := []map[string]interface{}{{"x": nil}}
	if got := Average(items, "x"); got != 0 {
		t.Fatalf("Average([{x:null}]) = %v, want 0", got)
	}
}

func TestAverageCountsMissingInDenominator(t *testing.T) {
	items := []map[string]interface{}{
		{"edge": 10.0},
		{"edge": "not a number"},
		{},
		{"edge": 2.0},
	}
	if got := Average(items, "edge"); got != 3 {
		t.Fatalf("Average = %v, want 3 (12 over 4 items)", got)
	}
}

func TestAverageBy(t *testing.T) {
	signals := []models.Signal{{Edge: 4}, {Edge: 8}}
	got := AverageBy(signals, func(s models.Signal) float64 { return s.Edge })
	if got != 6 {
		t.Fatalf("AverageBy = %v, want 6", got)
	}
	if AverageBy(nil, func(s models.Signal) float64 { return s.Edge }) != 0 {
		t.Fatalf("AverageBy(nil) must be 0")
	}
}

func TestClassifyPolarity(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Classify(models.Signal{Edge: 5}); got != ClassReliable {
		t.Fatalf("edge 5 classified %q, want reliable", got)
	}
	if got := cfg.Classify(models.Signal{Edge: 8}); got != ClassSpeculative {
		t.Fatalf("edge 8 classified %q, want speculative (threshold is strict)", got)
	}
	if got := cfg.Classify(models.Signal{Edge: 10}); got != ClassSpeculative {
		t.Fatalf("edge 10 classified %q, want speculative", got)
	}
}

func TestClassifyInjectedThreshold(t *testing.T) {
	cfg := Config{ReliableEdgeThreshold: 12}
	if got := cfg.Classify(models.Signal{Edge: 10}); got != ClassReliable {
		t.Fatalf("edge 10 with threshold 12 classified %q, want reliable", got)
	}
}

func TestRankReliableFirstThenDescendingEdge(t *testing.T) {
	signals := []models.Signal{{Edge: 10}, {Edge: 5}, {Edge: 9}}
	ranked := DefaultConfig().Rank(signals)

	edges := make([]float64, len(ranked))
	for i, s := range ranked {
		edges[i] = s.Edge
	}
	want := []float64{5, 10, 9}
	if !reflect.DeepEqual(edges, want) {
		t.Fatalf("ranked edges = %v, want %v", edges, want)
	}
	if ranked[0].Class != ClassReliable {
		t.Fatalf("first signal class = %q, want reliable", ranked[0].Class)
	}
	if ranked[1].Class != ClassSpeculative || ranked[2].Class != ClassSpeculative {
		t.Fatalf("speculative group misclassified: %v", ranked)
	}
}

func TestRankStableTies(t *testing.T) {
	signals := []models.Signal{
		{Match: "a", Edge: 9},
		{Match: "b", Edge: 9},
		{Match: "c", Edge: 9},
	}
	ranked := DefaultConfig().Rank(signals)
	if ranked[0].Match != "a" || ranked[1].Match != "b" || ranked[2].Match != "c" {
		t.Fatalf("ties must keep original order, got %v", ranked)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	signals := []models.Signal{{Edge: 10}, {Edge: 5}}
	DefaultConfig().Rank(signals)
	if signals[0].Edge != 10 || signals[1].Edge != 5 {
		t.Fatalf("input slice mutated: %v", signals)
	}
}

func TestFilterLeague(t *testing.T) {
	signals := []models.Signal{
		{Match: "a", League: "EPL", Edge: 10},
		{Match: "b", League: "La Liga", Edge: 5},
		{Match: "c", League: "EPL", Edge: 9},
	}

	if got := FilterLeague(signals, LeagueAll); len(got) != 3 {
		t.Fatalf("league 'all' must return the full collection, got %d", len(got))
	}
	if got := FilterLeague(signals, ""); len(got) != 3 {
		t.Fatalf("empty league must return the full collection, got %d", len(got))
	}

	epl := FilterLeague(signals, "EPL")
	if len(epl) != 2 {
		t.Fatalf("EPL filter returned %d signals, want 2", len(epl))
	}
	ranked := DefaultConfig().Rank(epl)
	if ranked[0].Match != "c" || ranked[1].Match != "a" {
		t.Fatalf("filtered collection must rank identically, got %v", ranked)
	}
}

func TestLeagues(t *testing.T) {
	signals := []models.Signal{
		{League: "Serie A"},
		{League: "EPL"},
		{League: ""},
		{League: "EPL"},
		{League: "Bundesliga"},
	}
	got := Leagues(signals)
	want := []string{"Bundesliga", "EPL", "Serie A"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Leagues = %v, want %v", got, want)
	}
}
