// Package stats derives scalar summaries and ordering over signal
// collections. All functions are pure and safe for concurrent use.
package stats

import (
	"sort"

	"github.com/atarantas86/edgefinder2/internal/domain/models"
)

// Classification buckets.
const (
	ClassReliable    = "reliable"
	ClassSpeculative = "speculative"
)

// LeagueAll disables the league filter.
const LeagueAll = "all"

// Config carries the classification thresholds. Injected so the rules can
// be tested against varied configurations instead of living as literals at
// call sites.
type Config struct {
	// ReliableEdgeThreshold: a signal with edge strictly below this value
	// classifies as reliable. The polarity is intentional product
	// behavior (small edges are trusted, large ones flagged speculative);
	// do not invert it here.
	ReliableEdgeThreshold float64
}

// DefaultConfig returns the production classification rules.
func DefaultConfig() Config {
	return Config{ReliableEdgeThreshold: 8}
}

// Classify assigns the reliability bucket for a signal.
func (c Config) Classify(s models.Signal) string {
	if s.Edge < c.ReliableEdgeThreshold {
		return ClassReliable
	}
	return ClassSpeculative
}

// Rank orders a signal collection for display: reliable signals first,
// speculative second (stable partition), each group sorted by descending
// edge with ties kept in original relative order. The input slice is not
// mutated.
func (c Config) Rank(signals []models.Signal) []models.ClassifiedSignal {
	out := make([]models.ClassifiedSignal, len(signals))
	for i, s := range signals {
		out[i] = models.ClassifiedSignal{Signal: s, Class: c.Classify(s)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Class == ClassReliable, out[j].Class == ClassReliable
		if ri != rj {
			return ri
		}
		return out[i].Edge > out[j].Edge
	})
	return out
}

// FilterLeague keeps signals whose league exactly matches the filter.
// "all" (or an empty filter) returns the input unchanged.
func FilterLeague(signals []models.Signal, league string) []models.Signal {
	if league == "" || league == LeagueAll {
		return signals
	}
	out := make([]models.Signal, 0, len(signals))
	for _, s := range signals {
		if s.League == league {
			out = append(out, s)
		}
	}
	return out
}

// Leagues returns the distinct non-empty league names present in the
// collection, alphabetically ordered.
func Leagues(signals []models.Signal) []string {
	seen := make(map[string]struct{}, len(signals))
	out := make([]string, 0, len(signals))
	for _, s := range signals {
		if s.League == "" {
			continue
		}
		if _, ok := seen[s.League]; ok {
			continue
		}
		seen[s.League] = struct{}{}
		out = append(out, s.League)
	}
	sort.Strings(out)
	return out
}

// Average computes the arithmetic mean of the named field across raw
// payload items. Empty input yields 0. Missing or non-numeric fields
// coerce to 0 but still count in the denominator.
func Average(items []map[string]interface{}, key string) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, item := range items {
		sum += coerceNumber(item[key])
	}
	return sum / float64(len(items))
}

// AverageBy computes the arithmetic mean of f over a typed collection.
// Empty input yields 0.
func AverageBy[T any](items []T, f func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, item := range items {
		sum += f(item)
	}
	return sum / float64(len(items))
}

func coerceNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}
