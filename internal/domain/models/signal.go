package models

import "strconv"

// Signal is one betting opportunity produced by the analytics engine.
// Fields are fully populated by the payload decoder; downstream code may
// assume they are present. A Signal is immutable once decoded.
type Signal struct {
	ID          int                `json:"id"`
	MatchID     int                `json:"match_id"`
	Match       string             `json:"match"`
	Market      string             `json:"market"`
	MarketType  string             `json:"market_type"`
	League      string             `json:"league"`
	Kickoff     string             `json:"kickoff"`
	Outcome     string             `json:"outcome"`
	Probability float64            `json:"probability"`
	Odds        float64            `json:"odds"`
	Edge        float64            `json:"edge"`
	Kelly       float64            `json:"kelly"`
	Confidence  float64            `json:"confidence"`
	Capped      bool               `json:"capped"`
	Features    map[string]float64 `json:"features,omitempty"`
}

// Key returns the signal identity: the numeric id when the engine assigned
// one, otherwise the match/market pair.
func (s Signal) Key() string {
	if s.ID != 0 {
		return "signal:" + strconv.Itoa(s.ID)
	}
	return s.Match + "|" + s.Market
}
