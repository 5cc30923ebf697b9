package models

// SignalsSummary holds the derived scalar summaries for a signal collection.
type SignalsSummary struct {
	AvgEdge       float64 `json:"avgEdge"`
	AvgConfidence float64 `json:"avgConfidence"`
	Count         int     `json:"count"`
}

// ClassifiedSignal pairs a signal with its reliability bucket.
type ClassifiedSignal struct {
	Signal
	Class string `json:"class"` // "reliable" or "speculative"
}

// SignalsView is the /dashboard/signals response.
type SignalsView struct {
	Signals []ClassifiedSignal `json:"signals"`
	Summary SignalsSummary     `json:"summary"`
	Leagues []string           `json:"leagues"`
	League  string             `json:"league"` // active filter, "all" when unfiltered
}

// HistoryView is the /dashboard/history response: raw rows plus the
// normalized geometry derived from them.
type HistoryView struct {
	Rows    []HistoryRow `json:"rows"`
	Results []BarDatum   `json:"results"` // win/loss/pending counts
	Profit  []float64    `json:"profit"`  // cumulative profit series
}
