package models

// Performance is the decoded /api/performance payload.
type Performance struct {
	ROI     float64 `json:"roi"`
	Yield   float64 `json:"yield"`
	WinRate float64 `json:"winRate"`
	Label   string  `json:"label"`
}

// HistoryRow is one settled or pending bet from /api/history.
type HistoryRow struct {
	ID     int     `json:"id"`
	Match  string  `json:"match"`
	Market string  `json:"market"`
	Odds   float64 `json:"odds"`
	Result string  `json:"result"` // "win", "loss", or pending
	Profit float64 `json:"profit"`
	Date   string  `json:"date"`
}

// CLVStats is the decoded /api/clv payload: closing-line-value aggregates.
type CLVStats struct {
	Count        int     `json:"count"`
	AvgCLV       float64 `json:"avg_clv"`
	PositiveRate float64 `json:"positive_rate"`
}

// BarDatum is one labelled count for bar charts.
type BarDatum struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CalibrationPoint pairs a predicted probability with the observed outcome
// frequency for one probability bin. Both coordinates live in [0,1].
type CalibrationPoint struct {
	Bin       float64 `json:"bin"`
	Predicted float64 `json:"predicted"`
	Observed  float64 `json:"observed"`
	Count     int     `json:"count"`
}

// TimeSeriesPoint is an (index, value) sample of an ordered series.
type TimeSeriesPoint struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// LeagueROI is a per-league (or per-market) return breakdown.
type LeagueROI struct {
	Label string  `json:"label"`
	ROI   float64 `json:"roi"`
	Bets  int     `json:"bets"`
}

// StrategyResult summarizes one staking strategy from the backtest.
type StrategyResult struct {
	ROI         float64 `json:"roi"`
	MaxDrawdown float64 `json:"max_drawdown"`
}

// BacktestParams are the best parameters found by the backtest grid search.
type BacktestParams struct {
	ShrinkageK       float64 `json:"shrinkage_k"`
	BlendModelWeight float64 `json:"blend_model_weight"`
	HFA              float64 `json:"hfa"`
	EdgeThreshold    float64 `json:"edge_threshold"`
}

// BacktestSplit names the seasons used for training and testing.
type BacktestSplit struct {
	TrainSeasons []int `json:"train_seasons"`
	TestSeasons  []int `json:"test_seasons"`
}

// BacktestSummary is the headline block of the backtest payload.
type BacktestSummary struct {
	Matches     int            `json:"matches"`
	TrainROI    float64        `json:"train_roi"`
	TestROI     float64        `json:"test_roi"`
	MaxDrawdown float64        `json:"max_drawdown"`
	Sharpe      float64        `json:"sharpe"`
	Bets        int            `json:"bets"`
	AvgCLV      float64        `json:"avg_clv"`
	BestParams  BacktestParams `json:"best_params"`
	Split       BacktestSplit  `json:"split"`
}

// Backtest is the fully-decoded /api/backtest payload. Every sequence is
// non-nil and every scalar defaulted, so consumers index freely.
type Backtest struct {
	Summary          BacktestSummary           `json:"summary"`
	Strategies       map[string]StrategyResult `json:"strategies"`
	EquityCurve      []TimeSeriesPoint         `json:"equity_curve"` // quarter_kelly curve
	EdgeDistribution []BarDatum                `json:"edge_distribution"`
	CalibrationH2H   []CalibrationPoint        `json:"calibration_h2h"`
	CalibrationTotal []CalibrationPoint        `json:"calibration_totals"`
	ROIByLeague      []LeagueROI               `json:"roi_by_league"`
	ROIByMarket      []LeagueROI               `json:"roi_by_market"`
}
