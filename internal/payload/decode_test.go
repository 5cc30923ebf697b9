package payload

import "testing"

func TestSignalsWrappedAndBare(t *testing.T) {
	wrapped := []byte(`{"signals":[{"id":1,"match":"A vs B","edge":7.5,"league":"EPL"}]}`)
	got := Signals(wrapped)
	if len(got) != 1 || got[0].Edge != 7.5 || got[0].League != "EPL" {
		t.Fatalf("unexpected decode of wrapped payload: %+v", got)
	}

	bare := []byte(`[{"id":2,"match":"C vs D"}]`)
	got = Signals(bare)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected decode of bare array: %+v", got)
	}
}

func TestSignalsMissingFieldsDefault(t *testing.T) {
	got := Signals([]byte(`{"signals":[{}]}`))
	if len(got) != 1 {
		t.Fatalf("expected one signal, got %d", len(got))
	}
	s := got[0]
	if s.Edge != 0 || s.Odds != 0 || s.League != "" || s.Capped {
		t.Fatalf("missing fields must default to zero values: %+v", s)
	}
}

func TestSignalsMalformedNeverPanics(t *testing.T) {
	for _, raw := range []string{``, `not json`, `42`, `{"signals":"nope"}`, `{"signals":[1,2]}`} {
		got := Signals([]byte(raw))
		if got == nil {
			t.Fatalf("Signals(%q) returned nil, want empty slice", raw)
		}
		if len(got) != 0 {
			t.Fatalf("Signals(%q) = %+v, want empty", raw, got)
		}
	}
}

func TestPerformanceDefaults(t *testing.T) {
	got := Performance([]byte(`{}`))
	if got.ROI != 0 || got.Label != "" {
		t.Fatalf("empty payload must decode to defaults: %+v", got)
	}

	got = Performance([]byte(`{"roi":12.5,"winRate":58.1,"label":"30d"}`))
	if got.ROI != 12.5 || got.WinRate != 58.1 || got.Label != "30d" {
		t.Fatalf("unexpected decode: %+v", got)
	}
}

func TestHistoryAcceptsLegacyBetsKey(t *testing.T) {
	rows := History([]byte(`{"bets":[{"match":"A vs B","result":"win","profit":1.2}]}`))
	if len(rows) != 1 || rows[0].Result != "win" || rows[0].Profit != 1.2 {
		t.Fatalf("unexpected decode: %+v", rows)
	}
}

func TestDateNormalization(t *testing.T) {
	rows := History([]byte(`{"history":[
		{"match":"a","date":"2026-03-14T18:30:00+02:00"},
		{"match":"b","date":1773772200},
		{"match":"c","date":"tbd"},
		{"match":"d"}
	]}`))
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0].Date != "2026-03-14T16:30:00Z" {
		t.Fatalf("offset timestamps must normalize to UTC RFC3339, got %q", rows[0].Date)
	}
	if rows[1].Date != "2026-03-17T18:30:00Z" {
		t.Fatalf("unix-second dates must normalize, got %q", rows[1].Date)
	}
	if rows[2].Date != "tbd" {
		t.Fatalf("unparseable dates must pass through raw, got %q", rows[2].Date)
	}
	if rows[3].Date != "" {
		t.Fatalf("missing dates must stay empty, got %q", rows[3].Date)
	}

	signals := Signals([]byte(`{"signals":[{"match":"a","kickoff":"2026-03-14T18:30:00Z"}]}`))
	if signals[0].Kickoff != "2026-03-14T18:30:00Z" {
		t.Fatalf("kickoff must normalize, got %q", signals[0].Kickoff)
	}
}

func TestCLVDefaults(t *testing.T) {
	got := CLV([]byte(`garbage`))
	if got.Count != 0 || got.AvgCLV != 0 || got.PositiveRate != 0 {
		t.Fatalf("malformed payload must decode to zeroes: %+v", got)
	}
}

func TestBacktestFull(t *testing.T) {
	raw := []byte(`{
		"summary": {
			"matches": 1200,
			"train": {"roi": 4.2},
			"test": {"roi": 3.1, "max_drawdown": -12.5, "sharpe": 0.9, "bets": 310},
			"avg_clv": 1.7,
			"best_params": {"shrinkage_k": 12, "blend_model_weight": 0.5, "hfa": 0.25, "edge_threshold": 0.07},
			"split": {"train_seasons": [2021, 2022], "test_seasons": [2023]}
		},
		"strategies": {
			"kelly": {"roi": 6.0, "max_drawdown": -30.0},
			"quarter_kelly": {"roi": 3.1, "max_drawdown": -12.5}
		},
		"equity_curves": {"quarter_kelly": [[0, 100], [1, 101.5], [2, 99.8]]},
		"edge_distribution": [{"label": "0-2", "count": 40}, {"label": "2-4", "count": 25}],
		"calibration": {"h2h": [{"bin": 0.5, "predicted": 0.5, "observed": 0.48, "count": 50}], "totals": []},
		"roi_by_league": [{"label": "EPL", "roi": 2.4, "bets": 120}],
		"roi_by_market": [{"label": "totals", "roi": 3.9, "bets": 190}]
	}`)

	bt := Backtest(raw)
	if bt.Summary.Matches != 1200 || bt.Summary.TrainROI != 4.2 || bt.Summary.TestROI != 3.1 {
		t.Fatalf("unexpected summary: %+v", bt.Summary)
	}
	if bt.Summary.BestParams.ShrinkageK != 12 || bt.Summary.BestParams.EdgeThreshold != 0.07 {
		t.Fatalf("unexpected best params: %+v", bt.Summary.BestParams)
	}
	if len(bt.Summary.Split.TrainSeasons) != 2 || bt.Summary.Split.TestSeasons[0] != 2023 {
		t.Fatalf("unexpected split: %+v", bt.Summary.Split)
	}
	if bt.Strategies["kelly"].MaxDrawdown != -30.0 {
		t.Fatalf("unexpected strategies: %+v", bt.Strategies)
	}
	if len(bt.EquityCurve) != 3 || bt.EquityCurve[1].Value != 101.5 {
		t.Fatalf("unexpected equity curve: %+v", bt.EquityCurve)
	}
	if len(bt.EdgeDistribution) != 2 || bt.EdgeDistribution[0].Count != 40 {
		t.Fatalf("unexpected edge distribution: %+v", bt.EdgeDistribution)
	}
	if len(bt.CalibrationH2H) != 1 || bt.CalibrationH2H[0].Observed != 0.48 {
		t.Fatalf("unexpected calibration: %+v", bt.CalibrationH2H)
	}
	if len(bt.ROIByMarket) != 1 || bt.ROIByMarket[0].Bets != 190 {
		t.Fatalf("unexpected roi_by_market: %+v", bt.ROIByMarket)
	}
}

func TestBacktestEmptyPayload(t *testing.T) {
	bt := Backtest([]byte(`{}`))
	if bt.EquityCurve == nil || bt.EdgeDistribution == nil || bt.CalibrationH2H == nil {
		t.Fatalf("sequences must be non-nil on empty payload: %+v", bt)
	}
	if bt.Summary.Matches != 0 || bt.Summary.Sharpe != 0 {
		t.Fatalf("summary must be zeroed: %+v", bt.Summary)
	}
	if len(bt.Strategies) != 0 {
		t.Fatalf("strategies must be empty: %+v", bt.Strategies)
	}
}
