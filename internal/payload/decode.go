// Package payload decodes the analytics engine's JSON payloads into fully
// populated records. Every accessor tolerates missing, null, or wrong-typed
// fields and substitutes a documented default (0, "", false, empty
// sequence) instead of failing: a malformed payload decodes to defaults,
// it never raises. Downstream code operates on guaranteed-present fields.
package payload

import (
	"encoding/json"
	"time"

	"github.com/atarantas86/edgefinder2/internal/domain/models"
	"github.com/atarantas86/edgefinder2/pkg/util"
)

// Signals decodes /api/signals. Accepts either {"signals": [...]} or a
// bare array. Always returns a non-nil slice.
func Signals(raw []byte) []models.Signal {
	items := listField(raw, "signals")
	out := make([]models.Signal, 0, len(items))
	for _, it := range items {
		m := asObject(it)
		if m == nil {
			continue
		}
		out = append(out, models.Signal{
			ID:          integer(m, "id"),
			MatchID:     integer(m, "match_id"),
			Match:       str(m, "match"),
			Market:      str(m, "market"),
			MarketType:  str(m, "market_type"),
			League:      str(m, "league"),
			Kickoff:     dateStr(m, "kickoff"),
			Outcome:     str(m, "outcome"),
			Probability: num(m, "probability"),
			Odds:        num(m, "odds"),
			Edge:        num(m, "edge"),
			Kelly:       num(m, "kelly"),
			Confidence:  num(m, "confidence"),
			Capped:      flag(m, "capped"),
			Features:    featureMap(m["features"]),
		})
	}
	return out
}

// Performance decodes /api/performance.
func Performance(raw []byte) models.Performance {
	m := object(raw)
	return models.Performance{
		ROI:     num(m, "roi"),
		Yield:   num(m, "yield"),
		WinRate: num(m, "winRate"),
		Label:   str(m, "label"),
	}
}

// History decodes /api/history. Accepts {"history": [...]}, the engine's
// older {"bets": [...]} shape, or a bare array.
func History(raw []byte) []models.HistoryRow {
	items := listField(raw, "history")
	if len(items) == 0 {
		items = listField(raw, "bets")
	}
	out := make([]models.HistoryRow, 0, len(items))
	for _, it := range items {
		m := asObject(it)
		if m == nil {
			continue
		}
		out = append(out, models.HistoryRow{
			ID:     integer(m, "id"),
			Match:  str(m, "match"),
			Market: str(m, "market"),
			Odds:   num(m, "odds"),
			Result: str(m, "result"),
			Profit: num(m, "profit"),
			Date:   dateStr(m, "date"),
		})
	}
	return out
}

// CLV decodes /api/clv.
func CLV(raw []byte) models.CLVStats {
	m := object(raw)
	return models.CLVStats{
		Count:        integer(m, "count"),
		AvgCLV:       num(m, "avg_clv"),
		PositiveRate: num(m, "positive_rate"),
	}
}

// Backtest decodes /api/backtest. Nested blocks that are absent decode to
// zeroed structs and empty (non-nil) sequences.
func Backtest(raw []byte) models.Backtest {
	m := object(raw)

	summary := obj(m, "summary")
	train := obj(summary, "train")
	test := obj(summary, "test")
	best := obj(summary, "best_params")
	split := obj(summary, "split")

	bt := models.Backtest{
		Summary: models.BacktestSummary{
			Matches:     integer(summary, "matches"),
			TrainROI:    num(train, "roi"),
			TestROI:     num(test, "roi"),
			MaxDrawdown: num(test, "max_drawdown"),
			Sharpe:      num(test, "sharpe"),
			Bets:        integer(test, "bets"),
			AvgCLV:      num(summary, "avg_clv"),
			BestParams: models.BacktestParams{
				ShrinkageK:       num(best, "shrinkage_k"),
				BlendModelWeight: num(best, "blend_model_weight"),
				HFA:              num(best, "hfa"),
				EdgeThreshold:    num(best, "edge_threshold"),
			},
			Split: models.BacktestSplit{
				TrainSeasons: intList(split["train_seasons"]),
				TestSeasons:  intList(split["test_seasons"]),
			},
		},
		Strategies:       map[string]models.StrategyResult{},
		EquityCurve:      equityCurve(obj(m, "equity_curves")["quarter_kelly"]),
		EdgeDistribution: barData(m["edge_distribution"]),
		CalibrationH2H:   calibrationPoints(obj(m, "calibration")["h2h"]),
		CalibrationTotal: calibrationPoints(obj(m, "calibration")["totals"]),
		ROIByLeague:      roiBreakdown(m["roi_by_league"]),
		ROIByMarket:      roiBreakdown(m["roi_by_market"]),
	}

	for name, v := range obj(m, "strategies") {
		sm := asObject(v)
		if sm == nil {
			continue
		}
		bt.Strategies[name] = models.StrategyResult{
			ROI:         num(sm, "roi"),
			MaxDrawdown: num(sm, "max_drawdown"),
		}
	}
	return bt
}

// equityCurve decodes [[index, value], ...] pairs, preserving order.
// Malformed entries keep their slot with defaulted members so the series
// length (and therefore the x axis) stays stable.
func equityCurve(v interface{}) []models.TimeSeriesPoint {
	items := asArray(v)
	out := make([]models.TimeSeriesPoint, 0, len(items))
	for i, it := range items {
		pair := asArray(it)
		p := models.TimeSeriesPoint{Index: i}
		if len(pair) > 0 {
			p.Index = int(coerce(pair[0]))
		}
		if len(pair) > 1 {
			p.Value = coerce(pair[1])
		}
		out = append(out, p)
	}
	return out
}

func barData(v interface{}) []models.BarDatum {
	items := asArray(v)
	out := make([]models.BarDatum, 0, len(items))
	for _, it := range items {
		m := asObject(it)
		if m == nil {
			continue
		}
		label := str(m, "label")
		if label == "" {
			label = str(m, "bin")
		}
		out = append(out, models.BarDatum{Label: label, Count: integer(m, "count")})
	}
	return out
}

func calibrationPoints(v interface{}) []models.CalibrationPoint {
	items := asArray(v)
	out := make([]models.CalibrationPoint, 0, len(items))
	for _, it := range items {
		m := asObject(it)
		if m == nil {
			continue
		}
		out = append(out, models.CalibrationPoint{
			Bin:       num(m, "bin"),
			Predicted: num(m, "predicted"),
			Observed:  num(m, "observed"),
			Count:     integer(m, "count"),
		})
	}
	return out
}

func roiBreakdown(v interface{}) []models.LeagueROI {
	items := asArray(v)
	out := make([]models.LeagueROI, 0, len(items))
	for _, it := range items {
		m := asObject(it)
		if m == nil {
			continue
		}
		out = append(out, models.LeagueROI{
			Label: str(m, "label"),
			ROI:   num(m, "roi"),
			Bets:  integer(m, "bets"),
		})
	}
	return out
}

func featureMap(v interface{}) map[string]float64 {
	m := asObject(v)
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, fv := range m {
		out[k] = coerce(fv)
	}
	return out
}

// object decodes raw bytes as a JSON object, or an empty map on any error.
func object(raw []byte) map[string]interface{} {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return map[string]interface{}{}
	}
	if m := asObject(v); m != nil {
		return m
	}
	return map[string]interface{}{}
}

// listField extracts a named array from an object payload, falling back to
// treating the whole payload as a bare array.
func listField(raw []byte, key string) []interface{} {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	if m := asObject(v); m != nil {
		return asArray(m[key])
	}
	return asArray(v)
}

func asObject(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asArray(v interface{}) []interface{} {
	a, _ := v.([]interface{})
	return a
}

func obj(m map[string]interface{}, key string) map[string]interface{} {
	if o := asObject(m[key]); o != nil {
		return o
	}
	return map[string]interface{}{}
}

func num(m map[string]interface{}, key string) float64 {
	return coerce(m[key])
}

func integer(m map[string]interface{}, key string) int {
	return int(coerce(m[key]))
}

func str(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func flag(m map[string]interface{}, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// dateStr reads a timestamp field the engine emits in mixed formats
// (RFC3339 strings or unix seconds, sometimes numeric) and normalizes
// parseable values to UTC RFC3339. Unparseable values pass through raw.
func dateStr(m map[string]interface{}, key string) string {
	if n, ok := m[key].(float64); ok && n > 0 {
		return time.Unix(int64(n), 0).UTC().Format(time.RFC3339)
	}
	s := str(m, key)
	if t, ok := util.ParseTime(s); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return s
}

func intList(v interface{}) []int {
	items := asArray(v)
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, int(coerce(it)))
	}
	return out
}

func coerce(v interface{}) float64 {
	n, _ := v.(float64)
	return n
}
