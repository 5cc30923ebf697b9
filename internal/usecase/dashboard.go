// Package usecase composes fetch, payload decoding, stats and chart
// normalization into the views the dashboard API serves. Each view is fed
// by its own endpoint binding, so a failing engine endpoint only takes
// down its own view; siblings keep operating.
package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/atarantas86/edgefinder2/internal/chart"
	"github.com/atarantas86/edgefinder2/internal/domain/models"
	"github.com/atarantas86/edgefinder2/internal/fetch"
	"github.com/atarantas86/edgefinder2/internal/payload"
	"github.com/atarantas86/edgefinder2/internal/stats"
	"github.com/atarantas86/edgefinder2/pkg/cache"
	xlogger "github.com/atarantas86/edgefinder2/pkg/logger"
	"github.com/atarantas86/edgefinder2/pkg/metrics"
	"github.com/atarantas86/edgefinder2/pkg/util"
)

// PerformanceView is the /dashboard/performance response: the decoded
// payload plus the win-rate gauge geometry.
type PerformanceView struct {
	Performance models.Performance `json:"performance"`
	CLV         models.CLVStats    `json:"clv"`
	Gauge       chart.Arc          `json:"gauge"`
}

// BacktestView is the /dashboard/backtest response: the decoded payload
// plus normalized geometry for each chart the view draws.
type BacktestView struct {
	Backtest    models.Backtest       `json:"backtest"`
	EquityPath  []chart.PathCmd       `json:"equityPath"`
	EdgeBars    []chart.Bar           `json:"edgeBars"`
	Calibration chart.CalibrationPlot `json:"calibration"`
}

// Dashboard owns one binding per engine endpoint and derives the view
// models from their payloads.
type Dashboard struct {
	fetcher *fetch.Fetcher

	signals     *fetch.Binding
	performance *fetch.Binding
	history     *fetch.Binding
	clv         *fetch.Binding

	statsCfg    stats.Config
	theme       chart.Theme
	cache       cache.Service
	backtestTTL time.Duration
	log         *xlogger.Logger
	rec         *metrics.Recorder
}

// NewDashboard creates the dashboard usecase. Cache may be nil, which
// disables backtest memoization.
func NewDashboard(
	f *fetch.Fetcher,
	statsCfg stats.Config,
	theme chart.Theme,
	cacheSvc cache.Service,
	backtestTTL time.Duration,
	log *xlogger.Logger,
	rec *metrics.Recorder,
) *Dashboard {
	return &Dashboard{
		fetcher:     f,
		signals:     f.Bind("/api/signals", false),
		performance: f.Bind("/api/performance", false),
		history:     f.Bind("/api/history", false),
		clv:         f.Bind("/api/clv", false),
		statsCfg:    statsCfg,
		theme:       theme,
		cache:       cacheSvc,
		backtestTTL: backtestTTL,
		log:         log,
		rec:         rec,
	}
}

// Signals returns the classified, ranked signal collection with its
// summary and the league option list. The league filter applies before
// classification; "all" (or empty) disables it. Leagues are always derived
// from the unfiltered collection.
func (d *Dashboard) Signals(ctx context.Context, league string) (models.SignalsView, error) {
	raw, err := d.load(ctx, d.signals)
	if err != nil {
		return models.SignalsView{}, err
	}

	all := payload.Signals(raw)
	if league == "" {
		league = stats.LeagueAll
	}
	filtered := stats.FilterLeague(all, league)

	return models.SignalsView{
		Signals: d.statsCfg.Rank(filtered),
		Summary: models.SignalsSummary{
			AvgEdge:       stats.AverageBy(filtered, func(s models.Signal) float64 { return s.Edge }),
			AvgConfidence: stats.AverageBy(filtered, func(s models.Signal) float64 { return s.Confidence }),
			Count:         len(filtered),
		},
		Leagues: stats.Leagues(all),
		League:  league,
	}, nil
}

// Performance returns ROI/yield/win-rate figures with the win-rate gauge
// geometry, plus closing-line-value aggregates.
func (d *Dashboard) Performance(ctx context.Context) (PerformanceView, error) {
	raw, err := d.load(ctx, d.performance)
	if err != nil {
		return PerformanceView{}, err
	}
	perf := payload.Performance(raw)
	perf.Label = util.OrPlaceholder(perf.Label)

	view := PerformanceView{
		Performance: perf,
		Gauge:       chart.Gauge(perf.WinRate, d.theme.GaugeRadius),
	}

	// CLV is decorative here; a failing /api/clv must not sink the view.
	if clvRaw, clvErr := d.load(ctx, d.clv); clvErr == nil {
		view.CLV = payload.CLV(clvRaw)
	}
	return view, nil
}

// History returns the bet rows plus the derived win/loss/pending counts
// and the cumulative profit series.
func (d *Dashboard) History(ctx context.Context) (models.HistoryView, error) {
	raw, err := d.load(ctx, d.history)
	if err != nil {
		return models.HistoryView{}, err
	}
	rows := payload.History(raw)
	return models.HistoryView{
		Rows:    rows,
		Results: resultCounts(rows),
		Profit:  cumulativeProfit(rows),
	}, nil
}

// Backtest returns the decoded backtest with its chart geometry. Results
// are memoized per parameter set (the engine recomputes backtests on
// demand and they are expensive); Refresh bypasses the cache.
func (d *Dashboard) Backtest(ctx context.Context, req models.BacktestRequest) (BacktestView, error) {
	raw, err := d.loadBacktest(ctx, req)
	if err != nil {
		return BacktestView{}, err
	}

	bt := payload.Backtest(raw)
	view := BacktestView{Backtest: bt}

	values := make([]float64, len(bt.EquityCurve))
	for i, p := range bt.EquityCurve {
		values[i] = p.Value
	}
	view.EquityPath, _ = chart.LinePath(values)
	view.EdgeBars, _ = chart.Bars(bt.EdgeDistribution)
	view.Calibration, _ = chart.Calibration(bt.CalibrationH2H)
	return view, nil
}

// EquitySVG renders the quarter-Kelly equity curve.
func (d *Dashboard) EquitySVG(ctx context.Context, req models.BacktestRequest) (string, error) {
	raw, err := d.loadBacktest(ctx, req)
	if err != nil {
		return "", err
	}
	bt := payload.Backtest(raw)
	values := make([]float64, len(bt.EquityCurve))
	for i, p := range bt.EquityCurve {
		values[i] = p.Value
	}
	d.recordChart("equity")
	return chart.RenderLine(d.theme, values), nil
}

// ResultsSVG renders the history win/loss/pending bar chart.
func (d *Dashboard) ResultsSVG(ctx context.Context) (string, error) {
	view, err := d.History(ctx)
	if err != nil {
		return "", err
	}
	d.recordChart("results")
	return chart.RenderBars(d.theme, view.Results), nil
}

// CalibrationSVG renders the calibration scatter for one market.
func (d *Dashboard) CalibrationSVG(ctx context.Context, req models.BacktestRequest, market string) (string, error) {
	raw, err := d.loadBacktest(ctx, req)
	if err != nil {
		return "", err
	}
	bt := payload.Backtest(raw)
	points := bt.CalibrationH2H
	if market == "totals" {
		points = bt.CalibrationTotal
	}
	d.recordChart("calibration")
	return chart.RenderCalibration(d.theme, points), nil
}

// ConfidenceSVG renders the gauge for the mean confidence of the current
// signal collection.
func (d *Dashboard) ConfidenceSVG(ctx context.Context) (string, error) {
	view, err := d.Signals(ctx, stats.LeagueAll)
	if err != nil {
		return "", err
	}
	d.recordChart("confidence")
	return chart.RenderGauge(d.theme, view.Summary.AvgConfidence), nil
}

// load refreshes a binding and returns its payload. The returned error
// carries the user-facing message from the fetch state.
func (d *Dashboard) load(ctx context.Context, b *fetch.Binding) ([]byte, error) {
	snap, err := b.Load(ctx)
	if err != nil {
		return nil, errors.New(snap.Err)
	}
	return snap.Data, nil
}

func (d *Dashboard) loadBacktest(ctx context.Context, req models.BacktestRequest) ([]byte, error) {
	key := backtestKey(req)

	if d.cache != nil && !req.Refresh {
		var cached []byte
		if err := d.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	b := d.fetcher.BindQuery("/api/backtest", backtestQuery(req), false)
	snap, err := b.Load(ctx)
	if err != nil {
		return nil, errors.New(snap.Err)
	}

	if d.cache != nil {
		if err := d.cache.Set(ctx, key, snap.Data, d.backtestTTL); err != nil && d.log != nil {
			d.log.Warn("backtest cache write failed", xlogger.Error(err))
		}
	}
	return snap.Data, nil
}

func (d *Dashboard) recordChart(kind string) {
	if d.rec != nil {
		d.rec.RecordChart(kind)
	}
}

func backtestKey(req models.BacktestRequest) string {
	raw := cache.GenerateKeyWithParams("backtest",
		req.Seasons, req.Leagues, req.Markets, req.Blend, req.Edge, req.SplitMode)
	return "backtest:" + cache.HashKey(raw)
}

func backtestQuery(req models.BacktestRequest) map[string][]string {
	return map[string][]string{
		"seasons":    {req.Seasons},
		"leagues":    {req.Leagues},
		"markets":    {req.Markets},
		"blend":      {strconv.FormatFloat(req.Blend, 'f', -1, 64)},
		"edge":       {strconv.FormatFloat(req.Edge, 'f', -1, 64)},
		"split_mode": {req.SplitMode},
	}
}

// resultCounts tallies history outcomes into the fixed win/loss/pending
// buckets. Unknown result strings count as pending.
func resultCounts(rows []models.HistoryRow) []models.BarDatum {
	counts := map[string]int{}
	for _, r := range rows {
		switch r.Result {
		case "win", "loss":
			counts[r.Result]++
		default:
			counts["pending"]++
		}
	}
	if len(rows) == 0 {
		return []models.BarDatum{}
	}
	return []models.BarDatum{
		{Label: "win", Count: counts["win"]},
		{Label: "loss", Count: counts["loss"]},
		{Label: "pending", Count: counts["pending"]},
	}
}

// cumulativeProfit builds the bankroll equity series from settled bets,
// preserving row order.
func cumulativeProfit(rows []models.HistoryRow) []float64 {
	out := make([]float64, 0, len(rows))
	var running float64
	for _, r := range rows {
		running += r.Profit
		out = append(out, running)
	}
	return out
}
