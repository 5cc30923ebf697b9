package di

import (
	"fmt"

	"github.com/atarantas86/edgefinder2/internal/chart"
	"github.com/atarantas86/edgefinder2/internal/fetch"
	"github.com/atarantas86/edgefinder2/internal/handler/api"
	"github.com/atarantas86/edgefinder2/internal/stats"
	"github.com/atarantas86/edgefinder2/internal/usecase"
	"github.com/atarantas86/edgefinder2/pkg/cache"
	"github.com/atarantas86/edgefinder2/pkg/config"
	xhttp "github.com/atarantas86/edgefinder2/pkg/http"
	xlogger "github.com/atarantas86/edgefinder2/pkg/logger"
	"github.com/atarantas86/edgefinder2/pkg/metrics"
	"github.com/atarantas86/edgefinder2/pkg/server"
)

// ProvideLogger creates the structured application logger.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	l, err := xlogger.New(&xlogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideHTTPClient creates the outbound client used against the engine.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(xhttp.WithTimeout(cfg.Engine.Timeout))
}

// ProvideFetcher creates the engine fetcher.
func ProvideFetcher(client *xhttp.Client, cfg *config.Config, l *xlogger.Logger, rec *metrics.Recorder) *fetch.Fetcher {
	return fetch.New(client, cfg.Engine.BaseURL, l, rec)
}

// ProvideCache creates the backtest memoization cache. Redis gets a memory
// layer in front so repeated identical requests stay in-process.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Cache.Backend == "redis" {
		rc, err := cache.NewRedisCache(
			cache.WithRedisAddr(cfg.Cache.Redis.Host, cfg.Cache.Redis.Port),
			cache.WithRedisAuth(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return cache.NewLayeredCache(rc), nil
	}
	return cache.NewMemoryCache(), nil
}

// ProvideTheme builds the chart theme from config, falling back to the
// defaults for unset fields.
func ProvideTheme(cfg *config.Config) chart.Theme {
	t := chart.DefaultTheme()
	if cfg.Charts.Width > 0 {
		t.Width = cfg.Charts.Width
	}
	if cfg.Charts.Height > 0 {
		t.Height = cfg.Charts.Height
	}
	if cfg.Charts.Stroke != "" {
		t.Stroke = cfg.Charts.Stroke
	}
	if cfg.Charts.Fill != "" {
		t.Fill = cfg.Charts.Fill
	}
	if cfg.Charts.Grid != "" {
		t.Grid = cfg.Charts.Grid
	}
	if cfg.Charts.Accent != "" {
		t.Accent = cfg.Charts.Accent
	}
	if cfg.Charts.Background != "" {
		t.Background = cfg.Charts.Background
	}
	if cfg.Charts.GaugeRadius > 0 {
		t.GaugeRadius = cfg.Charts.GaugeRadius
	}
	return t
}

// ProvideStatsConfig builds the signal classification config.
func ProvideStatsConfig(cfg *config.Config) stats.Config {
	return stats.Config{ReliableEdgeThreshold: cfg.Signals.ReliableEdgeThreshold}
}

// ProvideDashboard creates the dashboard use case.
func ProvideDashboard(
	f *fetch.Fetcher,
	statsCfg stats.Config,
	theme chart.Theme,
	cacheSvc cache.Service,
	cfg *config.Config,
	l *xlogger.Logger,
	rec *metrics.Recorder,
) *usecase.Dashboard {
	return usecase.NewDashboard(f, statsCfg, theme, cacheSvc, cfg.Cache.BacktestTTL, l, rec)
}

// ProvideHandler creates the Echo route handler.
func ProvideHandler(l *xlogger.Logger, dash *usecase.Dashboard) xhttp.Handler {
	return api.NewDashboardEchoHandler(l, dash)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, cacheSvc cache.Service, l *xlogger.Logger) *server.App {
	return server.New(cfg, handler, cacheSvc, l)
}
