package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/atarantas86/edgefinder2/pkg/cache"
	"github.com/atarantas86/edgefinder2/pkg/config"
	xhttp "github.com/atarantas86/edgefinder2/pkg/http"
	xlogger "github.com/atarantas86/edgefinder2/pkg/logger"
)

// App encapsulates the application lifecycle: the HTTP server plus the
// cache it has to release on shutdown.
type App struct {
	cfg        *config.Config
	handler    xhttp.Handler
	cacheSvc   cache.Service
	log        *xlogger.Logger
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, handler xhttp.Handler, cacheSvc cache.Service, log *xlogger.Logger) *App {
	return &App{
		cfg:      cfg,
		handler:  handler,
		cacheSvc: cacheSvc,
		log:      log,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(a.cfg.Metrics.Path),
		xhttp.WithLogger(a.log),
	)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", xlogger.Error(err))
		return err
	}
	a.log.Info("dashboard started",
		xlogger.Int("port", a.cfg.Server.Port),
		xlogger.String("engine", a.cfg.Engine.BaseURL),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops the HTTP server and closes the cache.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", xlogger.Error(err))
	}

	if a.cacheSvc != nil {
		if err := a.cacheSvc.Close(); err != nil {
			a.log.Warn("cache close error", xlogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
