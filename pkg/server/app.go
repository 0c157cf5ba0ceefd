package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"TrendMatrix/internal/usecase"
	"TrendMatrix/internal/ws"
	"TrendMatrix/pkg/config"
	xhttp "TrendMatrix/pkg/http"
	applogger "TrendMatrix/pkg/logger"
)

// App encapsulates the entire application lifecycle: the WebSocket hub, the
// background poller and the HTTP server, plus orderly shutdown of every
// infrastructure client handed to it.
type App struct {
	cfg     *config.Config
	log     *applogger.Logger
	handler xhttp.Handler
	hub     *ws.Hub
	poller  *usecase.Poller
	closers []io.Closer

	httpServer *xhttp.Server
}

// New creates an App. closers are closed in reverse order on shutdown.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	handler xhttp.Handler,
	hub *ws.Hub,
	poller *usecase.Poller,
	closers ...io.Closer,
) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		handler: handler,
		hub:     hub,
		poller:  poller,
		closers: closers,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.hub.Run(ctx)

	if err := a.poller.Start(ctx); err != nil {
		return err
	}

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}
	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
	)
	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("source", a.cfg.Dashboard.Source),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown(ctx, cancel)
}

func (a *App) shutdown(ctx context.Context, cancel context.CancelFunc) error {
	a.poller.Stop()

	shutdownCtx, done := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer done()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	// Stop the hub after the HTTP server so no new clients arrive mid-close.
	cancel()

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.log.Warn("close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
