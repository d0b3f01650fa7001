package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"WhaleScope/internal/domain/repository"
	"WhaleScope/internal/usecase"
	"WhaleScope/pkg/config"
	"WhaleScope/pkg/logger"
)

// App runs one precompute batch while exposing the operational
// endpoints (/healthz, /metrics). The classification API itself is an
// external collaborator; this listener carries observability only.
type App struct {
	cfg    *config.Config
	runner *usecase.BatchRunner
	store  repository.FingerprintStore
	log    *logger.Logger
	echo   *echo.Echo
}

// New creates the application.
func New(cfg *config.Config, runner *usecase.BatchRunner, store repository.FingerprintStore, log *logger.Logger) *App {
	return &App{cfg: cfg, runner: runner, store: store, log: log}
}

// Run starts the operational listener, executes the batch, writes the
// results, and shuts down. Returns an error if any wallet failed.
func (a *App) Run(ctx context.Context) error {
	a.echo = echo.New()
	a.echo.HideBanner = true
	a.echo.HidePort = true
	a.echo.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if a.cfg.Metrics.Enabled {
		a.echo.GET(a.cfg.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	go func() {
		addr := fmt.Sprintf(":%d", a.cfg.Server.Port)
		if err := a.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			a.log.Warn("operational listener stopped", logger.Error(err))
		}
	}()
	a.log.Info("operational listener started", logger.Int("port", a.cfg.Server.Port))

	res, err := a.runner.RunDir(ctx, a.cfg.Batch.InputDir)
	if err != nil {
		a.shutdown(ctx)
		return err
	}
	if werr := usecase.WriteResults(a.cfg.Batch.OutputPath, res.Results); werr != nil {
		a.log.Error("result write failed", logger.Error(werr))
	}
	a.log.Info("precompute done", logger.Int("ok", res.OK), logger.Int("failed", res.Failed))

	a.shutdown(ctx)
	if res.Failed > 0 {
		return fmt.Errorf("%d wallet(s) failed", res.Failed)
	}
	return nil
}

func (a *App) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.echo.Shutdown(shutdownCtx); err != nil {
		a.log.Warn("http shutdown error", logger.Error(err))
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("store close error", logger.Error(err))
		}
	}
}
