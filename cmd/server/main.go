package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"spending-tracker/internal/config"
	"spending-tracker/internal/handlers"
	"spending-tracker/internal/metrics"
	appmiddleware "spending-tracker/internal/middleware"
	"spending-tracker/internal/store"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	e := newServer(cfg, store.New(), metrics.NewHTTPMetrics(prometheus.DefaultRegisterer), prometheus.DefaultGatherer)

	// Drain in-flight requests briefly on SIGINT/SIGTERM.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
	}()

	logger.Info("starting spending tracker", "addr", cfg.Server.Addr)
	if err := e.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err, "addr", cfg.Server.Addr)
		os.Exit(1)
	}
}

// newServer wires middleware, handlers and routes onto a fresh echo
// instance.
func newServer(cfg *config.Config, st *store.Store, m *metrics.HTTPMetrics, g prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.Metrics(m))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: cfg.Server.CORSAllowMethods,
	}))

	spendingHandler := handlers.NewSpendingHandler(st)
	assetHandler := handlers.NewAssetHandler()

	e.POST("/spent", spendingHandler.Spend)
	e.GET("/spent", spendingHandler.SpentTotal)
	e.POST("/budget", spendingHandler.SetBudget)
	e.GET("/reset", spendingHandler.Reset)
	e.GET("/", assetHandler.Index)
	e.GET("/dist/*", assetHandler.Dist)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))

	return e
}
