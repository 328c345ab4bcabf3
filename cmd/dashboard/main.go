// Command dashboard serves the tropics and severe weather dashboard: NOAA
// storm bulletins plus current and five-day weather for a fixed coordinate,
// exposed as JSON on GET /dashboard alongside the usual ops endpoints.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stormwatch/tropics-dashboard/internal/adapter/feed"
	httpadapter "github.com/stormwatch/tropics-dashboard/internal/adapter/http"
	kafkaadapter "github.com/stormwatch/tropics-dashboard/internal/adapter/kafka"
	"github.com/stormwatch/tropics-dashboard/internal/adapter/meteomatics"
	"github.com/stormwatch/tropics-dashboard/internal/config"
	"github.com/stormwatch/tropics-dashboard/internal/observability"
	"github.com/stormwatch/tropics-dashboard/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	feeds := feed.NewClient(cfg.FetchTimeout, metrics, logger)
	weather := meteomatics.NewClient(
		cfg.MeteomaticsUsername, cfg.MeteomaticsPassword, cfg.MeteomaticsBaseURL,
		cfg.FetchTimeout, metrics, logger,
	)

	builder := report.New(feeds, weather, cfg.Coordinate, cfg.NHCFeedURL, cfg.SPCFeedURL, cfg.ForecastDays, metrics, logger)

	// Bulletin publishing is feature-flagged via KAFKA_ENABLED / KAFKA_BROKERS.
	var reports httpadapter.ReportProvider = builder
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, metrics, logger)
		reports = report.WithPublisher(builder, writer, logger)
		metrics.PublishEnabled.Set(1)
		logger.Info("bulletin publishing enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("bulletin publishing disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, reports, builder, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Warm the readiness probe with one initial render.
	go func() {
		warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		reports.BuildReport(warmCtx)
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
