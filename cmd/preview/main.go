// Command preview renders one dashboard report as plain text on stdout.
// Useful for checking credentials and upstream availability without running
// the HTTP server.
//
// Usage:
//
//	METEOMATICS_USERNAME=... METEOMATICS_PASSWORD=... go run ./cmd/preview
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/stormwatch/tropics-dashboard/internal/adapter/feed"
	"github.com/stormwatch/tropics-dashboard/internal/adapter/meteomatics"
	"github.com/stormwatch/tropics-dashboard/internal/config"
	"github.com/stormwatch/tropics-dashboard/internal/domain"
	"github.com/stormwatch/tropics-dashboard/internal/observability"
	"github.com/stormwatch/tropics-dashboard/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger("error", "text")
	metrics := observability.NewMetrics()

	feeds := feed.NewClient(cfg.FetchTimeout, metrics, logger)
	weather := meteomatics.NewClient(
		cfg.MeteomaticsUsername, cfg.MeteomaticsPassword, cfg.MeteomaticsBaseURL,
		cfg.FetchTimeout, metrics, logger,
	)
	builder := report.New(feeds, weather, cfg.Coordinate, cfg.NHCFeedURL, cfg.SPCFeedURL, cfg.ForecastDays, metrics, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	printReport(builder.BuildReport(ctx))
}

func printReport(r report.Report) {
	fmt.Println("Tropics & Severe Weather Dashboard")
	fmt.Println()

	for _, b := range r.Bulletins {
		icon := "🌀"
		if b.Source == report.SourceSPC {
			icon = "⛈️"
		}
		fmt.Printf("%s %s: %s\n", icon, b.Source, b.Summary)
	}

	fmt.Println()
	fmt.Printf("Current conditions (%s)\n", r.GeneratedAt.Format(time.RFC3339))
	fmt.Printf("  Temperature:        %s °F\n", r.Current[domain.ParamTemperature].Display(domain.ParamTemperature))
	fmt.Printf("  Weather:            %s %s\n", r.CurrentSymbol.Icon, r.CurrentSymbol.Description)
	fmt.Printf("  Heavy rain warning: %s mm\n", r.Current[domain.ParamHeavyRainWarning].Display(domain.ParamHeavyRainWarning))
	fmt.Printf("  Air quality (PM2.5): %s µg/m³\n", r.Current[domain.ParamAirQuality].Display(domain.ParamAirQuality))

	fmt.Println()
	fmt.Println("5-Day Outlook")
	if r.ForecastError != "" {
		fmt.Printf("  %s\n", r.ForecastError)
		return
	}
	for _, day := range r.Forecast {
		fmt.Printf("  %s  %6.1f °F  %s %s\n",
			day.Date.Format("2006-01-02"), day.Temperature, day.Symbol.Icon, day.Symbol.Description)
	}
}
