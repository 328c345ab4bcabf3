// Package report composes the dashboard report from the storm bulletin feeds
// and the weather measurement API.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/stormwatch/tropics-dashboard/internal/domain"
	"github.com/stormwatch/tropics-dashboard/internal/observability"
)

// Bulletin source names as rendered on the dashboard.
const (
	SourceNHC = "NHC"
	SourceSPC = "SPC"
)

// FeedReader extracts the first bulletin description from a syndication feed.
type FeedReader interface {
	FirstDescription(ctx context.Context, feedURL string) (string, error)
}

// WeatherFetcher retrieves current and multi-day measurements.
type WeatherFetcher interface {
	FetchCurrent(ctx context.Context, coord domain.Coordinate) map[string]domain.Measurement
	FetchForecast(ctx context.Context, coord domain.Coordinate, horizonDays int) (domain.ForecastSeries, error)
}

// Report is one fully composed dashboard render: storm bulletins, current
// conditions, and the daily outlook. Fields degraded by upstream failures
// carry error text in place of data so the display layer can always render
// every section.
type Report struct {
	GeneratedAt   time.Time                     `json:"generated_at"`
	Bulletins     []domain.FeedSummary          `json:"bulletins"`
	Current       map[string]domain.Measurement `json:"current"`
	CurrentSymbol domain.Symbol                 `json:"current_symbol"`
	Forecast      []domain.ForecastDay          `json:"forecast,omitempty"`
	ForecastError string                        `json:"forecast_error,omitempty"`
}

// Builder fetches everything fresh on each BuildReport call. It holds no
// state between builds apart from the readiness flag.
type Builder struct {
	feeds        FeedReader
	weather      WeatherFetcher
	coord        domain.Coordinate
	nhcFeedURL   string
	spcFeedURL   string
	forecastDays int
	clock        clockwork.Clock
	metrics      *observability.Metrics
	logger       *slog.Logger
	ready        atomic.Bool
}

// New creates a report builder for a fixed coordinate and feed pair.
func New(feeds FeedReader, weather WeatherFetcher, coord domain.Coordinate, nhcFeedURL, spcFeedURL string, forecastDays int, metrics *observability.Metrics, logger *slog.Logger) *Builder {
	return &Builder{
		feeds:        feeds,
		weather:      weather,
		coord:        coord,
		nhcFeedURL:   nhcFeedURL,
		spcFeedURL:   spcFeedURL,
		forecastDays: forecastDays,
		clock:        clockwork.NewRealClock(),
		metrics:      metrics,
		logger:       logger,
	}
}

// CheckReadiness returns nil once at least one report has been built.
func (b *Builder) CheckReadiness(_ context.Context) error {
	if !b.ready.Load() {
		return errors.New("no report has been built yet")
	}
	return nil
}

// BuildReport performs every upstream fetch in sequence and composes the
// report. It never fails as a whole: each section degrades independently to
// error text. Safe to call repeatedly; every call refetches everything.
func (b *Builder) BuildReport(ctx context.Context) Report {
	start := time.Now()

	r := Report{
		GeneratedAt: b.clock.Now().UTC(),
		Bulletins: []domain.FeedSummary{
			b.fetchBulletin(ctx, SourceNHC, b.nhcFeedURL),
			b.fetchBulletin(ctx, SourceSPC, b.spcFeedURL),
		},
	}

	r.Current = b.weather.FetchCurrent(ctx, b.coord)
	r.CurrentSymbol = domain.ResolveSymbol(currentSymbolCode(r.Current))

	series, err := b.weather.FetchForecast(ctx, b.coord, b.forecastDays)
	if err != nil {
		b.logger.Warn("forecast fetch failed", "error", err)
		r.ForecastError = fmt.Sprintf("Error fetching data: %v", err)
	} else {
		r.Forecast = domain.BuildForecastDays(series.Temperature, series.Symbol)
	}

	b.metrics.ReportsBuilt.Inc()
	b.metrics.ReportBuildDuration.Observe(time.Since(start).Seconds())
	b.metrics.LastReportTime.Set(float64(r.GeneratedAt.Unix()))
	b.ready.Store(true)

	b.logger.Info("report built",
		"bulletins", len(r.Bulletins),
		"forecast_days", len(r.Forecast),
		"duration", time.Since(start),
	)
	return r
}

// fetchBulletin wraps a feed fetch, converting failures into the legacy
// boundary text so a bulletin slot is always renderable.
func (b *Builder) fetchBulletin(ctx context.Context, source, feedURL string) domain.FeedSummary {
	desc, err := b.feeds.FirstDescription(ctx, feedURL)
	if err != nil {
		return domain.FeedSummary{
			Source:  source,
			Summary: fmt.Sprintf("Error fetching data: %v", err),
		}
	}
	return domain.FeedSummary{Source: source, Summary: desc}
}

// currentSymbolCode extracts the integer condition code from the current
// measurements, degrading to 0 ("could not be determined") when the symbol
// measurement failed.
func currentSymbolCode(current map[string]domain.Measurement) int {
	m, ok := current[domain.ParamWeatherSymbol]
	if !ok || !m.OK() {
		return 0
	}
	return int(m.Value)
}
