// Package meteomatics fetches scalar weather measurements from the
// Meteomatics API.
package meteomatics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/stormwatch/tropics-dashboard/internal/domain"
	"github.com/stormwatch/tropics-dashboard/internal/observability"
)

const (
	metricTarget = "weather"

	// instantFormat renders a UTC instant the way the API's URL path expects.
	instantFormat = "2006-01-02T15:04:05Z"

	// dailyInterval is the ISO-8601 sampling interval for the daily outlook.
	dailyInterval = "PT24H"
)

// parameter binds a dashboard parameter name to its provider quantity
// expression (physical quantity and unit).
type parameter struct {
	name     string
	quantity string
}

// currentParameters are requested on every current-conditions fetch, in this
// order. The first two double as the forecast parameters.
var currentParameters = []parameter{
	{domain.ParamTemperature, "t_2m:F"},
	{domain.ParamWeatherSymbol, "weather_symbol_1h:idx"},
	{domain.ParamHeavyRainWarning, "precip_1h:mm"},
	{domain.ParamAirQuality, "pm2p5:ugm3"},
}

var forecastParameters = currentParameters[:2]

// Client issues Basic-Auth requests against the Meteomatics measurement API.
// Each measurement is one blocking round trip; no retries, no caching.
type Client struct {
	username   string
	password   string
	baseURL    string
	httpClient *http.Client
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Meteomatics client.
func NewClient(username, password, baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		username: username,
		password: password,
		baseURL:  baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock:   clockwork.NewRealClock(),
		metrics: metrics,
		logger:  logger,
	}
}

// FetchCurrent retrieves the current value of every dashboard parameter for
// the coordinate, one request per parameter at the current UTC instant.
// Failures are per parameter: an entry whose request or parse failed carries
// the error in its Measurement slot and the remaining parameters are still
// fetched. The returned map always has one entry per parameter.
func (c *Client) FetchCurrent(ctx context.Context, coord domain.Coordinate) map[string]domain.Measurement {
	timeSpec := c.clock.Now().UTC().Format(instantFormat)

	results := make(map[string]domain.Measurement, len(currentParameters))
	for _, p := range currentParameters {
		samples, err := c.fetchSeries(ctx, timeSpec, p.quantity, coord)
		if err != nil {
			c.logger.Warn("current measurement failed", "parameter", p.name, "error", err)
			results[p.name] = domain.Measurement{Err: err}
			continue
		}
		results[p.name] = domain.Measurement{Value: samples[0].Value}
	}
	return results
}

// FetchForecast retrieves the temperature and condition-code series for the
// coordinate from the current UTC instant to horizonDays later, sampled every
// 24 hours. Unlike FetchCurrent, a failure on either parameter aborts the
// whole call: a partial outlook is worse than none.
func (c *Client) FetchForecast(ctx context.Context, coord domain.Coordinate, horizonDays int) (domain.ForecastSeries, error) {
	start := c.clock.Now().UTC()
	end := start.Add(time.Duration(horizonDays) * 24 * time.Hour)
	timeSpec := fmt.Sprintf("%s--%s:%s", start.Format(instantFormat), end.Format(instantFormat), dailyInterval)

	var series domain.ForecastSeries
	for _, p := range forecastParameters {
		samples, err := c.fetchSeries(ctx, timeSpec, p.quantity, coord)
		if err != nil {
			return domain.ForecastSeries{}, fmt.Errorf("fetch %s forecast: %w", p.name, err)
		}
		switch p.name {
		case domain.ParamTemperature:
			series.Temperature = samples
		case domain.ParamWeatherSymbol:
			series.Symbol = samples
		}
	}
	return series, nil
}

// fetchSeries performs one authenticated GET for a quantity expression and
// returns the dated samples of the first coordinate of the first parameter
// block. Guaranteed non-empty on success.
func (c *Client) fetchSeries(ctx context.Context, timeSpec, quantity string, coord domain.Coordinate) ([]domain.Sample, error) {
	start := time.Now()
	samples, err := c.doRequest(ctx, timeSpec, quantity, coord)
	c.metrics.FetchDuration.WithLabelValues(metricTarget).Observe(time.Since(start).Seconds())

	if err != nil {
		c.metrics.FetchRequests.WithLabelValues(metricTarget, "error").Inc()
		return nil, err
	}
	c.metrics.FetchRequests.WithLabelValues(metricTarget, "success").Inc()
	return samples, nil
}

func (c *Client) doRequest(ctx context.Context, timeSpec, quantity string, coord domain.Coordinate) ([]domain.Sample, error) {
	u := fmt.Sprintf("%s/%s/%s/%s/json", c.baseURL, timeSpec, quantity, coord)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("measurement request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("meteomatics API error: status %d: %s", resp.StatusCode, body)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(env.Data) == 0 || len(env.Data[0].Coordinates) == 0 || len(env.Data[0].Coordinates[0].Dates) == 0 {
		return nil, fmt.Errorf("empty measurement series for %s", quantity)
	}

	dates := env.Data[0].Coordinates[0].Dates
	samples := make([]domain.Sample, len(dates))
	for i, d := range dates {
		samples[i] = domain.Sample{Date: d.Date, Value: d.Value}
	}
	return samples, nil
}

// Meteomatics API response types.

type envelope struct {
	Data []parameterBlock `json:"data"`
}

type parameterBlock struct {
	Parameter   string            `json:"parameter"`
	Coordinates []coordinateBlock `json:"coordinates"`
}

type coordinateBlock struct {
	Lat   float64       `json:"lat"`
	Lon   float64       `json:"lon"`
	Dates []datedSample `json:"dates"`
}

type datedSample struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
