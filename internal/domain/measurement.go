package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Coordinate is a WGS-84 latitude/longitude pair identifying the dashboard
// location. Constant for the life of the process.
type Coordinate struct {
	Lat float64
	Lon float64
}

// String renders the coordinate in the "lat,lon" form the measurement API
// expects in its URL path.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// Parameter names the current-conditions measurements the dashboard requests.
// The order here is the order requests are issued and fields rendered.
const (
	ParamTemperature      = "temperature"
	ParamWeatherSymbol    = "weather_symbol"
	ParamHeavyRainWarning = "heavy_rain_warning"
	ParamAirQuality       = "air_quality"
)

// Measurement is a tagged per-parameter result: either a numeric value or the
// error that prevented one. Failures occupy the same slot as successes so the
// report can always render every field, degrading individual fields to error
// text instead of failing the whole page.
type Measurement struct {
	Value float64
	Err   error
}

// OK reports whether the measurement carries a value rather than an error.
func (m Measurement) OK() bool {
	return m.Err == nil
}

// Display returns the value, or the legacy boundary text
// "Error fetching {param}: {details}" when the measurement failed.
func (m Measurement) Display(param string) string {
	if m.Err != nil {
		return fmt.Sprintf("Error fetching %s: %v", param, m.Err)
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

// MarshalJSON emits the raw number on success and the error description as a
// string on failure, preserving the value-or-error slot shape consumed by the
// display layer.
func (m Measurement) MarshalJSON() ([]byte, error) {
	if m.Err != nil {
		return json.Marshal(m.Err.Error())
	}
	return json.Marshal(m.Value)
}

// Sample is one dated scalar reading from a measurement series.
type Sample struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// ForecastSeries holds the two date-aligned series behind the daily outlook.
type ForecastSeries struct {
	Temperature []Sample
	Symbol      []Sample
}

// FeedSummary is the first description extracted from a storm bulletin feed,
// or the boundary error text when retrieval failed.
type FeedSummary struct {
	Source  string `json:"source"`
	Summary string `json:"summary"`
}
