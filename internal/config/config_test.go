package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUsername = "stormwatch_user"
	testPassword = "hunter2"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("METEOMATICS_USERNAME", testUsername)
	t.Setenv("METEOMATICS_PASSWORD", testPassword)
}

func TestLoad_Defaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testUsername, cfg.MeteomaticsUsername)
	assert.Equal(t, testPassword, cfg.MeteomaticsPassword)
	assert.Equal(t, "https://api.meteomatics.com", cfg.MeteomaticsBaseURL)
	assert.Equal(t, 33.4473, cfg.Coordinate.Lat)
	assert.Equal(t, -84.1469, cfg.Coordinate.Lon)
	assert.Equal(t, "https://www.nhc.noaa.gov/nhc_at1.xml", cfg.NHCFeedURL)
	assert.Equal(t, "https://www.spc.noaa.gov/products/spcwwrss.xml", cfg.SPCFeedURL)
	assert.Equal(t, 5, cfg.ForecastDays)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.KafkaEnabled)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "storm-bulletins", cfg.KafkaTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	setCredentials(t)
	t.Setenv("METEOMATICS_BASE_URL", "https://api.example.com")
	t.Setenv("LATITUDE", "25.7617")
	t.Setenv("LONGITUDE", "-80.1918")
	t.Setenv("NHC_FEED_URL", "https://example.com/nhc.xml")
	t.Setenv("SPC_FEED_URL", "https://example.com/spc.xml")
	t.Setenv("FORECAST_DAYS", "7")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_TOPIC", "custom-bulletins")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.MeteomaticsBaseURL)
	assert.Equal(t, 25.7617, cfg.Coordinate.Lat)
	assert.Equal(t, -80.1918, cfg.Coordinate.Lon)
	assert.Equal(t, "https://example.com/nhc.xml", cfg.NHCFeedURL)
	assert.Equal(t, "https://example.com/spc.xml", cfg.SPCFeedURL)
	assert.Equal(t, 7, cfg.ForecastDays)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-bulletins", cfg.KafkaTopic)
}

func TestLoad_MissingCredentials(t *testing.T) {
	t.Setenv("METEOMATICS_USERNAME", "")
	t.Setenv("METEOMATICS_PASSWORD", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "METEOMATICS_USERNAME")
}

func TestLoad_MissingPasswordOnly(t *testing.T) {
	t.Setenv("METEOMATICS_USERNAME", testUsername)
	t.Setenv("METEOMATICS_PASSWORD", "")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidLatitude(t *testing.T) {
	setCredentials(t)
	t.Setenv("LATITUDE", "not-a-number")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LATITUDE")
}

func TestLoad_InvalidForecastDays(t *testing.T) {
	setCredentials(t)
	t.Setenv("FORECAST_DAYS", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORECAST_DAYS")
}

func TestLoad_ForecastDaysTooLarge(t *testing.T) {
	setCredentials(t)
	t.Setenv("FORECAST_DAYS", "17")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORECAST_DAYS")
}

func TestLoad_InvalidFetchTimeout(t *testing.T) {
	setCredentials(t)
	t.Setenv("FETCH_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	setCredentials(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_KafkaEnabledWithoutBrokers(t *testing.T) {
	setCredentials(t)
	t.Setenv("KAFKA_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKERS")
}

func TestLoad_KafkaBrokersImplyEnabled(t *testing.T) {
	setCredentials(t)
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.KafkaEnabled)
}

func TestLoad_KafkaExplicitlyDisabled(t *testing.T) {
	setCredentials(t)
	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("KAFKA_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KafkaEnabled)
}
