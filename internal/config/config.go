package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/stormwatch/tropics-dashboard/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// Meteomatics API credentials and endpoint.
	MeteomaticsUsername string
	MeteomaticsPassword string
	MeteomaticsBaseURL  string

	// Dashboard location.
	Coordinate domain.Coordinate

	// Storm bulletin feeds.
	NHCFeedURL string
	SPCFeedURL string

	ForecastDays int
	FetchTimeout time.Duration

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Optional bulletin publishing.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is honored when present.
// The Meteomatics credential pair is required: the service refuses to start
// without it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	username := os.Getenv("METEOMATICS_USERNAME")
	password := os.Getenv("METEOMATICS_PASSWORD")
	if username == "" || password == "" {
		return nil, errors.New("METEOMATICS_USERNAME and METEOMATICS_PASSWORD are required")
	}

	lat, err := parseFloatEnv("LATITUDE", 33.4473)
	if err != nil {
		return nil, err
	}
	lon, err := parseFloatEnv("LONGITUDE", -84.1469)
	if err != nil {
		return nil, err
	}

	forecastDays, err := parseIntEnv("FORECAST_DAYS", 5)
	if err != nil {
		return nil, err
	}
	if forecastDays < 1 || forecastDays > 16 {
		return nil, errors.New("FORECAST_DAYS must be between 1 and 16")
	}

	fetchTimeout, err := parseDurationEnv("FETCH_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	brokers := parseBrokers(os.Getenv("KAFKA_BROKERS"))
	kafkaEnabled := len(brokers) > 0
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		MeteomaticsUsername: username,
		MeteomaticsPassword: password,
		MeteomaticsBaseURL:  envOrDefault("METEOMATICS_BASE_URL", "https://api.meteomatics.com"),
		Coordinate:          domain.Coordinate{Lat: lat, Lon: lon},
		NHCFeedURL:          envOrDefault("NHC_FEED_URL", "https://www.nhc.noaa.gov/nhc_at1.xml"),
		SPCFeedURL:          envOrDefault("SPC_FEED_URL", "https://www.spc.noaa.gov/products/spcwwrss.xml"),
		ForecastDays:        forecastDays,
		FetchTimeout:        fetchTimeout,
		HTTPAddr:            envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:            envOrDefault("LOG_LEVEL", "info"),
		LogFormat:           envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:     shutdownTimeout,
		KafkaEnabled:        kafkaEnabled,
		KafkaBrokers:        brokers,
		KafkaTopic:          envOrDefault("KAFKA_TOPIC", "storm-bulletins"),
	}

	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseFloatEnv(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return v, nil
}

func parseIntEnv(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return v, nil
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func parseBrokers(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}
