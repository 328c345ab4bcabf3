package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dashboard's upstream fetches and report builds.
type Metrics struct {
	// Upstream fetch metrics.
	FetchRequests *prometheus.CounterVec   // labels: target={feed,weather}, outcome={success,error}
	FetchDuration *prometheus.HistogramVec // labels: target={feed,weather}

	// Report composition metrics.
	ReportsBuilt        prometheus.Counter
	ReportBuildDuration prometheus.Histogram
	LastReportTime      prometheus.Gauge

	// Bulletin publishing metrics.
	BulletinsPublished prometheus.Counter
	PublishErrors      prometheus.Counter
	PublishEnabled     prometheus.Gauge
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tropics_dashboard",
			Name:      "fetch_requests_total",
			Help:      "Upstream HTTP fetches by target and outcome.",
		}, []string{"target", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tropics_dashboard",
			Name:      "fetch_duration_seconds",
			Help:      "Upstream HTTP fetch duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"target"}),
		ReportsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tropics_dashboard",
			Name:      "reports_built_total",
			Help:      "Total dashboard reports composed.",
		}),
		ReportBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tropics_dashboard",
			Name:      "report_build_duration_seconds",
			Help:      "Duration of a complete report build including all upstream fetches.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		LastReportTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tropics_dashboard",
			Name:      "last_report_timestamp_seconds",
			Help:      "Unix time of the most recently built report.",
		}),
		BulletinsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tropics_dashboard",
			Name:      "bulletins_published_total",
			Help:      "Total storm bulletins produced to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tropics_dashboard",
			Name:      "publish_errors_total",
			Help:      "Total bulletin publish failures.",
		}),
		PublishEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tropics_dashboard",
			Name:      "publish_enabled",
			Help:      "1 when bulletin publishing is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.FetchRequests,
		m.FetchDuration,
		m.ReportsBuilt,
		m.ReportBuildDuration,
		m.LastReportTime,
		m.BulletinsPublished,
		m.PublishErrors,
		m.PublishEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FetchRequests:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "tropics_dashboard", Name: "fetch_requests_total"}, []string{"target", "outcome"}),
		FetchDuration:       prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "tropics_dashboard", Name: "fetch_duration_seconds"}, []string{"target"}),
		ReportsBuilt:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "tropics_dashboard", Name: "reports_built_total"}),
		ReportBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "tropics_dashboard", Name: "report_build_duration_seconds"}),
		LastReportTime:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "tropics_dashboard", Name: "last_report_timestamp_seconds"}),
		BulletinsPublished:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "tropics_dashboard", Name: "bulletins_published_total"}),
		PublishErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "tropics_dashboard", Name: "publish_errors_total"}),
		PublishEnabled:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "tropics_dashboard", Name: "publish_enabled"}),
	}
}
