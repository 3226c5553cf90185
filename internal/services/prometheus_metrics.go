package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricTransactionEvent    = "transaction_event"
	MetricAnalyticsRequest    = "analytics_request"
	MetricAnalyticsCache      = "analytics_cache"
	MetricAuthenticationEvent = "authentication_event"
	MetricCategoryChange      = "category_change"

	MetricAnalyticsDuration     = "analytics_duration"
	MetricAnalyticsTransactions = "analytics_transactions_scanned"
)

type PrometheusMetrics struct {
	transactionEvents         *prometheus.CounterVec
	analyticsRequests         *prometheus.CounterVec
	analyticsCache            *prometheus.CounterVec
	analyticsDuration         prometheus.Histogram
	analyticsTransactions     prometheus.Histogram
	authenticationEventsTotal *prometheus.CounterVec
	categoryChanges           *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors on the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return newPrometheusMetrics(promauto.With(prometheus.DefaultRegisterer))
}

// NewPrometheusMetricsWithRegistry registers the collectors on reg
func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) MetricsRecorderInterface {
	return newPrometheusMetrics(promauto.With(reg))
}

func newPrometheusMetrics(factory promauto.Factory) *PrometheusMetrics {
	return &PrometheusMetrics{
		transactionEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_events_total",
				Help: "Total number of transaction lifecycle events",
			},
			[]string{"event", "type"},
		),
		analyticsRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_requests_total",
				Help: "Total number of analytics requests",
			},
			[]string{"kind", "status"},
		),
		analyticsCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_cache_lookups_total",
				Help: "Analytics cache lookups by result",
			},
			[]string{"result"},
		),
		analyticsDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_duration_milliseconds",
				Help:    "Analytics computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		analyticsTransactions: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_transactions_scanned",
				Help:    "Number of transactions aggregated per analytics request",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		categoryChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_changes_total",
				Help: "Total number of category changes",
			},
			[]string{"action"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricTransactionEvent:
		m.transactionEvents.WithLabelValues(tags["event"], tags["type"]).Inc()
	case MetricAnalyticsRequest:
		m.analyticsRequests.WithLabelValues(tags["kind"], tags["status"]).Inc()
	case MetricAnalyticsCache:
		if result := tags["result"]; result != "" {
			m.analyticsCache.WithLabelValues(result).Inc()
		}
	case MetricAuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case MetricCategoryChange:
		if action := tags["action"]; action != "" {
			m.categoryChanges.WithLabelValues(action).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricAnalyticsDuration:
		m.analyticsDuration.Observe(float64(duration.Microseconds()) / 1000)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricAnalyticsTransactions:
		m.analyticsTransactions.Observe(value)
	}
}
