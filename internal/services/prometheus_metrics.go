package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	budgetAggregations   *prometheus.CounterVec
	aggregationDuration  prometheus.Histogram
	transactionsCreated  *prometheus.CounterVec
	occurrencesGenerated *prometheus.CounterVec
	seriesTerminated     *prometheus.CounterVec
	notificationsEmitted *prometheus.CounterVec
	generationDuration   prometheus.Histogram
	activeSeriesTotal    prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		budgetAggregations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_aggregations_total",
				Help: "Total number of budget summary aggregations",
			},
			[]string{"result"},
		),
		aggregationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_aggregation_duration_milliseconds",
				Help:    "Budget aggregation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions created by type",
			},
			[]string{"type", "recurring"},
		),
		occurrencesGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recurring_occurrences_generated_total",
				Help: "Total number of occurrences created by the daily generator",
			},
			[]string{"type"},
		),
		seriesTerminated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recurring_series_terminated_total",
				Help: "Total number of recurring series terminations by mode",
			},
			[]string{"mode"},
		),
		notificationsEmitted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_emitted_total",
				Help: "Total number of notifications emitted by type",
			},
			[]string{"type"},
		),
		generationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recurring_generation_duration_milliseconds",
				Help:    "Daily recurring generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		activeSeriesTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "recurring_series_active_total",
				Help: "Current number of active recurring series",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "budget_aggregations":
		m.budgetAggregations.WithLabelValues(tags["result"]).Inc()
	case "transactions_created":
		m.transactionsCreated.WithLabelValues(tags["type"], tags["recurring"]).Inc()
	case "recurring_occurrences_generated":
		m.occurrencesGenerated.WithLabelValues(tags["type"]).Inc()
	case "recurring_series_terminated":
		m.seriesTerminated.WithLabelValues(tags["mode"]).Inc()
	case "notifications_emitted":
		m.notificationsEmitted.WithLabelValues(tags["type"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "budget_aggregation":
		m.aggregationDuration.Observe(float64(duration.Milliseconds()))
	case "recurring_generation":
		m.generationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "recurring_series_active":
		m.activeSeriesTotal.Set(value)
	}
}
