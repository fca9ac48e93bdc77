package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "activitylog"

// MetricCollector exposes the activity counters as one prometheus.Collector.
type MetricCollector struct {
	created       *prometheus.CounterVec
	deleted       prometheus.Counter
	storeErrors   *prometheus.CounterVec
	cacheRequests *prometheus.CounterVec
}

func NewMetricCollector() *MetricCollector {
	return &MetricCollector{
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "activities_created_total",
			Help:      "Total number of activities recorded.",
		}, []string{"action"}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "activities_deleted_total",
			Help:      "Total number of activities removed by retention cleanup.",
		}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "store_errors_total",
			Help:      "Total number of failed store operations.",
		}, []string{"op"}),
		cacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "cache_requests_total",
			Help:      "Record cache lookups by result.",
		}, []string{"result"}),
	}
}

func (c *MetricCollector) Describe(ch chan<- *prometheus.Desc) {
	c.created.Describe(ch)
	c.deleted.Describe(ch)
	c.storeErrors.Describe(ch)
	c.cacheRequests.Describe(ch)
}

func (c *MetricCollector) Collect(ch chan<- prometheus.Metric) {
	c.created.Collect(ch)
	c.deleted.Collect(ch)
	c.storeErrors.Collect(ch)
	c.cacheRequests.Collect(ch)
}

func (c *MetricCollector) ObserveCreated(action string) {
	c.created.WithLabelValues(action).Inc()
}

func (c *MetricCollector) ObserveDeleted(n int64) {
	if n > 0 {
		c.deleted.Add(float64(n))
	}
}

func (c *MetricCollector) ObserveStoreError(op string) {
	c.storeErrors.WithLabelValues(op).Inc()
}

func (c *MetricCollector) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cacheRequests.WithLabelValues(result).Inc()
}
