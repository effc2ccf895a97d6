// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records HTTP and realtime metrics.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	sseSubscribers  prometheus.Gauge
	changeEvents    prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blogspace_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blogspace_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		sseSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "blogspace_sse_subscribers",
			Help: "Currently connected event stream subscribers.",
		}),
		changeEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blogspace_post_change_events_total",
			Help: "Change notifications received from the posts table.",
		}),
	}

	reg.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.sseSubscribers,
		c.changeEvents,
	)

	return c
}

// RecordRequest records one completed HTTP request.
func (c *Collector) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SubscriberConnected / SubscriberDisconnected track the SSE gauge.
func (c *Collector) SubscriberConnected()    { c.sseSubscribers.Inc() }
func (c *Collector) SubscriberDisconnected() { c.sseSubscribers.Dec() }

// RecordChangeEvent counts one posts-table change notification.
func (c *Collector) RecordChangeEvent() { c.changeEvents.Inc() }

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
