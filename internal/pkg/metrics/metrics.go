// Package metrics owns the Prometheus registry served on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "taskmate"

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	LeaveDecisionsTotal  *prometheus.CounterVec
	LoginAttemptsTotal   *prometheus.CounterVec
	DBPoolConnections    *prometheus.GaugeVec
	LeaveRequestsPending prometheus.Gauge
}

// New builds a registry with the Go runtime and process collectors plus the
// application vectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status_code"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		LeaveDecisionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leave_decisions_total",
			Help:      "Leave requests moved out of PENDING, by outcome",
		}, []string{"status"}),
		LoginAttemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts, by result",
		}, []string{"result"}),
		DBPoolConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_connections",
			Help:      "Database pool connections, by state",
		}, []string{"state"}),
		LeaveRequestsPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "leave_requests_pending",
			Help:      "Leave requests waiting for a decision",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.LeaveDecisionsTotal,
		m.LoginAttemptsTotal,
		m.DBPoolConnections,
		m.LeaveRequestsPending,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RecordHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) RecordLeaveDecision(status string) {
	m.LeaveDecisionsTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.LoginAttemptsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) SetDBPoolStats(acquired, idle, total int32) {
	m.DBPoolConnections.WithLabelValues("acquired").Set(float64(acquired))
	m.DBPoolConnections.WithLabelValues("idle").Set(float64(idle))
	m.DBPoolConnections.WithLabelValues("total").Set(float64(total))
}

func (m *Metrics) SetPendingLeaves(n int) {
	m.LeaveRequestsPending.Set(float64(n))
}
