package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the console
// surface and the remote announcement client.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	remoteDuration  *prometheus.HistogramVec
	remoteTotal     *prometheus.CounterVec
	widgetRefresh   *prometheus.CounterVec
	dismissals      prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	remoteDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "announcement_remote_call_duration_seconds",
		Help:    "Duration of calls to the announcement backend",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "status"})

	remoteTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "announcement_remote_calls_total",
		Help: "Total calls to the announcement backend",
	}, []string{"operation", "status"})

	widgetRefresh := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "announcement_widget_refresh_total",
		Help: "Widget data refreshes by widget and outcome",
	}, []string{"widget", "outcome"})

	dismissals := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "announcement_banner_dismissals_total",
		Help: "Banner announcements dismissed by users",
	})

	registry.MustRegister(requestDuration, requestTotal, remoteDuration, remoteTotal, widgetRefresh, dismissals)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		remoteDuration:  remoteDuration,
		remoteTotal:     remoteTotal,
		widgetRefresh:   widgetRefresh,
		dismissals:      dismissals,
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one request on the mounted surface.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{"method": method, "path": path, "status": strconv.Itoa(status)}
	s.requestDuration.With(labels).Observe(duration.Seconds())
	s.requestTotal.With(labels).Inc()
}

// ObserveRemoteCall records one call to the announcement backend. A zero
// status marks a transport failure.
func (s *MetricsService) ObserveRemoteCall(operation string, status int, duration time.Duration) {
	label := "transport_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	labels := prometheus.Labels{"operation": operation, "status": label}
	s.remoteDuration.With(labels).Observe(duration.Seconds())
	s.remoteTotal.With(labels).Inc()
}

// IncWidgetRefresh counts a widget refresh with its outcome.
func (s *MetricsService) IncWidgetRefresh(widget, outcome string) {
	s.widgetRefresh.With(prometheus.Labels{"widget": widget, "outcome": outcome}).Inc()
}

// IncDismissal counts one banner dismissal.
func (s *MetricsService) IncDismissal() {
	s.dismissals.Inc()
}
