package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/greeter/core/handler"
	"github.com/dmitrymomot/greeter/core/response"
	"github.com/dmitrymomot/greeter/core/router"
)

// MetricsConfig configures the Prometheus middleware.
type MetricsConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool
	// Registerer receives the collectors (default: prometheus.DefaultRegisterer)
	Registerer prometheus.Registerer
	// Namespace prefixes metric names
	Namespace string
	// Buckets for the latency histogram (default: prometheus.DefBuckets)
	Buckets []float64
}

// Metrics records http_requests_total and http_request_duration_seconds on
// the default registerer.
func Metrics[C handler.Context]() handler.Middleware[C] {
	return MetricsWithConfig[C](MetricsConfig{})
}

// MetricsWithConfig creates the Prometheus middleware with custom configuration.
// Panics if the collectors cannot be registered.
func MetricsWithConfig[C handler.Context](cfg MetricsConfig) handler.Middleware[C] {
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	if len(cfg.Buckets) == 0 {
		cfg.Buckets = prometheus.DefBuckets
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method and status code.",
	}, []string{"method", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   cfg.Buckets,
	}, []string{"method"})

	cfg.Registerer.MustRegister(requests, duration)

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				sw := &statusWriter{ResponseWriter: w}
				err := resp(sw, r)

				status := sw.status
				if status == 0 {
					status = http.StatusOK
					if err != nil {
						status = router.StatusCode(err)
					}
				}

				requests.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()
				duration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
				return err
			}
		}
	}
}

// MetricsHandler exposes the collectors of g in the Prometheus text format.
// A nil gatherer serves prometheus.DefaultGatherer.
func MetricsHandler[C handler.Context](g prometheus.Gatherer) handler.HandlerFunc[C] {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	h := promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	return func(ctx C) handler.Response {
		return response.Handler(h)
	}
}
