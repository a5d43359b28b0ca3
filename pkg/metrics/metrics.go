package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salescrm_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "salescrm_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	interactionLogs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salescrm_interaction_logs_total",
		Help: "Interaction log entries written, labeled by type",
	}, []string{"type"})

	conversions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salescrm_lead_conversions_total",
		Help: "Successful lead to opportunity conversions",
	})
)

// Middleware returns an Echo middleware recording request counts and latency
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			path := c.Path()
			requestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			requestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// InteractionLogged increments the interaction log counter
func InteractionLogged(logType string) {
	interactionLogs.WithLabelValues(logType).Inc()
}

// LeadConverted increments the conversion counter
func LeadConverted() {
	conversions.Inc()
}
